package challenge_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/limbo/codestreak/internal/challenge"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/stretchr/testify/require"
)

type staticCatalog map[entity.Difficulty][]int64

func (c staticCatalog) ListIDsByDifficulty(ctx context.Context, d entity.Difficulty) ([]int64, error) {
	ids := c[d]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out, nil
}

type brokenCatalog struct{}

func (brokenCatalog) ListIDsByDifficulty(ctx context.Context, d entity.Difficulty) ([]int64, error) {
	return nil, errors.New("catalog unavailable")
}

// newCatalog builds a catalog with sequential ids: easy from 1, medium from 1001, hard from 2001.
func newCatalog(easy, medium, hard int) staticCatalog {
	gen := func(base int64, n int) []int64 {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = base + int64(i)
		}
		return ids
	}
	return staticCatalog{
		entity.Easy:   gen(1, easy),
		entity.Medium: gen(1001, medium),
		entity.Hard:   gen(2001, hard),
	}
}

func newEngine(catalog challenge.Catalog, policy challenge.ExhaustionPolicy) *challenge.Engine {
	rules := challenge.DefaultRules()
	rules.Exhaustion = policy
	selector := challenge.NewSelector(catalog, rules, challenge.WithRand(rand.New(rand.NewPCG(7, 11))))
	return challenge.NewEngine(rules, selector)
}

var startDate = entity.Date{Year: 2025, Month: 3, Day: 1}

// completeDay passes every problem assigned to the current day.
func completeDay(t *testing.T, e *challenge.Engine, p *entity.ChallengeProgress, today entity.Date) *entity.ChallengeProgress {
	t.Helper()
	day := p.Today()
	require.NotNil(t, day)
	for _, d := range entity.Difficulties {
		for _, id := range day.Problems.Of(d) {
			p, _ = e.RecordCompletion(p, id, d, 10, today)
		}
	}
	require.True(t, p.Today().Completed)
	return p
}

// progressOnDay returns a run that reached day n, with the first n-1 days completed.
func progressOnDay(t *testing.T, e *challenge.Engine, n int) (*entity.ChallengeProgress, entity.Date) {
	t.Helper()
	ctx := context.Background()
	p, err := e.Start(ctx, startDate)
	require.NoError(t, err)
	today := startDate
	for day := 1; day < n; day++ {
		p = completeDay(t, e, p, today)
		today = today.AddDays(1)
		var changed bool
		p, changed, err = e.ValidateAndAdvance(ctx, p, today)
		require.NoError(t, err)
		require.True(t, changed)
	}
	return p, today
}
