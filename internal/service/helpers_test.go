package service_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/limbo/codestreak/internal/challenge"
	"github.com/limbo/codestreak/internal/service"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type staticCatalog map[entity.Difficulty][]int64

func (c staticCatalog) ListIDsByDifficulty(ctx context.Context, d entity.Difficulty) ([]int64, error) {
	return append([]int64(nil), c[d]...), nil
}

func fullCatalog() staticCatalog {
	c := staticCatalog{}
	for i := int64(0); i < 60; i++ {
		c[entity.Easy] = append(c[entity.Easy], 1+i)
	}
	for i := int64(0); i < 20; i++ {
		c[entity.Medium] = append(c[entity.Medium], 1001+i)
		c[entity.Hard] = append(c[entity.Hard], 2001+i)
	}
	return c
}

var (
	now   = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	today = entity.DateOf(now, time.UTC)
)

func testClock() challenge.Clock {
	return challenge.NewClockAt(time.UTC, func() time.Time { return now })
}

func testEngine() *challenge.Engine {
	rules := challenge.DefaultRules()
	return challenge.NewEngine(rules, challenge.NewSelector(fullCatalog(), rules, challenge.WithRand(rand.New(rand.NewPCG(1, 2)))))
}

// startedOn returns a run started on day with every problem of day 1 passed when complete is set.
func startedOn(t *testing.T, e *challenge.Engine, day entity.Date, complete bool) *entity.ChallengeProgress {
	t.Helper()
	p, err := e.Start(context.Background(), day)
	require.NoError(t, err)
	if !complete {
		return p
	}
	for _, d := range entity.Difficulties {
		for _, id := range p.Today().Problems.Of(d) {
			p, _ = e.RecordCompletion(p, id, d, 9, day)
		}
	}
	require.True(t, p.Today().Completed)
	return p
}
