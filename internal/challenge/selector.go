package challenge

import (
	"context"
	"errors"
	"math/rand/v2"

	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

// Catalog lists problem ids of a difficulty.
type Catalog interface {
	ListIDsByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]int64, error)
}

// Selector picks the problems of a day.
type Selector struct {
	catalog Catalog
	quota   Quota
	policy  ExhaustionPolicy
	shuffle func(n int, swap func(i, j int))
}

type SelectorOption func(*Selector)

// WithRand makes the selection deterministic.
func WithRand(r *rand.Rand) SelectorOption {
	return func(s *Selector) {
		s.shuffle = r.Shuffle
	}
}

func NewSelector(catalog Catalog, rules Rules, opts ...SelectorOption) *Selector {
	s := &Selector{
		catalog: catalog,
		quota:   rules.Quota,
		policy:  rules.Exhaustion,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDay builds the entry of dayNumber. Ids found in exclude are only used
// when the policy allows reuse and nothing fresh is left.
func (s *Selector) GenerateDay(ctx context.Context, dayNumber int, date entity.Date, exclude map[int64]struct{}) (entity.DailyChallenge, error) {
	day := entity.DailyChallenge{
		Day:  dayNumber,
		Date: date,
		Problems: entity.ProblemSet{
			Easy:   []int64{},
			Medium: []int64{},
			Hard:   []int64{},
		},
		CompletedProblems: entity.ProblemSet{
			Easy:   []int64{},
			Medium: []int64{},
			Hard:   []int64{},
		},
	}
	taken := make(map[int64]struct{})
	for _, d := range entity.Difficulties {
		need := s.quota.Of(d)
		if need <= 0 {
			continue
		}
		ids, err := s.catalog.ListIDsByDifficulty(ctx, d)
		if err != nil {
			return entity.DailyChallenge{}, errors.New("listing problems error: " + err.Error())
		}
		fresh, used := s.split(ids, exclude, taken)
		picked := s.take(fresh, need)
		if len(picked) < need {
			switch s.policy {
			case ExhaustionFail:
				return entity.DailyChallenge{}, errorvalues.ErrCatalogExhausted
			case ExhaustionReuse:
				picked = append(picked, s.take(used, need-len(picked))...)
			}
		}
		for _, id := range picked {
			taken[id] = struct{}{}
			day.Problems.Add(d, id)
		}
	}
	return day, nil
}

// split partitions ids into never-assigned and already-assigned ones,
// dropping duplicates and ids taken earlier for the same day.
func (s *Selector) split(ids []int64, exclude, taken map[int64]struct{}) (fresh, used []int64) {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := taken[id]; ok {
			continue
		}
		if _, ok := exclude[id]; ok {
			used = append(used, id)
			continue
		}
		fresh = append(fresh, id)
	}
	return fresh, used
}

func (s *Selector) take(ids []int64, n int) []int64 {
	s.shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if n > len(ids) {
		n = len(ids)
	}
	return ids[:n]
}
