package challenge

import (
	"errors"
	"strings"

	"github.com/limbo/codestreak/pkg/entity"
)

// Quota is the number of passed problems per difficulty that completes a day.
type Quota struct {
	Easy   int
	Medium int
	Hard   int
}

func (q Quota) Of(d entity.Difficulty) int {
	switch d {
	case entity.Easy:
		return q.Easy
	case entity.Medium:
		return q.Medium
	case entity.Hard:
		return q.Hard
	}
	return 0
}

func (q Quota) Total() int {
	return q.Easy + q.Medium + q.Hard
}

// MetBy reports whether completed covers the quota for every difficulty.
func (q Quota) MetBy(completed entity.ProblemSet) bool {
	for _, d := range entity.Difficulties {
		if completed.Len(d) < q.Of(d) {
			return false
		}
	}
	return true
}

// ExhaustionPolicy decides how a day is generated when the catalog has fewer
// unused problems of a difficulty than the quota asks for.
type ExhaustionPolicy string

const (
	// ExhaustionReuse tops the day up with problems already assigned earlier in the run.
	ExhaustionReuse ExhaustionPolicy = "reuse"
	// ExhaustionUnderfill assigns fewer problems than the quota. The day can't be completed then.
	ExhaustionUnderfill ExhaustionPolicy = "underfill"
	// ExhaustionFail refuses to generate the day.
	ExhaustionFail ExhaustionPolicy = "fail"
)

func ParseExhaustionPolicy(s string) (ExhaustionPolicy, error) {
	switch p := ExhaustionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ExhaustionReuse, ExhaustionUnderfill, ExhaustionFail:
		return p, nil
	case "":
		return ExhaustionReuse, nil
	}
	return "", errors.New("unknown exhaustion policy: " + s)
}

type Rules struct {
	TotalDays          int
	Quota              Quota
	MinScoreToPass     int
	Reward             int // display only
	MaxPastePercentage float64
	MaxTypingSpeed     float64 // chars per minute
	Exhaustion         ExhaustionPolicy
}

func DefaultRules() Rules {
	return Rules{
		TotalDays: 20,
		Quota: Quota{
			Easy:   3,
			Medium: 1,
			Hard:   1,
		},
		MinScoreToPass:     6,
		Reward:             500000,
		MaxPastePercentage: 30,
		MaxTypingSpeed:     500,
		Exhaustion:         ExhaustionReuse,
	}
}
