package service

import (
	"math"
	"slices"
	"time"

	"github.com/limbo/codestreak/pkg/entity"
)

type rankThreshold struct {
	Name  string
	MinXP int
}

var ranks = []rankThreshold{
	{Name: "Intern", MinXP: 0},
	{Name: "Junior", MinXP: 100},
	{Name: "Fresher", MinXP: 300},
	{Name: "Mid-Level", MinXP: 600},
	{Name: "Senior", MinXP: 1000},
	{Name: "Interview Ready", MinXP: 1500},
	{Name: "Tech Lead", MinXP: 2500},
}

const (
	BadgeFirstBlood     = "First Blood"
	BadgeInterviewReady = "Interview Ready"
	BadgeLogicThinker   = "Logic Thinker"
	BadgeQuickThinker   = "Quick Thinker"
	BadgeStreakMaster   = "Streak Master"
)

// XPForScore gives experience for a graded score. Interview mode pays half again as much.
func XPForScore(score int, mode entity.Mode) int {
	multiplier := 1.0
	if mode == entity.ModeInterview {
		multiplier = 1.5
	}
	var base float64
	switch {
	case score >= 9:
		base = 80
	case score >= 7:
		base = 50
	case score >= 5:
		base = 30
	default:
		base = float64(score * 5)
	}
	return int(math.Round(base * multiplier))
}

func LevelForXP(xp int) int {
	return xp/50 + 1
}

func RankForXP(xp int) string {
	current := ranks[0].Name
	for _, r := range ranks {
		if xp >= r.MinXP {
			current = r.Name
		}
	}
	return current
}

// NewBadges lists badges earned by the submission that gp does not hold yet.
// gp is the state before the submission is added to history.
func NewBadges(gp *entity.GameProgress, score int, mode entity.Mode) []string {
	earned := make([]string, 0)
	has := func(b string) bool { return slices.Contains(gp.Badges, b) }

	if len(gp.History) == 0 && !has(BadgeFirstBlood) {
		earned = append(earned, BadgeFirstBlood)
	}
	if mode == entity.ModeInterview && score >= 9 && !has(BadgeInterviewReady) {
		earned = append(earned, BadgeInterviewReady)
	}
	highScores := 0
	for _, h := range gp.History {
		if h.Score >= 8 {
			highScores++
		}
	}
	// third score of 8 or more
	if highScores >= 2 && score >= 8 && !has(BadgeLogicThinker) {
		earned = append(earned, BadgeLogicThinker)
	}
	if mode == entity.ModeInterview && score >= 7 && !has(BadgeQuickThinker) {
		earned = append(earned, BadgeQuickThinker)
	}
	// fifth submission
	if len(gp.History) >= 4 && !has(BadgeStreakMaster) {
		earned = append(earned, BadgeStreakMaster)
	}
	return earned
}

// ApplySubmission returns a copy of gp with the entry added to history and
// experience, level, rank and badges recomputed.
func ApplySubmission(gp *entity.GameProgress, entry entity.HistoryEntry) (*entity.GameProgress, int, []string) {
	xp := XPForScore(entry.Score, entry.Mode)
	badges := NewBadges(gp, entry.Score, entry.Mode)

	updated := *gp
	updated.XP = gp.XP + xp
	updated.Level = LevelForXP(updated.XP)
	updated.Rank = RankForXP(updated.XP)
	updated.Badges = append(slices.Clone(gp.Badges), badges...)
	if updated.Badges == nil {
		updated.Badges = []string{}
	}
	updated.History = append(slices.Clone(gp.History), entry)
	updated.UpdatedAt = time.Now()
	return &updated, xp, badges
}
