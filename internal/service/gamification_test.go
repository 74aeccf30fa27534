package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/codestreak/internal/service"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestXPForScore(t *testing.T) {
	cases := []struct {
		Desc  string
		Score int
		Mode  entity.Mode
		XP    int
	}{
		{Desc: "perfect practice", Score: 10, Mode: entity.ModePractice, XP: 80},
		{Desc: "nine interview", Score: 9, Mode: entity.ModeInterview, XP: 120},
		{Desc: "seven practice", Score: 7, Mode: entity.ModePractice, XP: 50},
		{Desc: "five interview", Score: 5, Mode: entity.ModeInterview, XP: 45},
		{Desc: "low practice", Score: 3, Mode: entity.ModePractice, XP: 15},
		{Desc: "low interview", Score: 3, Mode: entity.ModeInterview, XP: 23},
		{Desc: "zero", Score: 0, Mode: entity.ModePractice, XP: 0},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			assert.Equal(t, c.XP, service.XPForScore(c.Score, c.Mode))
		})
	}
}

func TestLevelAndRank(t *testing.T) {
	assert.Equal(t, 1, service.LevelForXP(0))
	assert.Equal(t, 1, service.LevelForXP(49))
	assert.Equal(t, 3, service.LevelForXP(100))
	assert.Equal(t, "Intern", service.RankForXP(99))
	assert.Equal(t, "Junior", service.RankForXP(100))
	assert.Equal(t, "Mid-Level", service.RankForXP(999))
	assert.Equal(t, "Tech Lead", service.RankForXP(10000))
}

func TestNewBadges(t *testing.T) {
	gp := entity.DefaultGameProgress(uuid.New())
	t.Run("first submission", func(t *testing.T) {
		assert.Equal(t, []string{service.BadgeFirstBlood}, service.NewBadges(gp, 2, entity.ModePractice))
	})
	t.Run("strong interview", func(t *testing.T) {
		held := *gp
		held.Badges = []string{service.BadgeFirstBlood}
		held.History = []entity.HistoryEntry{{Score: 3}}
		assert.Equal(t, []string{service.BadgeInterviewReady, service.BadgeQuickThinker}, service.NewBadges(&held, 9, entity.ModeInterview))
	})
	t.Run("third high score and fifth submission", func(t *testing.T) {
		held := *gp
		held.Badges = []string{service.BadgeFirstBlood}
		held.History = []entity.HistoryEntry{{Score: 8}, {Score: 9}, {Score: 1}, {Score: 2}}
		assert.Equal(t, []string{service.BadgeLogicThinker, service.BadgeStreakMaster}, service.NewBadges(&held, 8, entity.ModePractice))
	})
	t.Run("badges are not repeated", func(t *testing.T) {
		held := *gp
		held.Badges = []string{service.BadgeFirstBlood, service.BadgeStreakMaster}
		held.History = []entity.HistoryEntry{{}, {}, {}, {}, {}}
		assert.Empty(t, service.NewBadges(&held, 4, entity.ModePractice))
	})
}

func TestApplySubmission(t *testing.T) {
	gp := entity.DefaultGameProgress(uuid.New())
	gp.XP = 90
	updated, xp, badges := service.ApplySubmission(gp, entity.HistoryEntry{ProblemID: 1, Score: 6, Mode: entity.ModePractice})
	assert.Equal(t, 30, xp)
	assert.Equal(t, 120, updated.XP)
	assert.Equal(t, 3, updated.Level)
	assert.Equal(t, "Junior", updated.Rank)
	assert.Equal(t, []string{service.BadgeFirstBlood}, badges)
	assert.Len(t, updated.History, 1)
	assert.Empty(t, gp.History)
}
