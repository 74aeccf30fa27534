package entity

import (
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModePractice  Mode = "practice"
	ModeInterview Mode = "interview"
)

type HistoryEntry struct {
	ProblemID int64     `json:"problemId"`
	Score     int       `json:"score"`
	Date      time.Time `json:"date"`
	Mode      Mode      `json:"mode"`
	Feedback  string    `json:"feedback,omitempty"`
}

// GameProgress is the practice-side progression: experience, level, rank and badges.
type GameProgress struct {
	UserID    uuid.UUID      `json:"uid"`
	Level     int            `json:"level"`
	XP        int            `json:"xp"`
	Rank      string         `json:"rank"`
	Badges    []string       `json:"badges"`
	History   []HistoryEntry `json:"history"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func DefaultGameProgress(uid uuid.UUID) *GameProgress {
	return &GameProgress{
		UserID:  uid,
		Level:   1,
		Rank:    "Intern",
		Badges:  []string{},
		History: []HistoryEntry{},
	}
}
