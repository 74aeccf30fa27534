package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	StudentID    string
	PasswordHash string
	CreatedAt    time.Time
}

// Problem is a catalog entry. Statement content is served by the problem bank, not by this API.
type Problem struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Skill      string     `json:"skill"`
}

type ChallengeResult struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"uid"`
	ProblemID    int64      `json:"problem_id"`
	ProblemTitle string     `json:"problem_title"`
	Difficulty   Difficulty `json:"difficulty"`
	Score        int        `json:"score"`
	DayNumber    int        `json:"day_number"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LeaderboardEntry struct {
	UserID            uuid.UUID `json:"uid"`
	Name              string    `json:"name"`
	StudentID         string    `json:"student_id"`
	TotalScore        int       `json:"total_score"`
	ProblemsCompleted int       `json:"problems_completed"`
	AvgScore          int       `json:"avg_score"`
	CurrentDay        int       `json:"current_day"`
	IsActive          bool      `json:"is_active"`
	JoinedAt          time.Time `json:"joined_at"`
}
