package entity

import (
	"slices"
	"time"
)

// ProgressSchemaVersion is the version of the persisted ChallengeProgress shape.
// Version 1 records predate failure tracking.
const ProgressSchemaVersion = 2

// ProblemSet holds problem ids per difficulty.
type ProblemSet struct {
	Easy   []int64 `json:"easy"`
	Medium []int64 `json:"medium"`
	Hard   []int64 `json:"hard"`
}

func (s *ProblemSet) Of(d Difficulty) []int64 {
	switch d {
	case Easy:
		return s.Easy
	case Medium:
		return s.Medium
	case Hard:
		return s.Hard
	}
	return nil
}

// Add appends id to the difficulty's list. Unknown difficulties are ignored.
func (s *ProblemSet) Add(d Difficulty, id int64) {
	switch d {
	case Easy:
		s.Easy = append(s.Easy, id)
	case Medium:
		s.Medium = append(s.Medium, id)
	case Hard:
		s.Hard = append(s.Hard, id)
	}
}

func (s *ProblemSet) Contains(d Difficulty, id int64) bool {
	return slices.Contains(s.Of(d), id)
}

func (s *ProblemSet) Len(d Difficulty) int {
	return len(s.Of(d))
}

// IDs returns every id of the set, easy first.
func (s *ProblemSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.Easy)+len(s.Medium)+len(s.Hard))
	ids = append(ids, s.Easy...)
	ids = append(ids, s.Medium...)
	return append(ids, s.Hard...)
}

func (s ProblemSet) Clone() ProblemSet {
	return ProblemSet{
		Easy:   cloneIDs(s.Easy),
		Medium: cloneIDs(s.Medium),
		Hard:   cloneIDs(s.Hard),
	}
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return slices.Clone(ids)
}

type DailyChallenge struct {
	Day               int        `json:"day"`
	Date              Date       `json:"date"`
	Completed         bool       `json:"completed"`
	Problems          ProblemSet `json:"problems"`
	CompletedProblems ProblemSet `json:"completedProblems"`
}

type ActivityAction string

const (
	ActionStart  ActivityAction = "start"
	ActionTyping ActivityAction = "typing"
	ActionPaste  ActivityAction = "paste"
	ActionSubmit ActivityAction = "submit"
)

type ActivityDetails struct {
	PasteLength      int     `json:"pasteLength,omitempty"`
	TypingSpeed      float64 `json:"typingSpeed,omitempty"` // chars per minute
	TotalPasteEvents int     `json:"totalPasteEvents,omitempty"`
	CodeLength       int     `json:"codeLength,omitempty"`
	TimeTaken        int     `json:"timeTaken,omitempty"` // seconds
}

type ActivityLog struct {
	Timestamp time.Time        `json:"timestamp"`
	ProblemID int64            `json:"problemId"`
	Action    ActivityAction   `json:"action"`
	Details   *ActivityDetails `json:"details,omitempty"`
}

type ChallengeProgress struct {
	SchemaVersion    int              `json:"schemaVersion"`
	IsActive         bool             `json:"isActive"`
	StartDate        *Date            `json:"startDate"`
	CurrentDay       int              `json:"currentDay"`
	ConsecutiveDays  int              `json:"consecutiveDays"`
	CompletedDays    int              `json:"completedDays"`
	DailyChallenges  []DailyChallenge `json:"dailyChallenges"`
	ActivityLogs     []ActivityLog    `json:"activityLogs"`
	LastActivityDate *Date            `json:"lastActivityDate"`
	Failed           bool             `json:"failed"`
	FailedReason     *string          `json:"failedReason"`
}

// DefaultChallengeProgress is the inactive entity every user starts with.
func DefaultChallengeProgress() *ChallengeProgress {
	return &ChallengeProgress{
		SchemaVersion:   ProgressSchemaVersion,
		DailyChallenges: []DailyChallenge{},
		ActivityLogs:    []ActivityLog{},
	}
}

// Today returns the entry of the current day, or nil when there is none.
func (p *ChallengeProgress) Today() *DailyChallenge {
	if p.CurrentDay < 1 || p.CurrentDay > len(p.DailyChallenges) {
		return nil
	}
	return &p.DailyChallenges[p.CurrentDay-1]
}

// UsedProblemIDs collects the ids assigned on any day of the run.
func (p *ChallengeProgress) UsedProblemIDs() map[int64]struct{} {
	used := make(map[int64]struct{})
	for i := range p.DailyChallenges {
		for _, id := range p.DailyChallenges[i].Problems.IDs() {
			used[id] = struct{}{}
		}
	}
	return used
}

func (p *ChallengeProgress) Clone() *ChallengeProgress {
	c := *p
	if p.StartDate != nil {
		c.StartDate = DatePtr(*p.StartDate)
	}
	if p.LastActivityDate != nil {
		c.LastActivityDate = DatePtr(*p.LastActivityDate)
	}
	if p.FailedReason != nil {
		reason := *p.FailedReason
		c.FailedReason = &reason
	}
	c.DailyChallenges = make([]DailyChallenge, len(p.DailyChallenges))
	for i, day := range p.DailyChallenges {
		day.Problems = day.Problems.Clone()
		day.CompletedProblems = day.CompletedProblems.Clone()
		c.DailyChallenges[i] = day
	}
	c.ActivityLogs = make([]ActivityLog, len(p.ActivityLogs))
	for i, l := range p.ActivityLogs {
		if l.Details != nil {
			details := *l.Details
			l.Details = &details
		}
		c.ActivityLogs[i] = l
	}
	return &c
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type SuspiciousActivity struct {
	ProblemID int64     `json:"problemId"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
	Severity  Severity  `json:"severity"`
}

type ChallengeStats struct {
	DaysRemaining         int     `json:"daysRemaining"`
	ProgressPercentage    float64 `json:"progressPercentage"`
	TotalProblemsRequired int     `json:"totalProblemsRequired"`
	CompletedProblems     int     `json:"completedProblems"`
	IsComplete            bool    `json:"isComplete"`
	Reward                int     `json:"reward"`
}
