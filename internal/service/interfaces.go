package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/codestreak/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/limbo/codestreak/internal/service ChallengeServiceI,LeaderboardServiceI,SubmissionServiceI,UserServiceI

type RegisterRequest struct {
	Name      string `validate:"required,alphanum_underscore,min=3,max=100"`
	StudentID string `validate:"omitempty,student_id,max=32"`
	Password  string `validate:"required,min=8,max=72"`
}

// SubmitRequest is a solution already graded by the scoring service.
type SubmitRequest struct {
	ProblemID int64       `validate:"required,gt=0"`
	Score     int         `validate:"gte=0,lte=10"`
	Mode      entity.Mode `validate:"required,oneof=practice interview"`
	Feedback  string      `validate:"max=4000"`
	// Counts the submission towards the running 20-day challenge
	Challenge bool
}

type SubmissionResult struct {
	Game      *entity.GameProgress      `json:"game"`
	XPGained  int                       `json:"xp_gained"`
	NewBadges []string                  `json:"new_badges"`
	Progress  *entity.ChallengeProgress `json:"challenge,omitempty"`
	Counted   bool                      `json:"counted"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ChallengeServiceI interface {
	// Reads progress of user and applies day boundary rules. Never fails on a missing or broken record
	Load(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error)
	// Begins a new run, discarding the previous one
	Start(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error)
	// Counts a graded problem towards today. Reports whether anything changed
	RecordCompletion(ctx context.Context, uid uuid.UUID, problemID int64, difficulty entity.Difficulty, score int) (*entity.ChallengeProgress, bool, error)
	// Replaces progress with a fresh one if secret matches
	Reset(ctx context.Context, uid uuid.UUID, secret string) (*entity.ChallengeProgress, error)
	LogActivity(ctx context.Context, uid uuid.UUID, log entity.ActivityLog) (*entity.ChallengeProgress, error)
	Stats(ctx context.Context, uid uuid.UUID) (entity.ChallengeStats, error)
	Suspicious(ctx context.Context, uid uuid.UUID, problemID int64) ([]entity.SuspiciousActivity, error)
}

type SubmissionServiceI interface {
	// Awards xp and badges, counts the problem for the challenge when asked to
	Submit(ctx context.Context, uid uuid.UUID, req *SubmitRequest) (*SubmissionResult, error)
	// Returns level, xp, rank and badges of user
	GameProgress(ctx context.Context, uid uuid.UUID) (*entity.GameProgress, error)
}

type LeaderboardServiceI interface {
	Top(ctx context.Context, pagination PaginationOpts) ([]entity.LeaderboardEntry, error)
}
