package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/codestreak/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/limbo/codestreak/internal/repository ChallengeProgressRepositoryI,ChallengeResultsRepositoryI,GameProgressRepositoryI,ProblemsRepositoryI,UsersRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengeProgressRepositoryI interface {
	// Returns progress of user. ErrProgressNotFound if user has none yet
	Get(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error)
	// Creates or overwrites progress of user in one statement
	Upsert(ctx context.Context, uid uuid.UUID, progress *entity.ChallengeProgress) error
}

type ProblemsRepositoryI interface {
	// Lists ids of every problem with given difficulty
	ListIDsByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]int64, error)
	// Searches problem with given id
	GetByID(ctx context.Context, id int64) (*entity.Problem, error)
}

type ChallengeResultsRepositoryI interface {
	// Saves graded challenge submission
	Create(ctx context.Context, result *entity.ChallengeResult) error
	// Aggregates results per participant. Active runs first, then by total score
	Leaderboard(ctx context.Context, limit, offset int) ([]entity.LeaderboardEntry, error)
}

type GameProgressRepositoryI interface {
	// Returns xp, level, rank and badges of user. ErrGameProgressAbsent if none yet
	Get(ctx context.Context, uid uuid.UUID) (*entity.GameProgress, error)
	// Creates or overwrites game progress of user
	Upsert(ctx context.Context, progress *entity.GameProgress) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
