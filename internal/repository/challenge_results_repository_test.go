package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeResult(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewChallengeResultsRepoWithConn(mock)
	ctx := context.Background()
	query := `INSERT INTO challenge_results .* RETURNING id, created_at`
	result := entity.ChallengeResult{
		UserID:       userID,
		ProblemID:    1001,
		ProblemTitle: "Two sum",
		Difficulty:   entity.Medium,
		Score:        8,
		DayNumber:    3,
	}
	args := []any{result.UserID, result.ProblemID, result.ProblemTitle, "medium", result.Score, result.DayNumber}
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		created := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		r := result
		require.NoError(t, repo.Create(ctx, &r))
		assert.Equal(t, id, r.ID)
		assert.Equal(t, created, r.CreatedAt)
	})
	t.Run("unknown problem", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "challenge_results_problem_id_fkey"})
		r := result
		assert.ErrorIs(t, repo.Create(ctx, &r), errorvalues.ErrProblemNotFound)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "challenge_results_user_id_fkey"})
		r := result
		assert.ErrorIs(t, repo.Create(ctx, &r), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		r := result
		assert.EqualError(t, repo.Create(ctx, &r), "saving challenge result error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewChallengeResultsRepoWithConn(mock)
	ctx := context.Background()
	columns := []string{"id", "name", "student_id", "total_score", "problems_completed", "avg_score", "current_day", "is_active", "created_at"}
	joined := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	entries := []entity.LeaderboardEntry{
		{UserID: uuid.New(), Name: "alice", StudentID: "S-1", TotalScore: 42, ProblemsCompleted: 5, AvgScore: 8, CurrentDay: 2, IsActive: true, JoinedAt: joined},
		{UserID: uuid.New(), Name: "bob", StudentID: "S-2", TotalScore: 90, ProblemsCompleted: 10, AvgScore: 9, CurrentDay: 3, IsActive: false, JoinedAt: joined},
	}
	t.Run("page", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, e := range entries {
			rows.AddRow(e.UserID, e.Name, e.StudentID, e.TotalScore, e.ProblemsCompleted, e.AvgScore, e.CurrentDay, e.IsActive, e.JoinedAt)
		}
		mock.ExpectQuery(`(?s)FROM challenge_progress cp JOIN users u ON u.id = cp.user_id LEFT JOIN challenge_results r ON r.user_id = cp.user_id .*ORDER BY cp.is_active DESC, total_score DESC, u.created_at ASC LIMIT 10 OFFSET 20`).
			WillReturnRows(rows)
		got, err := repo.Leaderboard(ctx, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(`FROM challenge_progress cp`).WillReturnRows(pgxmock.NewRows(columns))
		got, err := repo.Leaderboard(ctx, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`FROM challenge_progress cp`).WillReturnError(errors.New("db error"))
		_, err := repo.Leaderboard(ctx, 10, 0)
		assert.EqualError(t, err, "getting leaderboard error: db error")
	})
	t.Run("invalid pagination", func(t *testing.T) {
		_, err := repo.Leaderboard(ctx, 0, 0)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
