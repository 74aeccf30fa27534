package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGameProgress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGameProgressRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT level, xp, rank, badges, history, updated_at FROM game_progress WHERE user_id = $1;`)
	columns := []string{"level", "xp", "rank", "badges", "history", "updated_at"}
	updated := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(3, 120, "Junior", []byte(`["First Blood"]`),
				[]byte(`[{"problemId":4,"score":9,"date":"2025-03-04T08:00:00Z","mode":"practice"}]`), updated))
		gp, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &entity.GameProgress{
			UserID:    userID,
			Level:     3,
			XP:        120,
			Rank:      "Junior",
			Badges:    []string{"First Blood"},
			History:   []entity.HistoryEntry{{ProblemID: 4, Score: 9, Date: updated, Mode: entity.ModePractice}},
			UpdatedAt: updated,
		}, gp)
	})
	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrGameProgressAbsent)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx, userID)
		assert.EqualError(t, err, "getting game progress error: db error")
	})
}

func TestUpsertGameProgress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGameProgressRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO game_progress (user_id, level, xp, rank, badges, history) VALUES ($1, $2, $3, $4, $5, $6)`)
	gp := entity.DefaultGameProgress(userID)
	t.Run("saved", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, 1, 0, "Intern", []byte(`[]`), []byte(`[]`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Upsert(ctx, gp))
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, 1, 0, "Intern", pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Upsert(ctx, gp), errorvalues.ErrUserNotFound)
	})
	t.Run("nil", func(t *testing.T) {
		assert.Error(t, repo.Upsert(ctx, nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
