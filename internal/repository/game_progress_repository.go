package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

type GameProgressRepository struct {
	conn PgConnection
}

func NewGameProgressRepo(cfg DBConfig) *GameProgressRepository {
	return NewGameProgressRepoWithConn(NewPool(cfg))
}

func NewGameProgressRepoWithConn(conn PgConnection) *GameProgressRepository {
	mustPing(conn, "gameProgressRepo")
	return &GameProgressRepository{
		conn: conn,
	}
}

func (gr *GameProgressRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.GameProgress, error) {
	var (
		gp             = entity.GameProgress{UserID: uid}
		badges, events []byte
	)
	row := gr.conn.QueryRow(ctx, `SELECT level, xp, rank, badges, history, updated_at FROM game_progress WHERE user_id = $1;`, uid)
	if err := row.Scan(&gp.Level, &gp.XP, &gp.Rank, &badges, &events, &gp.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGameProgressAbsent
		}
		return nil, errors.New("getting game progress error: " + err.Error())
	}
	if err := sonic.Unmarshal(badges, &gp.Badges); err != nil {
		return nil, errors.New("decoding badges error: " + err.Error())
	}
	if err := sonic.Unmarshal(events, &gp.History); err != nil {
		return nil, errors.New("decoding history error: " + err.Error())
	}
	if gp.Badges == nil {
		gp.Badges = []string{}
	}
	if gp.History == nil {
		gp.History = []entity.HistoryEntry{}
	}
	return &gp, nil
}

func (gr *GameProgressRepository) Upsert(ctx context.Context, progress *entity.GameProgress) error {
	if progress == nil {
		return errors.New("game progress is nil")
	}
	badges := progress.Badges
	if badges == nil {
		badges = []string{}
	}
	history := progress.History
	if history == nil {
		history = []entity.HistoryEntry{}
	}
	badgesJSON, err := sonic.Marshal(badges)
	if err != nil {
		return errors.New("encoding badges error: " + err.Error())
	}
	historyJSON, err := sonic.Marshal(history)
	if err != nil {
		return errors.New("encoding history error: " + err.Error())
	}
	_, err = gr.conn.Exec(ctx, `INSERT INTO game_progress (user_id, level, xp, rank, badges, history) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET level = EXCLUDED.level, xp = EXCLUDED.xp, rank = EXCLUDED.rank, badges = EXCLUDED.badges, history = EXCLUDED.history, updated_at = NOW();`,
		progress.UserID,
		progress.Level,
		progress.XP,
		progress.Rank,
		badgesJSON,
		historyJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving game progress error: " + err.Error())
	}
	return nil
}
