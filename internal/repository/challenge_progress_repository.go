package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

const upsertProgressQuery = `INSERT INTO challenge_progress (user_id, schema_version, is_active, start_date, current_day, consecutive_days, completed_days, daily_challenges, activity_logs, last_activity_date, failed, failed_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id) DO UPDATE SET
schema_version = EXCLUDED.schema_version,
is_active = EXCLUDED.is_active,
start_date = EXCLUDED.start_date,
current_day = EXCLUDED.current_day,
consecutive_days = EXCLUDED.consecutive_days,
completed_days = EXCLUDED.completed_days,
daily_challenges = EXCLUDED.daily_challenges,
activity_logs = EXCLUDED.activity_logs,
last_activity_date = EXCLUDED.last_activity_date,
failed = EXCLUDED.failed,
failed_reason = EXCLUDED.failed_reason,
updated_at = NOW();`

const selectProgressQuery = `SELECT schema_version, is_active, start_date, current_day, consecutive_days, completed_days, daily_challenges, activity_logs, last_activity_date, failed, failed_reason
FROM challenge_progress WHERE user_id = $1;`

type ChallengeProgressRepository struct {
	conn PgConnection
}

func NewChallengeProgressRepo(cfg DBConfig) *ChallengeProgressRepository {
	return NewChallengeProgressRepoWithConn(NewPool(cfg))
}

func NewChallengeProgressRepoWithConn(conn PgConnection) *ChallengeProgressRepository {
	mustPing(conn, "challengeProgressRepo")
	return &ChallengeProgressRepository{
		conn: conn,
	}
}

func (cr *ChallengeProgressRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error) {
	var rec progressRecord
	row := cr.conn.QueryRow(ctx, selectProgressQuery, uid)
	err := row.Scan(
		&rec.SchemaVersion,
		&rec.IsActive,
		&rec.StartDate,
		&rec.CurrentDay,
		&rec.ConsecutiveDays,
		&rec.CompletedDays,
		&rec.DailyChallenges,
		&rec.ActivityLogs,
		&rec.LastActivityDate,
		&rec.Failed,
		&rec.FailedReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("getting challenge progress error: " + err.Error())
	}
	return rec.toProgress()
}

func (cr *ChallengeProgressRepository) Upsert(ctx context.Context, uid uuid.UUID, progress *entity.ChallengeProgress) error {
	if progress == nil {
		return errors.New("progress is nil")
	}
	rec, err := recordFromProgress(progress)
	if err != nil {
		return err
	}
	_, err = cr.conn.Exec(ctx, upsertProgressQuery,
		uid,
		rec.SchemaVersion,
		rec.IsActive,
		rec.StartDate,
		rec.CurrentDay,
		rec.ConsecutiveDays,
		rec.CompletedDays,
		rec.DailyChallenges,
		rec.ActivityLogs,
		rec.LastActivityDate,
		rec.Failed,
		rec.FailedReason,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("saving challenge progress error: " + err.Error())
	}
	return nil
}
