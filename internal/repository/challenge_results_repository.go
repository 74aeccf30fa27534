package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type ChallengeResultsRepository struct {
	conn PgConnection
}

func NewChallengeResultsRepo(cfg DBConfig) *ChallengeResultsRepository {
	return NewChallengeResultsRepoWithConn(NewPool(cfg))
}

func NewChallengeResultsRepoWithConn(conn PgConnection) *ChallengeResultsRepository {
	mustPing(conn, "challengeResultsRepo")
	return &ChallengeResultsRepository{
		conn: conn,
	}
}

func (rr *ChallengeResultsRepository) Create(ctx context.Context, result *entity.ChallengeResult) error {
	if result == nil {
		return errors.New("result is nil")
	}
	query, args, err := sqlBuilder.Insert("challenge_results").
		Columns("user_id", "problem_id", "problem_title", "difficulty", "score", "day_number").
		Values(result.UserID, result.ProblemID, result.ProblemTitle, result.Difficulty.Key(), result.Score, result.DayNumber).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return errors.New("building query error: " + err.Error())
	}
	err = rr.conn.QueryRow(ctx, query, args...).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation, either user or problem is unknown
			case "23503":
				if pgErr.ConstraintName == "challenge_results_problem_id_fkey" {
					return errorvalues.ErrProblemNotFound
				}
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("saving challenge result error: " + err.Error())
	}
	return nil
}

func (rr *ChallengeResultsRepository) Leaderboard(ctx context.Context, limit, offset int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 || offset < 0 {
		return nil, errors.New("invalid pagination")
	}
	query, args, err := sqlBuilder.Select(
		"u.id",
		"u.name",
		"u.student_id",
		"COALESCE(SUM(r.score), 0) AS total_score",
		"COUNT(r.id) AS problems_completed",
		"COALESCE(ROUND(AVG(r.score)), 0)::INT AS avg_score",
		"CASE WHEN cp.current_day > 0 THEN cp.current_day ELSE COALESCE(MAX(r.day_number), 0) END AS current_day",
		"cp.is_active",
		"u.created_at",
	).
		From("challenge_progress cp").
		Join("users u ON u.id = cp.user_id").
		LeftJoin("challenge_results r ON r.user_id = cp.user_id").
		GroupBy("u.id", "cp.current_day", "cp.is_active").
		OrderBy("cp.is_active DESC", "total_score DESC", "u.created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, errors.New("building query error: " + err.Error())
	}
	rows, err := rr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		err = rows.Scan(&e.UserID, &e.Name, &e.StudentID, &e.TotalScore, &e.ProblemsCompleted, &e.AvgScore, &e.CurrentDay, &e.IsActive, &e.JoinedAt)
		if err != nil {
			return nil, errors.New("scanning leaderboard entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	return entries, nil
}
