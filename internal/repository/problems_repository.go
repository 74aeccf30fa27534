package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

type ProblemsRepository struct {
	conn PgConnection
}

func NewProblemsRepo(cfg DBConfig) *ProblemsRepository {
	return NewProblemsRepoWithConn(NewPool(cfg))
}

func NewProblemsRepoWithConn(conn PgConnection) *ProblemsRepository {
	mustPing(conn, "problemsRepo")
	return &ProblemsRepository{
		conn: conn,
	}
}

func (pr *ProblemsRepository) ListIDsByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]int64, error) {
	if !difficulty.Valid() {
		return nil, errorvalues.ErrUnknownDifficulty
	}
	rows, err := pr.conn.Query(ctx, `SELECT id FROM problems WHERE difficulty = $1 ORDER BY id;`, difficulty.Key())
	if err != nil {
		return nil, errors.New("listing problems error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("scanning problem id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing problems error: " + err.Error())
	}
	return ids, nil
}

func (pr *ProblemsRepository) GetByID(ctx context.Context, id int64) (*entity.Problem, error) {
	var (
		p          entity.Problem
		difficulty string
	)
	row := pr.conn.QueryRow(ctx, `SELECT id, title, difficulty, skill FROM problems WHERE id = $1;`, id)
	if err := row.Scan(&p.ID, &p.Title, &difficulty, &p.Skill); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProblemNotFound
		}
		return nil, errors.New("getting problem error: " + err.Error())
	}
	d, ok := entity.ParseDifficulty(difficulty)
	if !ok {
		return nil, errors.New("getting problem error: " + errorvalues.ErrUnknownDifficulty.Error())
	}
	p.Difficulty = d
	return &p, nil
}
