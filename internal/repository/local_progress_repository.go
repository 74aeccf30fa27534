package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/cleanup"
	"github.com/limbo/codestreak/pkg/entity"
	_ "modernc.org/sqlite"
)

// LocalProgressRepository keeps one progress document per user in a sqlite file.
// It backs the postgres store when that one is unreachable.
type LocalProgressRepository struct {
	db *sql.DB
}

// modernc applies _pragma on every new connection.
const localStorePragmas = "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"

func NewLocalProgressRepo(path string) (*LocalProgressRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.New("creating local store directory error: " + err.Error())
	}
	db, err := sql.Open("sqlite", path+localStorePragmas)
	if err != nil {
		return nil, errors.New("opening local store error: " + err.Error())
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("pinging local store error: " + err.Error())
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS challenge_progress (
		user_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`)
	if err != nil {
		db.Close()
		return nil, errors.New("creating local store schema error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing local progress store",
		F:    db.Close,
	})
	return &LocalProgressRepository{db: db}, nil
}

func (lr *LocalProgressRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error) {
	var payload string
	err := lr.db.QueryRowContext(ctx, `SELECT payload FROM challenge_progress WHERE user_id = ?;`, uid.String()).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.New("reading local progress error: " + err.Error())
	}
	return decodeProgress([]byte(payload))
}

func (lr *LocalProgressRepository) Upsert(ctx context.Context, uid uuid.UUID, progress *entity.ChallengeProgress) error {
	if progress == nil {
		return errors.New("progress is nil")
	}
	stored := *progress
	stored.SchemaVersion = entity.ProgressSchemaVersion
	payload, err := sonic.Marshal(&stored)
	if err != nil {
		return errors.New("encoding local progress error: " + err.Error())
	}
	_, err = lr.db.ExecContext(ctx, `INSERT INTO challenge_progress (user_id, payload, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at;`,
		uid.String(), string(payload), time.Now().Unix(),
	)
	if err != nil {
		return errors.New("writing local progress error: " + err.Error())
	}
	return nil
}

// Close releases the underlying database.
func (lr *LocalProgressRepository) Close() error {
	return lr.db.Close()
}
