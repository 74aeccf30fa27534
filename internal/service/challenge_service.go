package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/codestreak/internal/challenge"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/metrics"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type ChallengeServiceOpts struct {
	// bcrypt hash of the shared reset secret. Empty disables reset
	ResetSecretHash string
	// Keep anti-cheat logs across a reset
	KeepLogsOnReset bool
	Logger          *slog.Logger
}

// ChallengeService loads, mutates and stores challenge progress around the engine.
// Store failures never reach the caller: reads degrade to a fresh entity and writes are logged.
type ChallengeService struct {
	engine *challenge.Engine
	store  repository.ChallengeProgressRepositoryI
	clock  challenge.Clock
	opts   ChallengeServiceOpts
	logger *slog.Logger
}

func NewChallengeService(engine *challenge.Engine, store repository.ChallengeProgressRepositoryI, clock challenge.Clock, opts ChallengeServiceOpts) *ChallengeService {
	if engine == nil || store == nil || clock == nil {
		log.Fatal("provided nil dependency for challenge service")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeService{
		engine: engine,
		store:  store,
		clock:  clock,
		opts:   opts,
		logger: logger,
	}
}

func (cs *ChallengeService) read(ctx context.Context, uid uuid.UUID) *entity.ChallengeProgress {
	p, err := cs.store.Get(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrProgressNotFound) {
			cs.logger.Error("reading challenge progress failed, using default",
				slog.String("uid", uid.String()),
				slog.String("error", err.Error()),
			)
		}
		return entity.DefaultChallengeProgress()
	}
	return p
}

func (cs *ChallengeService) write(ctx context.Context, uid uuid.UUID, p *entity.ChallengeProgress) {
	if err := cs.store.Upsert(ctx, uid, p); err != nil {
		metrics.StoreWriteFailed("challenge_progress")
		cs.logger.Error("saving challenge progress failed",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (cs *ChallengeService) Load(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error) {
	p := cs.read(ctx, uid)
	advanced, changed, err := cs.engine.ValidateAndAdvance(ctx, p, cs.clock.Today())
	if err != nil {
		if errors.Is(err, errorvalues.ErrCatalogExhausted) {
			return nil, err
		}
		return nil, errors.New("advancing challenge error: " + err.Error())
	}
	if !changed {
		return advanced, nil
	}
	switch {
	case advanced.Failed:
		reason := metrics.FailureIncomplete
		if advanced.LastActivityDate != nil && advanced.LastActivityDate.DaysUntil(cs.clock.Today()) > 1 {
			reason = metrics.FailureMissedDays
		}
		metrics.RunFailed(reason)
		cs.logger.Info("challenge run failed", slog.String("uid", uid.String()), slog.String("reason", *advanced.FailedReason))
	case advanced.CurrentDay > p.CurrentDay:
		metrics.DayAdvanced()
	}
	cs.write(ctx, uid, advanced)
	return advanced, nil
}

func (cs *ChallengeService) Start(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error) {
	p, err := cs.engine.Start(ctx, cs.clock.Today())
	if err != nil {
		if errors.Is(err, errorvalues.ErrCatalogExhausted) {
			return nil, err
		}
		return nil, errors.New("starting challenge error: " + err.Error())
	}
	metrics.ChallengeStarted()
	cs.write(ctx, uid, p)
	return p, nil
}

func (cs *ChallengeService) RecordCompletion(ctx context.Context, uid uuid.UUID, problemID int64, difficulty entity.Difficulty, score int) (*entity.ChallengeProgress, bool, error) {
	p, err := cs.Load(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	updated, changed := cs.engine.RecordCompletion(p, problemID, difficulty, score, cs.clock.Today())
	if !changed {
		return updated, false, nil
	}
	metrics.CompletionRecorded(difficulty.Key())
	cs.write(ctx, uid, updated)
	return updated, true, nil
}

func (cs *ChallengeService) Reset(ctx context.Context, uid uuid.UUID, secret string) (*entity.ChallengeProgress, error) {
	if cs.opts.ResetSecretHash == "" {
		return nil, errorvalues.ErrResetForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cs.opts.ResetSecretHash), []byte(secret)); err != nil {
		return nil, errorvalues.ErrResetForbidden
	}
	var current *entity.ChallengeProgress
	if cs.opts.KeepLogsOnReset {
		current = cs.read(ctx, uid)
	}
	fresh := cs.engine.Reset(current, cs.opts.KeepLogsOnReset)
	cs.write(ctx, uid, fresh)
	return fresh, nil
}

func (cs *ChallengeService) LogActivity(ctx context.Context, uid uuid.UUID, activity entity.ActivityLog) (*entity.ChallengeProgress, error) {
	p, err := cs.Load(ctx, uid)
	if err != nil {
		return nil, err
	}
	updated, changed := cs.engine.LogActivity(p, activity, cs.clock.Now())
	if changed {
		cs.write(ctx, uid, updated)
	}
	return updated, nil
}

func (cs *ChallengeService) Stats(ctx context.Context, uid uuid.UUID) (entity.ChallengeStats, error) {
	p, err := cs.Load(ctx, uid)
	if err != nil {
		return entity.ChallengeStats{}, err
	}
	return cs.engine.Stats(p), nil
}

func (cs *ChallengeService) Suspicious(ctx context.Context, uid uuid.UUID, problemID int64) ([]entity.SuspiciousActivity, error) {
	p, err := cs.Load(ctx, uid)
	if err != nil {
		return nil, err
	}
	return cs.engine.DetectSuspiciousActivity(p.ActivityLogs, problemID, cs.clock.Now()), nil
}
