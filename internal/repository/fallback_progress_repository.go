package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

// FallbackProgressRepository reads from primary and falls back to local.
// Writes go to both and succeed when either store accepts them.
type FallbackProgressRepository struct {
	primary ChallengeProgressRepositoryI
	local   ChallengeProgressRepositoryI
	logger  *slog.Logger
}

func NewFallbackProgressRepo(primary, local ChallengeProgressRepositoryI, logger *slog.Logger) *FallbackProgressRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackProgressRepository{
		primary: primary,
		local:   local,
		logger:  logger,
	}
}

func (fr *FallbackProgressRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.ChallengeProgress, error) {
	p, err := fr.primary.Get(ctx, uid)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errorvalues.ErrProgressNotFound) {
		fr.logger.Warn("primary progress store read failed, using local", slog.String("error", err.Error()), slog.String("uid", uid.String()))
	}
	localP, localErr := fr.local.Get(ctx, uid)
	if localErr != nil {
		if errors.Is(err, errorvalues.ErrProgressNotFound) && errors.Is(localErr, errorvalues.ErrProgressNotFound) {
			return nil, errorvalues.ErrProgressNotFound
		}
		return nil, errors.Join(err, localErr)
	}
	return localP, nil
}

func (fr *FallbackProgressRepository) Upsert(ctx context.Context, uid uuid.UUID, progress *entity.ChallengeProgress) error {
	primaryErr := fr.primary.Upsert(ctx, uid, progress)
	localErr := fr.local.Upsert(ctx, uid, progress)
	switch {
	case primaryErr == nil && localErr == nil:
		return nil
	case primaryErr == nil:
		fr.logger.Warn("local progress store write failed", slog.String("error", localErr.Error()), slog.String("uid", uid.String()))
		return nil
	case localErr == nil:
		fr.logger.Warn("primary progress store write failed", slog.String("error", primaryErr.Error()), slog.String("uid", uid.String()))
		return nil
	}
	return errors.Join(primaryErr, localErr)
}
