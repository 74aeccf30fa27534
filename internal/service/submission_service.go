package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/codestreak/internal/challenge"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/pkg/entity"
)

type SubmissionService struct {
	games      repository.GameProgressRepositoryI
	results    repository.ChallengeResultsRepositoryI
	problems   repository.ProblemsRepositoryI
	challenges ChallengeServiceI
	clock      challenge.Clock
	logger     *slog.Logger
}

func NewSubmissionService(
	games repository.GameProgressRepositoryI,
	results repository.ChallengeResultsRepositoryI,
	problems repository.ProblemsRepositoryI,
	challenges ChallengeServiceI,
	clock challenge.Clock,
	logger *slog.Logger,
) *SubmissionService {
	if games == nil || results == nil || problems == nil || challenges == nil || clock == nil {
		log.Fatal("provided nil dependency for submission service")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionService{
		games:      games,
		results:    results,
		problems:   problems,
		challenges: challenges,
		clock:      clock,
		logger:     logger,
	}
}

func (ss *SubmissionService) GameProgress(ctx context.Context, uid uuid.UUID) (*entity.GameProgress, error) {
	gp, err := ss.games.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGameProgressAbsent) {
			return entity.DefaultGameProgress(uid), nil
		}
		return nil, errors.New("game progress repository error: " + err.Error())
	}
	return gp, nil
}

func (ss *SubmissionService) Submit(ctx context.Context, uid uuid.UUID, req *SubmitRequest) (*SubmissionResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	problem, err := ss.problems.GetByID(ctx, req.ProblemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProblemNotFound) {
			return nil, errorvalues.ErrProblemNotFound
		}
		return nil, errors.New("problems repository error: " + err.Error())
	}
	// Challenge first: a failed challenge update awards no XP.
	var progress *entity.ChallengeProgress
	var counted bool
	if req.Challenge {
		progress, counted, err = ss.challenges.RecordCompletion(ctx, uid, problem.ID, problem.Difficulty, req.Score)
		if err != nil {
			return nil, err
		}
	}
	gp, err := ss.GameProgress(ctx, uid)
	if err != nil {
		return nil, err
	}
	updated, xp, badges := ApplySubmission(gp, entity.HistoryEntry{
		ProblemID: problem.ID,
		Score:     req.Score,
		Date:      ss.clock.Now(),
		Mode:      req.Mode,
		Feedback:  req.Feedback,
	})
	if err = ss.games.Upsert(ctx, updated); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("game progress repository error: " + err.Error())
	}
	result := &SubmissionResult{
		Game:      updated,
		XPGained:  xp,
		NewBadges: badges,
		Progress:  progress,
		Counted:   counted,
	}
	if progress == nil || !progress.IsActive {
		return result, nil
	}
	// Every attempt of an active run goes to the leaderboard, passing or not.
	err = ss.results.Create(ctx, &entity.ChallengeResult{
		UserID:       uid,
		ProblemID:    problem.ID,
		ProblemTitle: problem.Title,
		Difficulty:   problem.Difficulty,
		Score:        req.Score,
		DayNumber:    progress.CurrentDay,
	})
	if err != nil {
		ss.logger.Error("saving challenge result failed",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
	return result, nil
}
