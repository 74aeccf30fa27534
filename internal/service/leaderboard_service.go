package service

import (
	"context"
	"errors"

	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/pkg/entity"
)

type LeaderboardService struct {
	repo repository.ChallengeResultsRepositoryI
}

func NewLeaderboardService(repo repository.ChallengeResultsRepositoryI) *LeaderboardService {
	return &LeaderboardService{
		repo: repo,
	}
}

// Top lists participants, active runs first, then by total score, then by who joined first.
func (ls *LeaderboardService) Top(ctx context.Context, pagination PaginationOpts) ([]entity.LeaderboardEntry, error) {
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Offset < 0 {
		pagination.Offset = 0
	}
	entries, err := ls.repo.Leaderboard(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	return entries, nil
}
