package challenge

import "github.com/limbo/codestreak/pkg/entity"

func (e *Engine) Stats(progress *entity.ChallengeProgress) entity.ChallengeStats {
	completed := 0
	for i := range progress.DailyChallenges {
		for _, d := range entity.Difficulties {
			completed += progress.DailyChallenges[i].CompletedProblems.Len(d)
		}
	}
	remaining := e.rules.TotalDays - progress.CompletedDays
	if remaining < 0 {
		remaining = 0
	}
	var percentage float64
	if e.rules.TotalDays > 0 {
		percentage = float64(progress.CompletedDays) / float64(e.rules.TotalDays) * 100
	}
	return entity.ChallengeStats{
		DaysRemaining:         remaining,
		ProgressPercentage:    percentage,
		TotalProblemsRequired: e.rules.TotalDays * e.rules.Quota.Total(),
		CompletedProblems:     completed,
		IsComplete:            e.IsFinished(progress),
		Reward:                e.rules.Reward,
	}
}
