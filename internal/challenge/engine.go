// Package challenge holds the rules of the 20-day challenge: how a run starts,
// how it advances from day to day, when it fails and how completions are counted.
// Operations never mutate their input. Changes come back as a new value, together with a flag.
package challenge

import (
	"context"
	"fmt"

	"github.com/limbo/codestreak/pkg/entity"
)

type Engine struct {
	rules    Rules
	selector *Selector
}

func NewEngine(rules Rules, selector *Selector) *Engine {
	return &Engine{
		rules:    rules,
		selector: selector,
	}
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Start begins a new run on today. Any previous progress is discarded by the caller.
func (e *Engine) Start(ctx context.Context, today entity.Date) (*entity.ChallengeProgress, error) {
	first, err := e.selector.GenerateDay(ctx, 1, today, nil)
	if err != nil {
		return nil, err
	}
	p := entity.DefaultChallengeProgress()
	p.IsActive = true
	p.StartDate = entity.DatePtr(today)
	p.CurrentDay = 1
	p.LastActivityDate = entity.DatePtr(today)
	p.DailyChallenges = []entity.DailyChallenge{first}
	return p, nil
}

// ValidateAndAdvance applies the day boundary rules for today.
// A gap of more than one day ends the run, so does an incomplete day followed by a boundary.
// A completed day followed by exactly one boundary opens the next day.
func (e *Engine) ValidateAndAdvance(ctx context.Context, progress *entity.ChallengeProgress, today entity.Date) (*entity.ChallengeProgress, bool, error) {
	if !progress.IsActive || progress.Failed || progress.LastActivityDate == nil {
		return progress, false, nil
	}
	daysDiff := progress.LastActivityDate.DaysUntil(today)
	// Negative gaps come from a clock going backwards and are treated as the same day.
	if daysDiff <= 0 {
		return progress, false, nil
	}
	if daysDiff > 1 {
		return fail(progress, fmt.Sprintf("missed %d day(s); challenge ended", daysDiff-1)), true, nil
	}
	yesterday := progress.Today()
	if yesterday == nil {
		return progress, false, nil
	}
	if !yesterday.Completed {
		return fail(progress, fmt.Sprintf("did not complete required problems on day %d; challenge ended", progress.CurrentDay)), true, nil
	}
	// Finished runs stay as they are. Callers detect them with IsFinished.
	if progress.CurrentDay >= e.rules.TotalDays {
		return progress, false, nil
	}
	next, err := e.selector.GenerateDay(ctx, progress.CurrentDay+1, today, progress.UsedProblemIDs())
	if err != nil {
		return progress, false, err
	}
	advanced := progress.Clone()
	advanced.DailyChallenges = append(advanced.DailyChallenges, next)
	advanced.CurrentDay++
	advanced.LastActivityDate = entity.DatePtr(today)
	return advanced, true, nil
}

func fail(progress *entity.ChallengeProgress, reason string) *entity.ChallengeProgress {
	failed := progress.Clone()
	failed.IsActive = false
	failed.Failed = true
	failed.FailedReason = &reason
	return failed
}

// RecordCompletion counts a graded submission towards the current day.
// Sub-passing scores, duplicates and problems not assigned today change nothing.
func (e *Engine) RecordCompletion(progress *entity.ChallengeProgress, problemID int64, difficulty entity.Difficulty, score int, today entity.Date) (*entity.ChallengeProgress, bool) {
	if score < e.rules.MinScoreToPass || progress.Failed || !difficulty.Valid() {
		return progress, false
	}
	day := progress.Today()
	if day == nil {
		return progress, false
	}
	if day.CompletedProblems.Contains(difficulty, problemID) || !day.Problems.Contains(difficulty, problemID) {
		return progress, false
	}
	wasComplete := day.Completed || e.rules.Quota.MetBy(day.CompletedProblems)

	updated := progress.Clone()
	day = updated.Today()
	day.CompletedProblems.Add(difficulty, problemID)
	isComplete := e.rules.Quota.MetBy(day.CompletedProblems)
	if isComplete {
		day.Completed = true
	}
	// Only the call that crosses the quota counts the day.
	if isComplete && !wasComplete {
		updated.CompletedDays++
		updated.ConsecutiveDays++
	}
	updated.LastActivityDate = entity.DatePtr(today)
	return updated, true
}

// Reset returns a fresh inactive entity. Activity logs survive when keepLogs is set.
func (e *Engine) Reset(progress *entity.ChallengeProgress, keepLogs bool) *entity.ChallengeProgress {
	fresh := entity.DefaultChallengeProgress()
	if keepLogs && progress != nil {
		fresh.ActivityLogs = progress.Clone().ActivityLogs
	}
	return fresh
}

// IsFinished reports whether every day of the run has been completed.
func (e *Engine) IsFinished(progress *entity.ChallengeProgress) bool {
	return progress.CompletedDays >= e.rules.TotalDays
}
