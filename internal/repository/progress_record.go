package repository

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
)

// progressRecord is the column layout of challenge_progress.
type progressRecord struct {
	SchemaVersion    int
	IsActive         bool
	StartDate        *time.Time
	CurrentDay       int
	ConsecutiveDays  int
	CompletedDays    int
	DailyChallenges  []byte
	ActivityLogs     []byte
	LastActivityDate *time.Time
	Failed           bool
	FailedReason     *string
}

var progressValidate = newProgressValidator()

func newProgressValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateProgress, entity.ChallengeProgress{})
	return v
}

func validateProgress(sl validator.StructLevel) {
	p := sl.Current().Interface().(entity.ChallengeProgress)
	if p.CurrentDay < 0 {
		sl.ReportError(p.CurrentDay, "currentDay", "CurrentDay", "gte", "0")
	}
	if p.CurrentDay > len(p.DailyChallenges) {
		sl.ReportError(p.CurrentDay, "currentDay", "CurrentDay", "lte", "dailyChallenges")
	}
	if p.ConsecutiveDays < 0 {
		sl.ReportError(p.ConsecutiveDays, "consecutiveDays", "ConsecutiveDays", "gte", "0")
	}
	if p.CompletedDays < 0 || p.CompletedDays > len(p.DailyChallenges) {
		sl.ReportError(p.CompletedDays, "completedDays", "CompletedDays", "range", "")
	}
	if p.IsActive && !p.Failed && (p.StartDate == nil || p.CurrentDay < 1) {
		sl.ReportError(p.StartDate, "startDate", "StartDate", "required_if_active", "")
	}
	if p.Failed && p.FailedReason == nil {
		sl.ReportError(p.FailedReason, "failedReason", "FailedReason", "required_if_failed", "")
	}
	for i, day := range p.DailyChallenges {
		if day.Day != i+1 {
			sl.ReportError(day.Day, "day", "Day", "sequential", "")
		}
		for _, d := range entity.Difficulties {
			for _, id := range day.CompletedProblems.Of(d) {
				if !day.Problems.Contains(d, id) {
					sl.ReportError(id, "completedProblems", "CompletedProblems", "subset", d.Key())
				}
			}
		}
	}
}

func recordFromProgress(p *entity.ChallengeProgress) (*progressRecord, error) {
	days, err := sonic.Marshal(p.DailyChallenges)
	if err != nil {
		return nil, errors.New("encoding daily challenges error: " + err.Error())
	}
	logs, err := sonic.Marshal(p.ActivityLogs)
	if err != nil {
		return nil, errors.New("encoding activity logs error: " + err.Error())
	}
	rec := &progressRecord{
		SchemaVersion:   entity.ProgressSchemaVersion,
		IsActive:        p.IsActive,
		CurrentDay:      p.CurrentDay,
		ConsecutiveDays: p.ConsecutiveDays,
		CompletedDays:   p.CompletedDays,
		DailyChallenges: days,
		ActivityLogs:    logs,
		Failed:          p.Failed,
		FailedReason:    p.FailedReason,
	}
	if p.StartDate != nil {
		t := p.StartDate.Time()
		rec.StartDate = &t
	}
	if p.LastActivityDate != nil {
		t := p.LastActivityDate.Time()
		rec.LastActivityDate = &t
	}
	return rec, nil
}

func (r *progressRecord) toProgress() (*entity.ChallengeProgress, error) {
	p := &entity.ChallengeProgress{
		SchemaVersion:   r.SchemaVersion,
		IsActive:        r.IsActive,
		CurrentDay:      r.CurrentDay,
		ConsecutiveDays: r.ConsecutiveDays,
		CompletedDays:   r.CompletedDays,
		Failed:          r.Failed,
		FailedReason:    r.FailedReason,
	}
	if r.StartDate != nil {
		p.StartDate = entity.DatePtr(entity.DateOf(*r.StartDate, time.UTC))
	}
	if r.LastActivityDate != nil {
		p.LastActivityDate = entity.DatePtr(entity.DateOf(*r.LastActivityDate, time.UTC))
	}
	if len(r.DailyChallenges) > 0 {
		if err := sonic.Unmarshal(r.DailyChallenges, &p.DailyChallenges); err != nil {
			return nil, errors.Join(errorvalues.ErrMalformedProgress, err)
		}
	}
	if len(r.ActivityLogs) > 0 {
		if err := sonic.Unmarshal(r.ActivityLogs, &p.ActivityLogs); err != nil {
			return nil, errors.Join(errorvalues.ErrMalformedProgress, err)
		}
	}
	if err := normalizeProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeProgress parses a whole progress document, as kept by the local store.
func decodeProgress(data []byte) (*entity.ChallengeProgress, error) {
	var p entity.ChallengeProgress
	if err := sonic.Unmarshal(data, &p); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedProgress, err)
	}
	if err := normalizeProgress(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// normalizeProgress brings a stored record to the current schema version.
// Version 1 records are coerced, current ones must already be valid.
func normalizeProgress(p *entity.ChallengeProgress) error {
	switch {
	case p.SchemaVersion <= 1:
		migrateV1(p)
	case p.SchemaVersion > entity.ProgressSchemaVersion:
		return errors.Join(errorvalues.ErrMalformedProgress, errors.New("unknown schema version"))
	}
	if p.DailyChallenges == nil {
		p.DailyChallenges = []entity.DailyChallenge{}
	}
	if p.ActivityLogs == nil {
		p.ActivityLogs = []entity.ActivityLog{}
	}
	for i := range p.DailyChallenges {
		p.DailyChallenges[i].Problems = p.DailyChallenges[i].Problems.Clone()
		p.DailyChallenges[i].CompletedProblems = p.DailyChallenges[i].CompletedProblems.Clone()
	}
	if err := progressValidate.Struct(p); err != nil {
		return errors.Join(errorvalues.ErrMalformedProgress, err)
	}
	return nil
}

// migrateV1 handles records written before failure tracking existed.
func migrateV1(p *entity.ChallengeProgress) {
	p.SchemaVersion = entity.ProgressSchemaVersion
	p.Failed = false
	p.FailedReason = nil
	for i := range p.DailyChallenges {
		day := &p.DailyChallenges[i]
		day.Day = i + 1
		var kept entity.ProblemSet
		for _, d := range entity.Difficulties {
			for _, id := range day.CompletedProblems.Of(d) {
				if day.Problems.Contains(d, id) && !kept.Contains(d, id) {
					kept.Add(d, id)
				}
			}
		}
		day.CompletedProblems = kept
	}
	if p.CurrentDay > len(p.DailyChallenges) {
		p.CurrentDay = len(p.DailyChallenges)
	}
	if p.CurrentDay < 0 {
		p.CurrentDay = 0
	}
	p.ConsecutiveDays = max(p.ConsecutiveDays, 0)
	p.CompletedDays = min(max(p.CompletedDays, 0), len(p.DailyChallenges))
	if p.IsActive && (p.StartDate == nil || p.CurrentDay < 1) {
		p.IsActive = false
	}
}
