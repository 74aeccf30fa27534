package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/repository/mocks"
	"github.com/limbo/codestreak/internal/service"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var uid = uuid.New()

func newChallengeService(t *testing.T, opts service.ChallengeServiceOpts) (*service.ChallengeService, *mocks.MockChallengeProgressRepositoryI) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockChallengeProgressRepositoryI(ctrl)
	return service.NewChallengeService(testEngine(), store, testClock(), opts), store
}

func TestChallengeServiceLoad(t *testing.T) {
	ctx := context.Background()
	e := testEngine()
	cases := []struct {
		Desc         string
		MockPrepFunc func(store *mocks.MockChallengeProgressRepositoryI)
		Check        func(t *testing.T, p *entity.ChallengeProgress)
	}{
		{
			Desc: "no record gives default without writing",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrProgressNotFound)
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.Equal(t, entity.DefaultChallengeProgress(), p)
			},
		},
		{
			Desc: "read failure gives default",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("db error"))
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.False(t, p.IsActive)
			},
		},
		{
			Desc: "malformed record gives default",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrMalformedProgress)
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.Equal(t, entity.DefaultChallengeProgress(), p)
			},
		},
		{
			Desc: "same day is not written",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today, false), nil)
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.Equal(t, 1, p.CurrentDay)
			},
		},
		{
			Desc: "completed yesterday advances and writes",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today.AddDays(-1), true), nil)
				store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id uuid.UUID, p *entity.ChallengeProgress) error {
						assert.Equal(t, 2, p.CurrentDay)
						return nil
					})
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.Equal(t, 2, p.CurrentDay)
				assert.Equal(t, today, *p.LastActivityDate)
			},
		},
		{
			Desc: "gap fails the run and writes",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today.AddDays(-3), true), nil)
				store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.True(t, p.Failed)
				assert.Equal(t, "missed 2 day(s); challenge ended", *p.FailedReason)
			},
		},
		{
			Desc: "write failure is swallowed",
			MockPrepFunc: func(store *mocks.MockChallengeProgressRepositoryI) {
				store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today.AddDays(-1), false), nil)
				store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(errors.New("db error"))
			},
			Check: func(t *testing.T, p *entity.ChallengeProgress) {
				assert.True(t, p.Failed)
				assert.Equal(t, "did not complete required problems on day 1; challenge ended", *p.FailedReason)
			},
		},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
			c.MockPrepFunc(store)
			p, err := cs.Load(ctx, uid)
			require.NoError(t, err)
			c.Check(t, p)
		})
	}
}

func TestChallengeServiceStart(t *testing.T) {
	cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
	store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
	p, err := cs.Start(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, today, *p.StartDate)
	assert.Len(t, p.DailyChallenges, 1)
}

func TestChallengeServiceRecordCompletion(t *testing.T) {
	ctx := context.Background()
	e := testEngine()
	t.Run("assigned problem is counted", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		p := startedOn(t, e, today, false)
		id := p.Today().Problems.Hard[0]
		store.EXPECT().Get(gomock.Any(), uid).Return(p, nil)
		store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
		updated, changed, err := cs.RecordCompletion(ctx, uid, id, entity.Hard, 7)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []int64{id}, updated.Today().CompletedProblems.Hard)
	})
	t.Run("low score is not written", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		p := startedOn(t, e, today, false)
		store.EXPECT().Get(gomock.Any(), uid).Return(p, nil)
		_, changed, err := cs.RecordCompletion(ctx, uid, p.Today().Problems.Hard[0], entity.Hard, 5)
		require.NoError(t, err)
		assert.False(t, changed)
	})
	t.Run("unknown difficulty changes nothing", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		p := startedOn(t, e, today, false)
		store.EXPECT().Get(gomock.Any(), uid).Return(p, nil)
		updated, changed, err := cs.RecordCompletion(ctx, uid, p.Today().Problems.Hard[0], entity.Difficulty(9), 10)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, p, updated)
	})
	t.Run("day boundary applied before counting", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		p := startedOn(t, e, today.AddDays(-1), false)
		id := p.Today().Problems.Easy[0]
		store.EXPECT().Get(gomock.Any(), uid).Return(p, nil)
		store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
		updated, changed, err := cs.RecordCompletion(ctx, uid, id, entity.Easy, 10)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, updated.Failed)
	})
}

func TestChallengeServiceReset(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Run("wrong secret", func(t *testing.T) {
		cs, _ := newChallengeService(t, service.ChallengeServiceOpts{ResetSecretHash: string(hash)})
		_, err := cs.Reset(ctx, uid, "guess")
		assert.ErrorIs(t, err, errorvalues.ErrResetForbidden)
	})
	t.Run("reset disabled", func(t *testing.T) {
		cs, _ := newChallengeService(t, service.ChallengeServiceOpts{})
		_, err := cs.Reset(ctx, uid, "")
		assert.ErrorIs(t, err, errorvalues.ErrResetForbidden)
	})
	t.Run("reset writes default", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{ResetSecretHash: string(hash)})
		store.EXPECT().Upsert(gomock.Any(), uid, entity.DefaultChallengeProgress()).Return(nil)
		p, err := cs.Reset(ctx, uid, "open sesame")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultChallengeProgress(), p)
	})
	t.Run("logs survive when configured", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{ResetSecretHash: string(hash), KeepLogsOnReset: true})
		old := startedOn(t, testEngine(), today, false)
		old.ActivityLogs = []entity.ActivityLog{{Timestamp: now, ProblemID: 3, Action: entity.ActionStart}}
		store.EXPECT().Get(gomock.Any(), uid).Return(old, nil)
		store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
		p, err := cs.Reset(ctx, uid, "open sesame")
		require.NoError(t, err)
		assert.False(t, p.IsActive)
		assert.Equal(t, old.ActivityLogs, p.ActivityLogs)
	})
}

func TestChallengeServiceActivity(t *testing.T) {
	ctx := context.Background()
	e := testEngine()
	t.Run("logged with timestamp", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today, false), nil)
		store.EXPECT().Upsert(gomock.Any(), uid, gomock.Any()).Return(nil)
		p, err := cs.LogActivity(ctx, uid, entity.ActivityLog{ProblemID: 5, Action: entity.ActionStart})
		require.NoError(t, err)
		require.Len(t, p.ActivityLogs, 1)
		assert.Equal(t, now, p.ActivityLogs[0].Timestamp)
	})
	t.Run("suspicious paste", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		p := startedOn(t, e, today, false)
		p.ActivityLogs = []entity.ActivityLog{
			{Timestamp: now, ProblemID: 5, Action: entity.ActionPaste, Details: &entity.ActivityDetails{PasteLength: 80}},
			{Timestamp: now, ProblemID: 5, Action: entity.ActionSubmit, Details: &entity.ActivityDetails{CodeLength: 100}},
		}
		store.EXPECT().Get(gomock.Any(), uid).Return(p, nil)
		found, err := cs.Suspicious(ctx, uid, 5)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, entity.SeverityHigh, found[0].Severity)
	})
	t.Run("stats", func(t *testing.T) {
		cs, store := newChallengeService(t, service.ChallengeServiceOpts{})
		store.EXPECT().Get(gomock.Any(), uid).Return(startedOn(t, e, today, true), nil)
		stats, err := cs.Stats(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 19, stats.DaysRemaining)
		assert.Equal(t, 5, stats.CompletedProblems)
		assert.Equal(t, 100, stats.TotalProblemsRequired)
	})
}
