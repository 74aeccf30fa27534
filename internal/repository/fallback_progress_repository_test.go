package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/internal/repository/mocks"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestFallbackProgressGet(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	primaryP := activeProgress()
	localP := entity.DefaultChallengeProgress()
	cases := []struct {
		Desc         string
		Want         *entity.ChallengeProgress
		Error        error
		MockPrepFunc func(primary, local *mocks.MockChallengeProgressRepositoryI)
	}{
		{
			Desc: "primary answers",
			Want: primaryP,
			MockPrepFunc: func(primary, local *mocks.MockChallengeProgressRepositoryI) {
				primary.EXPECT().Get(gomock.Any(), uid).Return(primaryP, nil)
			},
		},
		{
			Desc: "primary down",
			Want: localP,
			MockPrepFunc: func(primary, local *mocks.MockChallengeProgressRepositoryI) {
				primary.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("connection refused"))
				local.EXPECT().Get(gomock.Any(), uid).Return(localP, nil)
			},
		},
		{
			Desc: "primary has no record but local does",
			Want: localP,
			MockPrepFunc: func(primary, local *mocks.MockChallengeProgressRepositoryI) {
				primary.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrProgressNotFound)
				local.EXPECT().Get(gomock.Any(), uid).Return(localP, nil)
			},
		},
		{
			Desc:  "absent everywhere",
			Error: errorvalues.ErrProgressNotFound,
			MockPrepFunc: func(primary, local *mocks.MockChallengeProgressRepositoryI) {
				primary.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrProgressNotFound)
				local.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrProgressNotFound)
			},
		},
		{
			Desc:  "both fail",
			Error: errorvalues.ErrMalformedProgress,
			MockPrepFunc: func(primary, local *mocks.MockChallengeProgressRepositoryI) {
				primary.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("connection refused"))
				local.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrMalformedProgress)
			},
		},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			primary := mocks.NewMockChallengeProgressRepositoryI(ctrl)
			local := mocks.NewMockChallengeProgressRepositoryI(ctrl)
			c.MockPrepFunc(primary, local)
			repo := repository.NewFallbackProgressRepo(primary, local, nil)
			got, err := repo.Get(ctx, uid)
			if c.Error != nil {
				assert.ErrorIs(t, err, c.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.Want, got)
		})
	}
}

func TestFallbackProgressUpsert(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	p := activeProgress()
	dbErr := errors.New("db error")
	cases := []struct {
		Desc       string
		PrimaryErr error
		LocalErr   error
		Failed     bool
	}{
		{Desc: "both accept"},
		{Desc: "primary fails", PrimaryErr: dbErr},
		{Desc: "local fails", LocalErr: dbErr},
		{Desc: "both fail", PrimaryErr: dbErr, LocalErr: errors.New("disk full"), Failed: true},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			primary := mocks.NewMockChallengeProgressRepositoryI(ctrl)
			local := mocks.NewMockChallengeProgressRepositoryI(ctrl)
			primary.EXPECT().Upsert(gomock.Any(), uid, p).Return(c.PrimaryErr)
			local.EXPECT().Upsert(gomock.Any(), uid, p).Return(c.LocalErr)
			err := repository.NewFallbackProgressRepo(primary, local, nil).Upsert(ctx, uid, p)
			if c.Failed {
				assert.ErrorIs(t, err, dbErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
