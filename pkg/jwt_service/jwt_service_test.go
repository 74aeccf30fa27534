package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/pkg/entity"
	jwtservice "github.com/limbo/codestreak/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("secret")
	user := &entity.User{ID: uuid.New(), Name: "alice", StudentID: "CS-1"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "CS-1", claims.StudentID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenErrors(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "alice"}
	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwtservice.New("other").GenerateToken(user)
		require.NoError(t, err)
		_, err = jwtservice.New("secret").ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := jwtservice.New("secret").ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
