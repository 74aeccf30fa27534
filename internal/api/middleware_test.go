package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/codestreak/internal/api"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/metrics"
	"github.com/limbo/codestreak/internal/service/mocks"
	"github.com/limbo/codestreak/pkg/entity"
	jwtservice "github.com/limbo/codestreak/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(t *testing.T, jwt *jwtservice.JWTService) string {
	t.Helper()
	token, err := jwt.GenerateToken(&entity.User{ID: uid, Name: username})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouterAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengeServiceI(ctrl)
	users := &UserServiceMock{}
	jwt := jwtservice.New("test_secret")
	handler := api.New(&api.ServicesList{
		UserService:      users,
		ChallengeService: cService,
		JwtService:       jwt,
	}).Handler()

	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("foreign token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil)
		r.Header.Set("Authorization", bearer(t, jwtservice.New("other_secret")))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		users.FailWith(errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil)
		r.Header.Set("Authorization", bearer(t, jwt))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("user lookup fails", func(t *testing.T) {
		users.ChangeState(false)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil)
		r.Header.Set("Authorization", bearer(t, jwt))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("authorized with path param", func(t *testing.T) {
		users.ChangeState(true)
		cService.EXPECT().Suspicious(gomock.Any(), uid, int64(7)).Return([]entity.SuspiciousActivity{{
			ProblemID: 7,
			Date:      time.Now(),
			Reason:    "Pasted 80% of code",
			Severity:  entity.SeverityHigh,
		}}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenge/suspicious/7", nil)
		r.Header.Set("Authorization", bearer(t, jwt))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		_, err := uuid.Parse(rr.Result().Header.Get("X-Request-ID"))
		assert.NoError(t, err)
	})
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockSubmissionServiceI(ctrl)
	users := &UserServiceMock{}
	users.ChangeState(true)
	jwt := jwtservice.New("test_secret")
	handler := api.New(&api.ServicesList{
		UserService:       users,
		SubmissionService: sService,
		JwtService:        jwt,
	}, api.WithRateLimit(0.001, 1)).Handler()

	send := func() int {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", nil)
		r.Header.Set("Authorization", bearer(t, jwt))
		r.Header.Set("X-Forwarded-For", "10.0.0.1")
		handler.ServeHTTP(rr, r)
		return rr.Result().StatusCode
	}
	// first request passes the limiter and fails on the empty body
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestMetricsEndpoint(t *testing.T) {
	metrics.InitPrometheus()
	handler := api.New(&api.ServicesList{}, api.WithMetricsAuth("prom", "secret")).Handler()

	t.Run("no credentials", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("scraped", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		r.SetBasicAuth("prom", "secret")
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Body.String(), "http_requests_total")
	})
}

func TestSwaggerDoc(t *testing.T) {
	handler := api.New(&api.ServicesList{}).Handler()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), "/challenge/start")
}

func TestRunShutdown(t *testing.T) {
	t.Run("shutdown before run", func(t *testing.T) {
		serv := api.New(&api.ServicesList{})
		require.NoError(t, serv.Shutdown(context.Background()))
		assert.NoError(t, serv.Run("127.0.0.1:0"))
	})
	t.Run("shutdown while running", func(t *testing.T) {
		serv := api.New(&api.ServicesList{})
		done := make(chan error, 1)
		go func() { done <- serv.Run("127.0.0.1:0") }()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, serv.Shutdown(ctx))
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})
}
