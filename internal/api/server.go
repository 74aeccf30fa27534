package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/limbo/codestreak/docs"
	"github.com/limbo/codestreak/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                 *chi.Mux
	srv                *http.Server
	userService        service.UserServiceI
	challengeService   service.ChallengeServiceI
	submissionService  service.SubmissionServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	limiter            *ipLimiter
	metricsUser        string
	metricsPass        string
	mountOnce          sync.Once
	srvMu              sync.Mutex
	closed             bool
}

type ServicesList struct {
	UserService        service.UserServiceI
	ChallengeService   service.ChallengeServiceI
	SubmissionService  service.SubmissionServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

type Option func(*Server)

// WithMetricsAuth sets basic auth credentials of /metrics. Without them the endpoint is not mounted.
func WithMetricsAuth(user, pass string) Option {
	return func(s *Server) {
		s.metricsUser = user
		s.metricsPass = pass
	}
}

// WithRateLimit limits submissions per client address.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = newIPLimiter(rps, burst)
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		challengeService:   servicesOptions.ChallengeService,
		submissionService:  servicesOptions.SubmissionService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		limiter:            newIPLimiter(5, 30),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.MetricsMiddleware)
	if s.metricsUser != "" {
		s.mx.With(s.BasicAuthMiddleware).Handle("/metrics", promhttp.Handler())
	}
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/challenge", s.GetChallenge)
			r.Post("/challenge/start", s.StartChallenge)
			r.Post("/challenge/reset", s.ResetChallenge)
			r.Post("/challenge/activity", s.LogActivity)
			r.Get("/challenge/stats", s.GetChallengeStats)
			r.Get("/challenge/suspicious/{problemID}", s.GetSuspiciousActivity)
			r.With(s.RateLimitMiddleware).Post("/submissions", s.Submit)
			r.Get("/progress", s.GetGameProgress)
			r.Get("/leaderboard", s.GetLeaderboard)
		})
	})
}

// Handler returns the router with every endpoint mounted.
func (s *Server) Handler() http.Handler {
	s.mountOnce.Do(s.mountEndpoints)
	return s.mx
}

// Run blocks until the server is shut down. It returns nil at once if Shutdown came first.
func (s *Server) Run(addr string) error {
	s.srvMu.Lock()
	if s.closed {
		s.srvMu.Unlock()
		return nil
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}
	srv := s.srv
	s.srvMu.Unlock()

	go s.limiter.cleanupVisitors(time.Minute, 3*time.Minute)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.srvMu.Lock()
	s.closed = true
	srv := s.srv
	s.srvMu.Unlock()

	s.limiter.stop()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
