// @title codestreak API
// @description 20-day coding challenge, practice progression and leaderboard
// @version 1.0
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/codestreak/internal/api"
	"github.com/limbo/codestreak/internal/challenge"
	"github.com/limbo/codestreak/internal/metrics"
	"github.com/limbo/codestreak/internal/repository"
	"github.com/limbo/codestreak/internal/service"
	"github.com/limbo/codestreak/pkg/cleanup"
	"github.com/limbo/codestreak/pkg/config"
	jwtservice "github.com/limbo/codestreak/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

// progressStore is postgres alone, or postgres mirrored into a local sqlite file when LOCAL_STORE_PATH is set.
func progressStore(cfg *config.Config, pool repository.PgConnection, logger *slog.Logger) repository.ChallengeProgressRepositoryI {
	primary := repository.NewChallengeProgressRepoWithConn(pool)
	path := cfg.GetString("LOCAL_STORE_PATH")
	if path == "" {
		return primary
	}
	local, err := repository.NewLocalProgressRepo(path)
	if err != nil {
		log.Fatal("opening local progress store error: " + err.Error())
	}
	return repository.NewFallbackProgressRepo(primary, local, logger)
}

func main() {
	cfg := config.New()
	logger := setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	clock, err := challenge.NewZoneClock(cfg.GetStringOr("CHALLENGE_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal(err)
	}
	rules := challenge.DefaultRules()
	rules.Exhaustion, err = challenge.ParseExhaustionPolicy(cfg.GetString("CHALLENGE_EXHAUSTION_POLICY"))
	if err != nil {
		log.Fatal(err)
	}
	problems := repository.NewProblemsRepoWithConn(pool)
	engine := challenge.NewEngine(rules, challenge.NewSelector(problems, rules))

	challengeService := service.NewChallengeService(engine, progressStore(cfg, pool, logger), clock, service.ChallengeServiceOpts{
		ResetSecretHash: cfg.GetString("RESET_SECRET_HASH"),
		KeepLogsOnReset: cfg.GetBool("CHALLENGE_RESET_KEEP_LOGS", false),
		Logger:          logger,
	})
	results := repository.NewChallengeResultsRepoWithConn(pool)
	submissionService := service.NewSubmissionService(
		repository.NewGameProgressRepoWithConn(pool),
		results,
		problems,
		challengeService,
		clock,
		logger,
	)

	metrics.InitPrometheus()
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		ChallengeService:   challengeService,
		SubmissionService:  submissionService,
		LeaderboardService: service.NewLeaderboardService(results),
		JwtService:         jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour)),
	},
		api.WithMetricsAuth(cfg.GetString("METRICS_USER"), cfg.GetString("METRICS_PASS")),
		api.WithRateLimit(cfg.GetFloat("RATE_LIMIT_RPS", 5), cfg.GetInt("RATE_LIMIT_BURST", 30)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}()

	addr := cfg.GetStringOr("API_ADDRESS", ":8080")
	logger.Info("starting server", slog.String("address", addr))
	if err := serv.Run(addr); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
