package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/codestreak/internal/error_values"
	"github.com/limbo/codestreak/internal/service"
	"github.com/limbo/codestreak/pkg/entity"
	"github.com/limbo/codestreak/pkg/httputil"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ResetChallengeRequest struct {
	Secret string `json:"secret"`
}

type ActivityRequest struct {
	ProblemID int64                   `json:"problemId"`
	Action    entity.ActivityAction   `json:"action"`
	Timestamp *time.Time              `json:"timestamp,omitempty"`
	Details   *entity.ActivityDetails `json:"details,omitempty"`
}

type SubmitRequest struct {
	ProblemID int64       `json:"problem_id"`
	Score     int         `json:"score"`
	Mode      entity.Mode `json:"mode"`
	Feedback  string      `json:"feedback"`
	Challenge bool        `json:"challenge"`
}

type ChallengeResponse struct {
	Progress *entity.ChallengeProgress `json:"challenge"`
	Today    *entity.DailyChallenge    `json:"today"`
}

type GetLeaderboardResponse struct {
	Page    int                       `json:"page"`
	Limit   int                       `json:"limit"`
	Entries []entity.LeaderboardEntry `json:"entries"`
}

func newChallengeResponse(p *entity.ChallengeProgress) ChallengeResponse {
	return ChallengeResponse{
		Progress: p,
		Today:    p.Today(),
	}
}

// writeChallengeError answers with the status matching a challenge service error.
func writeChallengeError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrCatalogExhausted):
		logger.Error(op+" error: catalog exhausted", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "not enough unused problems to build the day", nil)
	case errors.Is(err, errorvalues.ErrUnknownDifficulty):
		logger.Error(op + " error: unknown difficulty")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown difficulty", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

// @Summary Register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.RegisterRequest true "request body"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	err := httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:      req.Name,
		StudentID: req.StudentID,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name, student id or password", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// @Summary Log in and get token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.LoginRequest true "request body"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// @Summary Current challenge progress, advanced to today
// @Tags challenge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.ChallengeResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenge [get]
func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.challengeService.Load(ctx, uid)
	if err != nil {
		writeChallengeError(w, logger, "loading challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newChallengeResponse(progress))
	logger.Info("challenge provided")
}

// @Summary Start a new 20-day run
// @Tags challenge
// @Produce json
// @Security BearerAuth
// @Success 201 {object} api.ChallengeResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenge/start [post]
func (s *Server) StartChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.challengeService.Start(ctx, uid)
	if err != nil {
		writeChallengeError(w, logger, "starting challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newChallengeResponse(progress))
	logger.Info("challenge started")
}

// @Summary Reset progress with the shared secret
// @Tags challenge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.ResetChallengeRequest true "request body"
// @Success 200 {object} api.ChallengeResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Router /challenge/reset [post]
func (s *Server) ResetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ResetChallengeRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("reset challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.challengeService.Reset(ctx, uid, req.Secret)
	if err != nil {
		if errors.Is(err, errorvalues.ErrResetForbidden) {
			logger.Error("reset challenge error: wrong secret")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "reset is not allowed", nil)
			return
		}
		writeChallengeError(w, logger, "resetting challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newChallengeResponse(progress))
	logger.Info("challenge reset")
}

// @Summary Log editor activity
// @Tags challenge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.ActivityRequest true "request body"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Router /challenge/activity [post]
func (s *Server) LogActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ActivityRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("log activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	switch req.Action {
	case entity.ActionStart, entity.ActionTyping, entity.ActionPaste, entity.ActionSubmit:
	default:
		logger.Error("log activity error: unknown action", slog.String("action", string(req.Action)))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown activity action", nil)
		return
	}
	activity := entity.ActivityLog{
		ProblemID: req.ProblemID,
		Action:    req.Action,
		Details:   req.Details,
	}
	if req.Timestamp != nil {
		activity.Timestamp = *req.Timestamp
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.challengeService.LogActivity(ctx, uid, activity)
	if err != nil {
		writeChallengeError(w, logger, "logging activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"logged": len(progress.ActivityLogs),
	})
}

// @Summary Challenge statistics
// @Tags challenge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.ChallengeStats
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenge/stats [get]
func (s *Server) GetChallengeStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.challengeService.Stats(ctx, uid)
	if err != nil {
		writeChallengeError(w, logger, "getting challenge stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("challenge stats provided")
}

// @Summary Suspicious activity on a problem
// @Tags challenge
// @Produce json
// @Security BearerAuth
// @Param problemID path int true "problem id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Router /challenge/suspicious/{problemID} [get]
func (s *Server) GetSuspiciousActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get suspicious activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	problemID, err := strconv.ParseInt(chi.URLParam(r, "problemID"), 10, 64)
	if err != nil || problemID <= 0 {
		logger.Error("get suspicious activity error: invalid problem id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid problem id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	found, err := s.challengeService.Suspicious(ctx, uid, problemID)
	if err != nil {
		writeChallengeError(w, logger, "checking activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"problemId":  problemID,
		"suspicious": found,
	})
}

// @Summary Submit a graded solution
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.SubmitRequest true "request body"
// @Success 200 {object} service.SubmissionResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 429 {object} httputil.ErrorResponse
// @Router /submissions [post]
func (s *Server) Submit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("submission error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.submissionService.Submit(ctx, uid, &service.SubmitRequest{
		ProblemID: req.ProblemID,
		Score:     req.Score,
		Mode:      req.Mode,
		Feedback:  req.Feedback,
		Challenge: req.Challenge,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("submission error: invalid submission", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid submission", err)
		case errors.Is(err, errorvalues.ErrProblemNotFound):
			logger.Error("submission error: unknown problem")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "problem doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("submission error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			writeChallengeError(w, logger, "submission", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("submission accepted", slog.Int("xp_gained", result.XPGained), slog.Bool("counted", result.Counted))
}

// @Summary Level, xp, rank and badges
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.GameProgress
// @Failure 500 {object} httputil.ErrorResponse
// @Router /progress [get]
func (s *Server) GetGameProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	gp, err := s.submissionService.GameProgress(ctx, uid)
	if err != nil {
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, gp)
}

// @Summary Challenge leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "entries per page, 1..50"
// @Param page query int false "page number from 1"
// @Success 200 {object} api.GetLeaderboardResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /leaderboard [get]
func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.leaderboardService.Top(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting leaderboard error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLeaderboardResponse{
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
	logger.Info("leaderboard provided")
}
