package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/limbo/momentum/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CompleteOccurrenceRequest struct {
	TimeSpentSeconds int    `json:"time_spent_seconds"`
	Status           string `json:"status"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
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
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
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

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("delete account error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("delete account error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		default:
			logger.Error("delete account error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("account deleted")
}

func (s *Server) ListOccurrences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list occurrences error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	occurrences, err := s.queueService.ListEligible(ctx, uid)
	if err != nil {
		logger.Error("list occurrences error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing occurrences", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"occurrences": occurrences,
	})
}

func (s *Server) GetNextOccurrence(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("next occurrence error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	next, err := s.queueService.Next(ctx, uid)
	if err != nil {
		logger.Error("next occurrence error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting occurrence", nil)
		return
	}
	if next == nil {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
			"occurrence": nil,
		})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, next)
}

func (s *Server) PostponeOccurrence(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("postpone error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	occurrenceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("postpone error: invalid occurrence id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid occurrence id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	occ, err := s.queueService.Postpone(ctx, occurrenceID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOccurrenceNotFound):
			logger.Error("postpone error: occurrence not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "occurrence not found", nil)
		case errors.Is(err, errorvalues.ErrTerminalOccurrence):
			logger.Error("postpone error: terminal occurrence")
			httputil.WriteErrorResponse(w, http.StatusConflict, "occurrence is already completed or cancelled", nil)
		default:
			logger.Error("postpone error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while postponing", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, occ)
	logger.Info("occurrence postponed")
}

func (s *Server) CancelOccurrence(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("cancel error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	occurrenceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("cancel error: invalid occurrence id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid occurrence id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.queueService.Cancel(ctx, occurrenceID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOccurrenceNotFound):
			logger.Error("cancel error: occurrence not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "occurrence not found", nil)
		case errors.Is(err, errorvalues.ErrTerminalOccurrence):
			logger.Error("cancel error: terminal occurrence")
			httputil.WriteErrorResponse(w, http.StatusConflict, "occurrence is already completed or cancelled", nil)
		default:
			logger.Error("cancel error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while cancelling", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"cancelled": true,
	})
	logger.Info("occurrence cancelled")
}

func (s *Server) CompleteOccurrence(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	occurrenceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete error: invalid occurrence id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid occurrence id", nil)
		return
	}
	var req CompleteOccurrenceRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("complete error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.completionService.CompleteOccurrence(ctx, occurrenceID, uid, req.TimeSpentSeconds, entity.Resolution(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOccurrenceNotFound), errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("complete error: not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "occurrence or challenge not found", nil)
		case errors.Is(err, errorvalues.ErrInvalidTimeSpent), errors.Is(err, errorvalues.ErrInvalidResolution):
			logger.Error("complete error: invalid argument")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrTerminalOccurrence):
			logger.Error("complete error: terminal occurrence")
			httputil.WriteErrorResponse(w, http.StatusConflict, "occurrence is already completed or cancelled", nil)
		default:
			logger.Error("complete error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing occurrence", nil)
		}
		return
	}
	completionsTotal.WithLabelValues(string(result.Entry.Status)).Inc()
	achievementUnlocksTotal.Add(float64(len(result.NewlyUnlocked)))
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("occurrence completed", slog.Int("points_earned", result.PointsEarned))
}

func (s *Server) GetUserAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	achievements, err := s.achievementService.Evaluate(ctx, uid)
	if err != nil {
		logger.Error("achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while evaluating achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"achievements": achievements,
	})
}

func (s *Server) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.progressService.GetProgress(ctx, uid)
	if err != nil {
		logger.Error("progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}
