package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

type setLimitRequest struct {
	AppID             uuid.UUID `json:"appId"`
	DailyLimitMinutes int       `json:"dailyLimitMinutes"`
	// active unless stated otherwise
	IsActive *bool `json:"isActive"`
}

func (s *Server) CreateScreenTimeApp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var app entity.ScreenTimeApp
	if !decodeBody(w, r, logger, "create screen-time app", &app) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.screenTimeService.CreateApp(ctx, &app)
	if err != nil {
		writeServiceError(w, logger, "create screen-time app", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("screen-time app created")
}

func (s *Server) ListScreenTimeApps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	apps, err := s.screenTimeService.ListApps(ctx)
	if err != nil {
		writeServiceError(w, logger, "list screen-time apps", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, apps)
	logger.Info("screen-time apps provided")
}

func (s *Server) UpdateScreenTimeApp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update screen-time app")
	if !ok {
		return
	}
	var app entity.ScreenTimeApp
	if !decodeBody(w, r, logger, "update screen-time app", &app) {
		return
	}
	app.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.screenTimeService.UpdateApp(ctx, &app)
	if err != nil {
		writeServiceError(w, logger, "update screen-time app", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("screen-time app updated")
}

func (s *Server) DeleteScreenTimeApp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete screen-time app")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.screenTimeService.DeleteApp(ctx, id); err != nil {
		writeServiceError(w, logger, "delete screen-time app", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("screen-time app deleted")
}

func (s *Server) LogScreenTimeUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var entry entity.ScreenTimeEntry
	if !decodeBody(w, r, logger, "log screen-time usage", &entry) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	saved, err := s.screenTimeService.LogUsage(ctx, &entry)
	if err != nil {
		writeServiceError(w, logger, "log screen-time usage", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, saved)
	logger.Info("screen-time usage logged", slog.String("app_id", saved.AppID.String()))
}

func (s *Server) ListScreenTimeUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list screen-time usage", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	entries, err := s.screenTimeService.ListUsage(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list screen-time usage", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("screen-time usage provided")
}

func (s *Server) DeleteScreenTimeUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete screen-time usage")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.screenTimeService.DeleteUsage(ctx, id); err != nil {
		writeServiceError(w, logger, "delete screen-time usage", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("screen-time usage deleted")
}

func (s *Server) SetScreenTimeLimit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req setLimitRequest
	if !decodeBody(w, r, logger, "set screen-time limit", &req) {
		return
	}
	limit := entity.ScreenTimeLimit{
		AppID:             req.AppID,
		DailyLimitMinutes: req.DailyLimitMinutes,
		IsActive:          req.IsActive == nil || *req.IsActive,
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	saved, err := s.screenTimeService.SetLimit(ctx, &limit)
	if err != nil {
		writeServiceError(w, logger, "set screen-time limit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, saved)
	logger.Info("screen-time limit set", slog.String("app_id", saved.AppID.String()))
}

func (s *Server) ListScreenTimeLimits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	limits, err := s.screenTimeService.ListLimits(ctx)
	if err != nil {
		writeServiceError(w, logger, "list screen-time limits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, limits)
	logger.Info("screen-time limits provided")
}

func (s *Server) DeleteScreenTimeLimit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete screen-time limit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.screenTimeService.DeleteLimit(ctx, id); err != nil {
		writeServiceError(w, logger, "delete screen-time limit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("screen-time limit deleted")
}

// ScreenTimeWarnings accepts ?date= and ?period=day|week.
func (s *Server) ScreenTimeWarnings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.queryDay(r)
	if err != nil {
		writeServiceError(w, logger, "get screen-time warnings", err)
		return
	}
	period, err := service.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeServiceError(w, logger, "get screen-time warnings", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	warnings, err := s.screenTimeService.Warnings(ctx, day, period)
	if err != nil {
		writeServiceError(w, logger, "get screen-time warnings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, warnings)
	logger.Info("screen-time warnings provided", slog.Int("count", len(warnings)))
}

func (s *Server) TopScreenTimeApps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.queryDay(r)
	if err != nil {
		writeServiceError(w, logger, "get top apps", err)
		return
	}
	period, err := service.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeServiceError(w, logger, "get top apps", err)
		return
	}
	n := service.DefaultTopApps
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n <= 0 {
			logger.Error("get top apps error: invalid limit")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid limit", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	top, err := s.screenTimeService.TopApps(ctx, day, period, n)
	if err != nil {
		writeServiceError(w, logger, "get top apps", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, top)
	logger.Info("top apps provided")
}
