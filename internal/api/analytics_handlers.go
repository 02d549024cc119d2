package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	dashboard, err := s.analyticsService.Dashboard(ctx)
	if err != nil {
		writeServiceError(w, logger, "build dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("dashboard provided")
}

// Analytics reads ?range=, last7days when it is absent.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	rng := stats.Last7Days
	if v := r.URL.Query().Get("range"); v != "" {
		parsed, err := stats.ParseRange(v)
		if err != nil {
			writeServiceError(w, logger, "build analytics", err)
			return
		}
		rng = parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	analytics, err := s.analyticsService.Analytics(ctx, rng)
	if err != nil {
		writeServiceError(w, logger, "build analytics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analytics)
	logger.Info("analytics provided", slog.String("range", string(rng)))
}

func (s *Server) ExportBundle(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	bundle, err := s.exportService.Bundle(ctx)
	if err != nil {
		writeServiceError(w, logger, "export data", err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="lifedash-export.json"`)
	httputil.WriteJSONResponse(w, http.StatusOK, bundle)
	logger.Info("export provided")
}

func (s *Server) ExportWatchlistCSV(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	records, err := s.exportService.WatchlistCSV(ctx)
	if err != nil {
		writeServiceError(w, logger, "export watchlist", err)
		return
	}
	if err = httputil.WriteCSVResponse(w, "watchlist.csv", records); err != nil {
		logger.Error("export watchlist error: writing csv", slog.String("error", err.Error()))
		return
	}
	logger.Info("watchlist export provided", slog.Int("rows", len(records)-1))
}

func (s *Server) ExportScreenTimeCSV(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "export screen time", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	records, err := s.exportService.ScreenTimeCSV(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "export screen time", err)
		return
	}
	if err = httputil.WriteCSVResponse(w, "screen-time.csv", records); err != nil {
		logger.Error("export screen time error: writing csv", slog.String("error", err.Error()))
		return
	}
	logger.Info("screen-time export provided", slog.Int("rows", len(records)-1))
}
