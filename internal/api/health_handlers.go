package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

// SaveHealthEntry creates the entry of its date or replaces the stored one.
func (s *Server) SaveHealthEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var entry entity.HealthEntry
	if !decodeBody(w, r, logger, "save health entry", &entry) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	saved, err := s.healthService.Save(ctx, &entry)
	if err != nil {
		writeServiceError(w, logger, "save health entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, saved)
	logger.Info("health entry saved")
}

func (s *Server) ListHealthEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list health entries", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	entries, err := s.healthService.List(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list health entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("health entries provided")
}

func (s *Server) GetHealthEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	entry, err := s.healthService.GetByDate(ctx, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, logger, "get health entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("health entry provided")
}

func (s *Server) DeleteHealthEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete health entry")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.healthService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete health entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("health entry deleted")
}
