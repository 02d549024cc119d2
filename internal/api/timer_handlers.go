package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateTimerSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var session entity.TimerSession
	if !decodeBody(w, r, logger, "create timer session", &session) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.timerService.Create(ctx, &session)
	if err != nil {
		writeServiceError(w, logger, "create timer session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("timer session created")
}

func (s *Server) ListTimerSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list timer sessions", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	sessions, err := s.timerService.List(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list timer sessions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
	logger.Info("timer sessions provided")
}

func (s *Server) DeleteTimerSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete timer session")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.timerService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete timer session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("timer session deleted")
}
