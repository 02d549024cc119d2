package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var goal entity.Goal
	if !decodeBody(w, r, logger, "create goal", &goal) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.goalsService.Create(ctx, &goal)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("goal created")
}

func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	goals, err := s.goalsService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
	logger.Info("goals provided")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	goal, err := s.goalsService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal provided")
}

func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update goal")
	if !ok {
		return
	}
	var goal entity.Goal
	if !decodeBody(w, r, logger, "update goal", &goal) {
		return
	}
	goal.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.goalsService.Update(ctx, &goal)
	if err != nil {
		writeServiceError(w, logger, "update goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("goal updated")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.goalsService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted")
}
