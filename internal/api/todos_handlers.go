package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var todo entity.Todo
	if !decodeBody(w, r, logger, "create todo", &todo) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.todosService.Create(ctx, &todo)
	if err != nil {
		writeServiceError(w, logger, "create todo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("todo created", slog.String("id", created.ID.String()))
}

func (s *Server) ListTodos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	todos, err := s.todosService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list todos", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, todos)
	logger.Info("todos provided")
}

func (s *Server) GetTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get todo")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	todo, err := s.todosService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get todo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, todo)
	logger.Info("todo provided")
}

func (s *Server) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update todo")
	if !ok {
		return
	}
	var todo entity.Todo
	if !decodeBody(w, r, logger, "update todo", &todo) {
		return
	}
	todo.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.todosService.Update(ctx, &todo)
	if err != nil {
		writeServiceError(w, logger, "update todo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("todo updated")
}

func (s *Server) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete todo")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.todosService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete todo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("todo deleted")
}

func (s *Server) TodosMatrix(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	m, err := s.todosService.Matrix(ctx)
	if err != nil {
		writeServiceError(w, logger, "build eisenhower matrix", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, m)
	logger.Info("eisenhower matrix provided")
}

func (s *Server) EssentialTodos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	todos, err := s.todosService.Essential(ctx)
	if err != nil {
		writeServiceError(w, logger, "select essential todos", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, todos)
	logger.Info("essential todos provided")
}
