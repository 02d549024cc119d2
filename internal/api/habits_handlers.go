package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var habit entity.Habit
	if !decodeBody(w, r, logger, "create habit", &habit) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.habitsService.CreateHabit(ctx, &habit)
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("habit created", slog.String("id", created.ID.String()))
}

func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	habits, err := s.habitsService.ListHabits(ctx)
	if err != nil {
		writeServiceError(w, logger, "list habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit provided")
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update habit")
	if !ok {
		return
	}
	var habit entity.Habit
	if !decodeBody(w, r, logger, "update habit", &habit) {
		return
	}
	habit.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.habitsService.UpdateHabit(ctx, &habit)
	if err != nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.habitsService.DeleteHabit(ctx, id); err != nil {
		writeServiceError(w, logger, "delete habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) HabitDayStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.queryDay(r)
	if err != nil {
		writeServiceError(w, logger, "get habit stats", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	st, err := s.habitsService.DayStats(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "get habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, st)
	logger.Info("habit stats provided")
}

func (s *Server) HabitStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	streaks, err := s.habitsService.Streaks(ctx)
	if err != nil {
		writeServiceError(w, logger, "get habit streaks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streaks)
	logger.Info("habit streaks provided")
}

func (s *Server) LogHabitEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var entry entity.HabitEntry
	if !decodeBody(w, r, logger, "log habit entry", &entry) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	saved, err := s.habitsService.LogEntry(ctx, &entry)
	if err != nil {
		writeServiceError(w, logger, "log habit entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, saved)
	logger.Info("habit entry logged")
}

func (s *Server) ListHabitEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list habit entries", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	entries, err := s.habitsService.ListEntries(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list habit entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("habit entries provided")
}

func (s *Server) DeleteHabitEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete habit entry")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.habitsService.DeleteEntry(ctx, id); err != nil {
		writeServiceError(w, logger, "delete habit entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit entry deleted")
}
