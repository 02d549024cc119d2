package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var meal entity.MealEntry
	if !decodeBody(w, r, logger, "create meal", &meal) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.mealsService.Create(ctx, &meal)
	if err != nil {
		writeServiceError(w, logger, "create meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("meal created")
}

func (s *Server) ListMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list meals", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	meals, err := s.mealsService.List(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meals)
	logger.Info("meals provided")
}

func (s *Server) GetMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	meal, err := s.mealsService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meal)
	logger.Info("meal provided")
}

func (s *Server) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update meal")
	if !ok {
		return
	}
	var meal entity.MealEntry
	if !decodeBody(w, r, logger, "update meal", &meal) {
		return
	}
	meal.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.mealsService.Update(ctx, &meal)
	if err != nil {
		writeServiceError(w, logger, "update meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("meal updated")
}

func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete meal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.mealsService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete meal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("meal deleted")
}

func (s *Server) MealsDaySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	day, err := s.queryDay(r)
	if err != nil {
		writeServiceError(w, logger, "summarize meals", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	summary, err := s.mealsService.DaySummary(ctx, day)
	if err != nil {
		writeServiceError(w, logger, "summarize meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("meals summary provided")
}
