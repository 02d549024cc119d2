package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// MealsDaySummary is the nutrition of one day, overall and per meal type.
type MealsDaySummary struct {
	Date       string                           `json:"date"`
	Totals     stats.NutritionTotals            `json:"totals"`
	ByMealType map[string]stats.NutritionTotals `json:"byMealType"`
}

type MealsService struct {
	repo  repository.MealsRepositoryI
	cache *cache.QueryCache
}

func NewMealsService(mealsRepo repository.MealsRepositoryI, qc *cache.QueryCache) *MealsService {
	if mealsRepo == nil {
		log.Fatal("provided nil mealsRepo")
	}
	return &MealsService{
		repo:  mealsRepo,
		cache: qc,
	}
}

func (ms *MealsService) Create(ctx context.Context, meal *entity.MealEntry) (*entity.MealEntry, error) {
	if err := validateStruct(meal); err != nil {
		return nil, err
	}
	meal.RecalculateTotals()
	if err := ms.repo.Create(ctx, meal); err != nil {
		return nil, repoError("meals", err)
	}
	invalidate(ms.cache, mealsKey)
	return meal, nil
}

func (ms *MealsService) Get(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error) {
	meal, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("meals", err)
	}
	return meal, nil
}

func (ms *MealsService) List(ctx context.Context, filter repository.DateFilter) ([]entity.MealEntry, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	meals, err := cache.Fetch(ctx, ms.cache, filterKey(mealsKey, filter), func(ctx context.Context) ([]entity.MealEntry, error) {
		return ms.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, repoError("meals", err)
	}
	return meals, nil
}

func (ms *MealsService) Update(ctx context.Context, meal *entity.MealEntry) (*entity.MealEntry, error) {
	if err := validateStruct(meal); err != nil {
		return nil, err
	}
	meal.RecalculateTotals()
	if err := ms.repo.Update(ctx, meal); err != nil {
		return nil, repoError("meals", err)
	}
	invalidate(ms.cache, mealsKey)
	return meal, nil
}

func (ms *MealsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ms.repo.Delete(ctx, id); err != nil {
		return repoError("meals", err)
	}
	invalidate(ms.cache, mealsKey)
	return nil
}

func (ms *MealsService) DaySummary(ctx context.Context, day time.Time) (*MealsDaySummary, error) {
	date := dateutil.FormatDate(day)
	meals, err := ms.List(ctx, repository.DateFilter{From: &date, To: &date})
	if err != nil {
		return nil, err
	}
	totals, err := stats.DailyNutrition(meals, day)
	if err != nil {
		return nil, errors.New("summing nutrition error: " + err.Error())
	}
	byType, err := stats.NutritionByMealType(meals, day)
	if err != nil {
		return nil, errors.New("summing nutrition error: " + err.Error())
	}
	return &MealsDaySummary{
		Date:       date,
		Totals:     totals,
		ByMealType: byType,
	}, nil
}
