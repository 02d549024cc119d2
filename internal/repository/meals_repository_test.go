package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealItemsStoredAsJSON(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	meal := entity.MealEntry{
		Date:     "2026-10-14",
		MealType: "breakfast",
		Items: []entity.MealItem{
			{Name: "oats", Quantity: 80, Unit: "g", Calories: 300, Protein: 10, Carbs: 54, Fat: 6, Fiber: 8},
		},
	}
	meal.RecalculateTotals()
	items, err := sonic.Marshal(meal.Items)
	require.NoError(t, err)
	id := uuid.New()
	created := time.Now()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO meals`)).
		WithArgs(meal.Date, meal.MealType, items, meal.Notes,
			meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.TotalFiber).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
	require.NoError(t, repo.Create(ctx, &meal))
	assert.Equal(t, id, meal.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM meals WHERE id = $1;`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "date", "meal_type", "items", "notes", "total_calories",
			"total_protein", "total_carbs", "total_fat", "total_fiber", "created_at"}).
			AddRow(id, meal.Date, meal.MealType, items, meal.Notes, meal.TotalCalories, meal.TotalProtein,
				meal.TotalCarbs, meal.TotalFat, meal.TotalFiber, created))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, meal, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealWithoutItemsStoresEmptyArray(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMealsRepo(mock)
	meal := entity.MealEntry{ID: uuid.New(), Date: "2026-10-14", MealType: "snack"}
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE meals SET date = $1`)).
		WithArgs(meal.Date, meal.MealType, []byte("[]"), meal.Notes, 0.0, 0.0, 0.0, 0.0, 0.0, meal.ID).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	assert.NoError(t, repo.Update(context.Background(), &meal))
}
