package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("lifedash"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		t.Fatal(err)
	}
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestRepositoriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	repos := repository.NewRepositories(pool)

	t.Run("todo dates round trip", func(t *testing.T) {
		todo := entity.Todo{Title: "renew passport", Status: entity.TodoPending, Priority: "high",
			IsUrgent: true, DueDate: ptr("2026-11-02"), PriorityScore: ptr(4)}
		require.NoError(t, repos.Todos.Create(ctx, &todo))
		got, err := repos.Todos.GetByID(ctx, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-11-02", *got.DueDate)
		assert.Equal(t, 4, *got.PriorityScore)
		assert.Nil(t, got.CompletedAt)

		require.NoError(t, repos.Todos.Delete(ctx, todo.ID))
		_, err = repos.Todos.GetByID(ctx, todo.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})

	t.Run("habit entry upsert keeps one row per day", func(t *testing.T) {
		habit := entity.Habit{Name: "read", Frequency: "daily", TargetValue: ptr(20.0), Unit: "pages"}
		require.NoError(t, repos.Habits.Create(ctx, &habit))
		first := entity.HabitEntry{HabitID: habit.ID, Date: "2026-10-14", Value: 5}
		require.NoError(t, repos.HabitEntries.Upsert(ctx, &first))
		second := entity.HabitEntry{HabitID: habit.ID, Date: "2026-10-14", Value: 25, Notes: "finished chapter"}
		require.NoError(t, repos.HabitEntries.Upsert(ctx, &second))
		assert.Equal(t, first.ID, second.ID)

		entries, err := repos.HabitEntries.ListByHabit(ctx, habit.ID, repository.DateFilter{From: ptr("2026-10-01")})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 25.0, entries[0].Value)

		require.NoError(t, repos.Habits.SetStreak(ctx, habit.ID, 3))
		got, err := repos.Habits.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.StreakDays)

		orphan := entity.HabitEntry{HabitID: uuid.New(), Date: "2026-10-14", Value: 1}
		assert.ErrorIs(t, repos.HabitEntries.Upsert(ctx, &orphan), errorvalues.ErrHabitNotFound)
	})

	t.Run("screen time", func(t *testing.T) {
		app := entity.ScreenTimeApp{Name: "video", Category: "fun"}
		require.NoError(t, repos.ScreenTime.CreateApp(ctx, &app))
		dup := entity.ScreenTimeApp{Name: "video"}
		assert.ErrorIs(t, repos.ScreenTime.CreateApp(ctx, &dup), errorvalues.ErrAppExists)

		limit := entity.ScreenTimeLimit{AppID: app.ID, DailyLimitMinutes: 60, IsActive: true}
		require.NoError(t, repos.ScreenTime.UpsertLimit(ctx, &limit))
		limit.DailyLimitMinutes = 45
		require.NoError(t, repos.ScreenTime.UpsertLimit(ctx, &limit))
		limits, err := repos.ScreenTime.ListLimits(ctx)
		require.NoError(t, err)
		require.Len(t, limits, 1)
		assert.Equal(t, 45, limits[0].DailyLimitMinutes)
	})

	t.Run("meal items", func(t *testing.T) {
		meal := entity.MealEntry{Date: "2026-10-14", MealType: "lunch", Items: []entity.MealItem{
			{Name: "rice", Quantity: 150, Unit: "g", Calories: 195, Carbs: 42},
			{Name: "chicken", Quantity: 120, Unit: "g", Calories: 198, Protein: 37, Fat: 4},
		}}
		meal.RecalculateTotals()
		require.NoError(t, repos.Meals.Create(ctx, &meal))
		meals, err := repos.Meals.List(ctx, repository.DateFilter{From: ptr("2026-10-14"), To: ptr("2026-10-14")})
		require.NoError(t, err)
		require.Len(t, meals, 1)
		assert.Equal(t, meal.Items, meals[0].Items)
		assert.Equal(t, 393.0, meals[0].TotalCalories)
	})
}
