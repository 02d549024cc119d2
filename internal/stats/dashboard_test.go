package stats_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyNutrition(t *testing.T) {
	meals := []entity.MealEntry{
		{ID: uuid.New(), Date: day(0), MealType: "breakfast", TotalCalories: 350.5, TotalProtein: 12, TotalFiber: 4},
		{ID: uuid.New(), Date: day(0), MealType: "snack", TotalCalories: 120.25, TotalCarbs: 20},
		{ID: uuid.New(), Date: day(0), MealType: "snack", TotalCalories: 80, TotalFat: 5},
		{ID: uuid.New(), Date: day(-1), MealType: "dinner", TotalCalories: 900},
	}
	res, err := stats.DailyNutrition(meals, today)
	require.NoError(t, err)
	assert.Equal(t, stats.NutritionTotals{Meals: 3, Calories: 550.75, Protein: 12, Carbs: 20, Fat: 5, Fiber: 4}, res)

	byType, err := stats.NutritionByMealType(meals, today)
	require.NoError(t, err)
	assert.Len(t, byType, 2)
	assert.Equal(t, 2, byType["snack"].Meals)
	assert.InDelta(t, 200.25, byType["snack"].Calories, 0.001)
}

func TestMealTotals(t *testing.T) {
	m := entity.MealEntry{Items: []entity.MealItem{
		{Name: "oats", Calories: 300, Protein: 10, Carbs: 50, Fat: 6, Fiber: 8},
		{Name: "milk", Calories: 120, Protein: 8, Carbs: 12, Fat: 5},
	}}
	m.RecalculateTotals()
	assert.Equal(t, 420.0, m.TotalCalories)
	assert.Equal(t, 18.0, m.TotalProtein)
	assert.Equal(t, 62.0, m.TotalCarbs)
	assert.Equal(t, 11.0, m.TotalFat)
	assert.Equal(t, 8.0, m.TotalFiber)
}

func TestUpcomingEvents(t *testing.T) {
	events := []entity.CalendarEvent{
		{ID: uuid.New(), Title: "dentist", StartDate: day(2), StartTime: ptr("09:30")},
		{ID: uuid.New(), Title: "standup", StartDate: day(0), StartTime: ptr("10:00")},
		{ID: uuid.New(), Title: "holiday", StartDate: day(0), IsAllDay: true},
		{ID: uuid.New(), Title: "conference", StartDate: day(-2), EndDate: ptr(day(1)), IsAllDay: true},
		{ID: uuid.New(), Title: "past", StartDate: day(-3)},
		{ID: uuid.New(), Title: "far", StartDate: day(8)},
		{ID: uuid.New(), Title: "early", StartDate: day(0), StartTime: ptr("07:15")},
	}
	res, err := stats.UpcomingEvents(events, today, stats.UpcomingEventsDays, 0)
	require.NoError(t, err)
	got := make([]string, 0, len(res))
	for _, e := range res {
		got = append(got, e.Title)
	}
	assert.Equal(t, []string{"conference", "holiday", "early", "standup", "dentist"}, got)

	limited, err := stats.UpcomingEvents(events, today, stats.UpcomingEventsDays, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	edges, err := stats.UpcomingEvents([]entity.CalendarEvent{
		{ID: uuid.New(), Title: "last day", StartDate: day(7)},
		{ID: uuid.New(), Title: "one past", StartDate: day(8)},
	}, today, 7, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "last day", edges[0].Title)

	_, err = stats.UpcomingEvents([]entity.CalendarEvent{{ID: uuid.New(), StartDate: "tomorrow"}}, today, 7, 0)
	assert.Error(t, err)
}

func TestSummarizeWatchlist(t *testing.T) {
	monday := today.AddDate(0, 0, -2).Add(20 * time.Hour)
	lastWeek := today.AddDate(0, 0, -4)
	items := []entity.WatchlistItem{
		{ID: uuid.New(), Title: "a", Status: entity.WatchDone, FinishedAt: &monday, Length: ptr(120)},
		{ID: uuid.New(), Title: "b", Status: entity.WatchDone, FinishedAt: &lastWeek, Length: ptr(90)},
		{ID: uuid.New(), Title: "c", Status: entity.WatchInProgress},
		{ID: uuid.New(), Title: "d", Status: entity.WatchToWatch},
	}
	assert.Equal(t, stats.WatchlistSummary{
		Total:                  4,
		ToWatch:                1,
		InProgress:             1,
		Done:                   2,
		FinishedThisWeek:       1,
		MinutesWatchedThisWeek: 120,
		Streak:                 0,
	}, stats.SummarizeWatchlist(items, today))
}

func TestBuildDashboard(t *testing.T) {
	habit := entity.Habit{ID: uuid.New(), Name: "stretch"}
	app := entity.ScreenTimeApp{ID: uuid.New(), Name: "games"}
	ui := todo("ship release", true, true, entity.TodoPending)
	s := stats.Snapshot{
		Habits:       []entity.Habit{habit},
		HabitEntries: []entity.HabitEntry{{ID: uuid.New(), HabitID: habit.ID, Date: day(0), Value: 1}},
		Todos:        []entity.Todo{ui, todo("done", false, false, entity.TodoCompleted)},
		Goals:        []entity.Goal{{ID: uuid.New(), Title: "save", Progress: 20}},
		HealthEntries: []entity.HealthEntry{
			{ID: uuid.New(), Date: day(-1), Mood: ptr(4)},
			{ID: uuid.New(), Date: day(0), Mood: ptr(8)},
		},
		TimerSessions: []entity.TimerSession{
			{ID: uuid.New(), Date: day(0), Type: entity.SessionPomodoro, Duration: 25, Completed: true},
			{ID: uuid.New(), Date: day(-1), Type: entity.SessionPomodoro, Duration: 25, Completed: true},
		},
		Meals:             []entity.MealEntry{{ID: uuid.New(), Date: day(0), MealType: "lunch", TotalCalories: 640}},
		CalendarEvents:    []entity.CalendarEvent{{ID: uuid.New(), Title: "call", StartDate: day(1)}},
		ScreenTimeApps:    []entity.ScreenTimeApp{app},
		ScreenTimeEntries: []entity.ScreenTimeEntry{{ID: uuid.New(), AppID: app.ID, Date: day(0), Minutes: 50}},
		ScreenTimeLimits:  []entity.ScreenTimeLimit{{ID: uuid.New(), AppID: app.ID, DailyLimitMinutes: 60, IsActive: true}},
	}
	d, err := stats.BuildDashboard(s, today)
	require.NoError(t, err)
	assert.Equal(t, day(0), d.Date)
	assert.Equal(t, 100, d.Habits.CompletionRate)
	require.Len(t, d.HabitStreaks, 1)
	assert.Equal(t, 1, d.HabitStreaks[0].Streak)
	assert.Equal(t, 50, d.Todos.CompletionRate)
	require.Len(t, d.EssentialTasks, 1)
	assert.Equal(t, "ship release", d.EssentialTasks[0].Title)
	assert.Equal(t, 0, d.Goals.Completed)
	assert.Equal(t, 25, d.Timer.FocusMinutes)
	require.NotNil(t, d.Health)
	assert.Equal(t, 8, *d.Health.Mood)
	assert.Equal(t, 640.0, d.Nutrition.Calories)
	assert.Len(t, d.UpcomingEvents, 1)
	assert.Equal(t, 50, d.ScreenTime.TotalMinutes)
	require.Len(t, d.ScreenTime.Warnings, 1)
	assert.Equal(t, 83, d.ScreenTime.Warnings[0].Percentage)
}
