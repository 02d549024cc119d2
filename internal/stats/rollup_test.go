package stats_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	for _, s := range []string{"last7days", "last30days", "last90days", "thisWeek", "thisMonth"} {
		r, err := stats.ParseRange(s)
		require.NoError(t, err)
		assert.Equal(t, stats.Range(s), r)
	}
	_, err := stats.ParseRange("lastYear")
	assert.ErrorIs(t, err, errorvalues.ErrUnknownRange)
	_, err = stats.Range("").Window(today)
	assert.ErrorIs(t, err, errorvalues.ErrUnknownRange)
}

func TestRangeWindow(t *testing.T) {
	wednesday := time.Date(2026, 10, 14, 13, 45, 0, 0, time.UTC)
	testCases := []struct {
		Desc  string
		Range stats.Range
		Start time.Time
		End   time.Time
		Days  int
	}{
		{
			Desc:  "this week from wednesday",
			Range: stats.ThisWeek,
			Start: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 10, 18, 23, 59, 59, 999999999, time.UTC),
			Days:  7,
		},
		{
			Desc:  "this month",
			Range: stats.ThisMonth,
			Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 10, 31, 23, 59, 59, 999999999, time.UTC),
			Days:  31,
		},
		{
			Desc:  "last 7 days",
			Range: stats.Last7Days,
			Start: time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 10, 14, 23, 59, 59, 999999999, time.UTC),
			Days:  8,
		},
		{
			Desc:  "last 30 days",
			Range: stats.Last30Days,
			Start: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 10, 14, 23, 59, 59, 999999999, time.UTC),
			Days:  31,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			w, err := tc.Range.Window(wednesday)
			require.NoError(t, err)
			assert.Equal(t, tc.Start, w.Start)
			assert.Equal(t, tc.End, w.End)
			assert.Equal(t, tc.Days, w.Days())
		})
	}

	t.Run("week boundaries are inclusive", func(t *testing.T) {
		w, err := stats.ThisWeek.Window(wednesday)
		require.NoError(t, err)
		monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
		sundayLate := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
		assert.True(t, w.Contains(monday))
		assert.True(t, w.Contains(sundayLate))
		assert.False(t, w.Contains(monday.Add(-time.Nanosecond)))
		assert.False(t, w.Contains(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 3, w.ElapsedDays(wednesday))
	})
}

func TestRollup(t *testing.T) {
	habit := entity.Habit{ID: uuid.New(), Name: "read", TargetValue: ptr(2.0)}
	created := today.AddDate(0, 0, -1)
	completedAt := today.Add(10 * time.Hour)
	oldTodo := todo("old", false, false, entity.TodoPending)
	oldTodo.CreatedAt = today.AddDate(0, -2, 0)
	doneTodo := todo("done", false, false, entity.TodoCompleted)
	doneTodo.CreatedAt = created
	doneTodo.CompletedAt = &completedAt
	openTodo := todo("open", false, false, entity.TodoPending)
	openTodo.CreatedAt = created
	app := entity.ScreenTimeApp{ID: uuid.New(), Name: "video"}

	s := stats.Snapshot{
		Habits: []entity.Habit{habit},
		HabitEntries: []entity.HabitEntry{
			{ID: uuid.New(), HabitID: habit.ID, Date: day(-2), Value: 2},
			{ID: uuid.New(), HabitID: habit.ID, Date: day(-1), Value: 1},
			{ID: uuid.New(), HabitID: habit.ID, Date: day(0), Value: 2},
			// outside the week
			{ID: uuid.New(), HabitID: habit.ID, Date: day(-3), Value: 2},
		},
		Goals: []entity.Goal{
			{ID: uuid.New(), Progress: 100, Deadline: ptr(day(2))},
			{ID: uuid.New(), Progress: 50, Deadline: ptr(day(30))},
		},
		HealthEntries: []entity.HealthEntry{
			{ID: uuid.New(), Date: day(-2), SleepHours: ptr(7.0), Mood: ptr(6), ExerciseMinutes: ptr(30), CaloriesBurned: ptr(250)},
			{ID: uuid.New(), Date: day(-1), SleepHours: ptr(8.0), ExerciseMinutes: ptr(0)},
			// missing values are not zeros
			{ID: uuid.New(), Date: day(0), SleepQuality: ptr(9)},
			{ID: uuid.New(), Date: day(-10), SleepHours: ptr(2.0)},
		},
		TimerSessions: []entity.TimerSession{
			{ID: uuid.New(), Date: day(0), Type: entity.SessionPomodoro, Duration: 25, Completed: true},
			{ID: uuid.New(), Date: day(-1), Type: entity.SessionPomodoro, Duration: 50, Completed: true},
			{ID: uuid.New(), Date: day(-1), Type: entity.SessionPomodoro, Duration: 25, Completed: false},
			{ID: uuid.New(), Date: day(-9), Type: entity.SessionPomodoro, Duration: 25, Completed: true},
		},
		Todos:          []entity.Todo{oldTodo, doneTodo, openTodo},
		ScreenTimeApps: []entity.ScreenTimeApp{app},
		ScreenTimeEntries: []entity.ScreenTimeEntry{
			{ID: uuid.New(), AppID: app.ID, Date: day(-1), Minutes: 60},
			{ID: uuid.New(), AppID: app.ID, Date: day(0), Minutes: 30},
		},
		Meals: []entity.MealEntry{
			{ID: uuid.New(), Date: day(0), MealType: "lunch", TotalCalories: 600, TotalProtein: 30},
			{ID: uuid.New(), Date: day(0), MealType: "dinner", TotalCalories: 800, TotalProtein: 40},
			{ID: uuid.New(), Date: day(-1), MealType: "lunch", TotalCalories: 700, TotalProtein: 20},
		},
	}

	a, err := stats.Rollup(s, stats.ThisWeek, today)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", a.From)
	assert.Equal(t, "2026-10-18", a.To)
	assert.Equal(t, 7, a.Days)

	// monday, tuesday, wednesday elapsed; done on monday and wednesday
	assert.Equal(t, 3, a.Habits.EntriesLogged)
	assert.Equal(t, 2, a.Habits.CompletedDays)
	assert.Equal(t, 3, a.Habits.PossibleDays)
	assert.Equal(t, 67, a.Habits.CompletionRate)
	assert.Equal(t, []stats.DayRate{{Date: day(-2), Rate: 100}, {Date: day(-1), Rate: 0}, {Date: day(0), Rate: 100}}, a.Habits.Daily)

	assert.Equal(t, 1, a.Goals.DueInRange)
	assert.Equal(t, 50, a.Goals.CompletionRate)

	assert.Equal(t, 3, a.Health.EntriesLogged)
	assert.InDelta(t, 7.5, a.Health.AverageSleepHours, 0.001)
	assert.InDelta(t, 9.0, a.Health.AverageSleepQuality, 0.001)
	assert.InDelta(t, 6.0, a.Health.AverageMood, 0.001)
	assert.Equal(t, 30, a.Health.TotalExerciseMinutes)
	assert.Equal(t, 250, a.Health.TotalCaloriesBurned)
	assert.Equal(t, 1, a.Health.ActiveDays)

	assert.Equal(t, 3, a.Timer.Sessions)
	assert.Equal(t, 75, a.Timer.FocusMinutes)
	assert.InDelta(t, 25.0, a.Timer.AverageDailyFocus, 0.001)

	assert.Equal(t, 2, a.Todos.Created)
	assert.Equal(t, 1, a.Todos.CompletedInRange)
	assert.Equal(t, 50, a.Todos.CompletionRate)

	assert.Equal(t, 2, a.Nutrition.DaysLogged)
	assert.InDelta(t, 2100.0, a.Nutrition.Totals.Calories, 0.001)
	assert.InDelta(t, 1050.0, a.Nutrition.DailyAverage.Calories, 0.001)

	assert.Equal(t, 90, a.ScreenTime.TotalMinutes)
	assert.InDelta(t, 30.0, a.ScreenTime.DailyAverage, 0.001)
	require.Len(t, a.ScreenTime.TopApps, 1)
	assert.Equal(t, "video", a.ScreenTime.TopApps[0].Name)
}

func TestRollupEmptySnapshot(t *testing.T) {
	a, err := stats.Rollup(stats.Snapshot{}, stats.Last30Days, today)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Habits.CompletionRate)
	assert.Equal(t, 0.0, a.Health.AverageSleepHours)
	assert.Equal(t, 0, a.Timer.CompletionRate)
	assert.Equal(t, 0, a.Todos.CompletionRate)
	assert.Equal(t, 0.0, a.Nutrition.DailyAverage.Calories)
	assert.Empty(t, a.ScreenTime.Warnings)
}

func TestRollupRejectsMalformedDates(t *testing.T) {
	s := stats.Snapshot{HealthEntries: []entity.HealthEntry{{ID: uuid.New(), Date: "2026/10/14"}}}
	_, err := stats.Rollup(s, stats.Last7Days, today)
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
}
