package stats_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	testCases := []struct {
		Desc      string
		Completed int
		Total     int
		Result    int
	}{
		{Desc: "empty total", Completed: 0, Total: 0, Result: 0},
		{Desc: "negative total", Completed: 3, Total: -1, Result: 0},
		{Desc: "all done", Completed: 4, Total: 4, Result: 100},
		{Desc: "rounds half up", Completed: 1, Total: 8, Result: 13},
		{Desc: "two thirds", Completed: 2, Total: 3, Result: 67},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, stats.Rate(tc.Completed, tc.Total))
		})
	}
}

func TestHabitCompletion(t *testing.T) {
	a := entity.Habit{ID: uuid.New(), Name: "a", TargetValue: ptr(3.0)}
	b := entity.Habit{ID: uuid.New(), Name: "b"}
	archived := entity.Habit{ID: uuid.New(), Name: "old", IsArchived: true}

	testCases := []struct {
		Desc      string
		Habits    []entity.Habit
		Entries   []entity.HabitEntry
		Completed int
		Active    int
		Rate      int
		Error     error
	}{
		{
			Desc:      "target reached",
			Habits:    []entity.Habit{a},
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 3}},
			Completed: 1, Active: 1, Rate: 100,
		},
		{
			Desc:      "below target",
			Habits:    []entity.Habit{a},
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 2}},
			Completed: 0, Active: 1, Rate: 0,
		},
		{
			Desc:   "partial entries of one day add up",
			Habits: []entity.Habit{a},
			Entries: []entity.HabitEntry{
				{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 1},
				{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 2},
			},
			Completed: 1, Active: 1, Rate: 100,
		},
		{
			Desc:      "missing target defaults to one",
			Habits:    []entity.Habit{a, b},
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: b.ID, Date: day(0), Value: 1}},
			Completed: 1, Active: 2, Rate: 50,
		},
		{
			Desc:      "other days ignored",
			Habits:    []entity.Habit{b},
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: b.ID, Date: day(-1), Value: 5}},
			Completed: 0, Active: 1, Rate: 0,
		},
		{
			Desc:      "archived habits do not count",
			Habits:    []entity.Habit{b, archived},
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: archived.ID, Date: day(0), Value: 1}},
			Completed: 0, Active: 1, Rate: 0,
		},
		{
			Desc:      "no habits",
			Habits:    nil,
			Entries:   []entity.HabitEntry{{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 1}},
			Completed: 0, Active: 0, Rate: 0,
		},
		{
			Desc:    "malformed entry date",
			Habits:  []entity.Habit{a},
			Entries: []entity.HabitEntry{{ID: uuid.New(), HabitID: a.ID, Date: "14/10/2026", Value: 3}},
			Error:   dateutil.ErrInvalidDate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res, err := stats.HabitCompletion(tc.Habits, tc.Entries, today)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, day(0), res.Date)
			assert.Equal(t, tc.Completed, res.CompletedHabits)
			assert.Equal(t, tc.Active, res.ActiveHabits)
			assert.Equal(t, tc.Rate, res.CompletionRate)
			assert.GreaterOrEqual(t, res.CompletionRate, 0)
			assert.LessOrEqual(t, res.CompletionRate, 100)
		})
	}
}

func TestTodoCompletion(t *testing.T) {
	overdue := todo("overdue", false, false, entity.TodoPending)
	overdue.DueDate = ptr(day(-2))
	doneLate := todo("done late", false, false, entity.TodoCompleted)
	doneLate.DueDate = ptr(day(-2))
	dueToday := todo("due today", false, false, entity.TodoInProgress)
	dueToday.DueDate = ptr(day(0))
	todos := []entity.Todo{overdue, doneLate, dueToday, todo("cancelled", false, false, entity.TodoCancelled)}

	res, err := stats.TodoCompletion(todos, today)
	require.NoError(t, err)
	assert.Equal(t, stats.TodoStats{
		Total:          4,
		Pending:        1,
		InProgress:     1,
		Completed:      1,
		Cancelled:      1,
		Overdue:        1,
		CompletionRate: 25,
	}, res)

	empty, err := stats.TodoCompletion(nil, today)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.CompletionRate)
}

func TestGoalCompletion(t *testing.T) {
	goals := []entity.Goal{
		{ID: uuid.New(), Title: "run a marathon", Progress: 100},
		{ID: uuid.New(), Title: "read 20 books", Progress: 40, Deadline: ptr(day(-1))},
		{ID: uuid.New(), Title: "learn go", Progress: 70, Deadline: ptr(day(30))},
	}
	res, err := stats.GoalCompletion(goals, today)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 1, res.Overdue)
	assert.Equal(t, 33, res.CompletionRate)
	assert.InDelta(t, 70.0, res.AverageProgress, 0.001)

	_, err = stats.GoalCompletion([]entity.Goal{{ID: uuid.New(), Deadline: ptr("soon")}}, today)
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
}

func TestTimerCompletion(t *testing.T) {
	sessions := []entity.TimerSession{
		{ID: uuid.New(), Date: day(0), Type: entity.SessionPomodoro, Duration: 25, Completed: true},
		{ID: uuid.New(), Date: day(0), Type: entity.SessionPomodoro, Duration: 25, Completed: false},
		{ID: uuid.New(), Date: day(0), Type: entity.SessionBreak, Duration: 5, Completed: true},
		{ID: uuid.New(), Date: day(0), Type: entity.SessionLongBreak, Duration: 15, Completed: true},
	}
	assert.Equal(t, stats.TimerStats{
		Sessions:          4,
		CompletedSessions: 3,
		FocusMinutes:      25,
		BreakMinutes:      20,
		CompletionRate:    75,
	}, stats.TimerCompletion(sessions))
	assert.Equal(t, stats.TimerStats{}, stats.TimerCompletion(nil))
}
