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

func daysAgo(offsets ...int) []time.Time {
	out := make([]time.Time, 0, len(offsets))
	for _, o := range offsets {
		// afternoon timestamps, the streak works on calendar days
		out = append(out, today.AddDate(0, 0, -o).Add(15*time.Hour))
	}
	return out
}

func TestStreak(t *testing.T) {
	testCases := []struct {
		Desc   string
		Dates  []time.Time
		Result int
	}{
		{Desc: "no completions", Dates: nil, Result: 0},
		{Desc: "today only", Dates: daysAgo(0), Result: 1},
		{Desc: "today and yesterday", Dates: daysAgo(0, 1), Result: 2},
		{Desc: "three days in a row", Dates: daysAgo(0, 1, 2), Result: 3},
		{Desc: "gap after today", Dates: daysAgo(0, 3), Result: 1},
		{Desc: "unsorted input", Dates: daysAgo(2, 0, 1), Result: 3},
		{Desc: "run starting yesterday", Dates: daysAgo(1, 2, 3), Result: 3},
		{Desc: "only two days ago", Dates: daysAgo(2), Result: 0},
		// one skipped day is tolerated at each step
		{Desc: "single skipped day", Dates: daysAgo(0, 2), Result: 2},
		{Desc: "skip then contiguous", Dates: daysAgo(0, 2, 3), Result: 3},
		{Desc: "two skipped days break", Dates: daysAgo(0, 2, 4), Result: 2},
		{Desc: "same day twice", Dates: daysAgo(0, 0, 1), Result: 2},
		{Desc: "future ignored", Dates: daysAgo(-1, 0, 1), Result: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, stats.Streak(tc.Dates, today))
		})
	}
}

func TestStreakUsesTodaysLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	localToday := time.Date(2026, 10, 14, 0, 0, 0, 0, tokyo)
	// 16:00 UTC on the 13th is already the 14th in Tokyo
	done := time.Date(2026, 10, 13, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, stats.Streak([]time.Time{done}, localToday))
}

func TestHabitStreak(t *testing.T) {
	h := entity.Habit{ID: uuid.New(), Name: "water", TargetValue: ptr(8.0)}
	entries := []entity.HabitEntry{
		{ID: uuid.New(), HabitID: h.ID, Date: day(0), Value: 8},
		{ID: uuid.New(), HabitID: h.ID, Date: day(-1), Value: 10},
		// below target, does not continue the streak
		{ID: uuid.New(), HabitID: h.ID, Date: day(-2), Value: 3},
		{ID: uuid.New(), HabitID: h.ID, Date: day(-5), Value: 8},
		{ID: uuid.New(), HabitID: uuid.New(), Date: day(-2), Value: 8},
	}
	s, err := stats.HabitStreak(h, entries, today)
	require.NoError(t, err)
	assert.Equal(t, 2, s)

	_, err = stats.HabitStreak(h, []entity.HabitEntry{{ID: uuid.New(), HabitID: h.ID, Date: "yesterday"}}, today)
	assert.Error(t, err)
}

func TestHabitStreaks(t *testing.T) {
	a := entity.Habit{ID: uuid.New(), Name: "a"}
	b := entity.Habit{ID: uuid.New(), Name: "b"}
	archived := entity.Habit{ID: uuid.New(), Name: "c", IsArchived: true}
	entries := []entity.HabitEntry{
		{ID: uuid.New(), HabitID: a.ID, Date: day(0), Value: 1},
		{ID: uuid.New(), HabitID: b.ID, Date: day(0), Value: 1},
		{ID: uuid.New(), HabitID: b.ID, Date: day(-1), Value: 1},
		{ID: uuid.New(), HabitID: archived.ID, Date: day(0), Value: 1},
	}
	res, err := stats.HabitStreaks([]entity.Habit{a, b, archived}, entries, today)
	require.NoError(t, err)
	assert.Equal(t, []stats.HabitStreakInfo{
		{HabitID: b.ID, Name: "b", Streak: 2},
		{HabitID: a.ID, Name: "a", Streak: 1},
	}, res)
}

func TestWatchlistStreak(t *testing.T) {
	finished := func(n int) *time.Time {
		ts := today.AddDate(0, 0, -n).Add(21 * time.Hour)
		return &ts
	}
	items := []entity.WatchlistItem{
		{ID: uuid.New(), Title: "a", Status: entity.WatchDone, FinishedAt: finished(0)},
		{ID: uuid.New(), Title: "b", Status: entity.WatchDone, FinishedAt: finished(1)},
		{ID: uuid.New(), Title: "c", Status: entity.WatchToWatch},
		{ID: uuid.New(), Title: "d", Status: entity.WatchDone, FinishedAt: finished(5)},
	}
	assert.Equal(t, 2, stats.WatchlistStreak(items, today))
	assert.Equal(t, 0, stats.WatchlistStreak(nil, today))

	// a finish time left on an item that is no longer Done does not count
	reopened := []entity.WatchlistItem{
		{ID: uuid.New(), Title: "e", Status: entity.WatchInProgress, FinishedAt: finished(0)},
		{ID: uuid.New(), Title: "f", Status: entity.WatchDone, FinishedAt: finished(1)},
	}
	assert.Equal(t, 0, stats.WatchlistStreak(reopened, today))
}
