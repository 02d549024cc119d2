package stats

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// Streak counts consecutive days with a completion, walking back from today.
//
// A day continues the streak when it lies exactly `streak` or `streak+1` days before
// today, so the run may start yesterday and one skipped day is tolerated at each step.
// Several completions on the same day count once; completions after today are ignored.
func Streak(dates []time.Time, today time.Time) int {
	cursor := dateutil.StartOfDay(today)
	days := make([]time.Time, 0, len(dates))
	seen := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		day := dateutil.StartOfDay(d.In(cursor.Location()))
		if day.After(cursor) {
			continue
		}
		key := dateutil.FormatDate(day)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	streak := 0
	for _, day := range days {
		diff := dateutil.DaysBetween(day, cursor)
		if diff != streak && diff != streak+1 {
			break
		}
		streak++
	}
	return streak
}

// HabitStreak is the streak over the days on which the habit met its target.
func HabitStreak(h entity.Habit, entries []entity.HabitEntry, today time.Time) (int, error) {
	progress, err := habitProgress(entries, today.Location())
	if err != nil {
		return 0, err
	}
	return habitStreak(h, progress, today)
}

func habitStreak(h entity.Habit, progress map[habitDay]float64, today time.Time) (int, error) {
	var dates []time.Time
	for key, value := range progress {
		if key.habitID != h.ID || !IsHabitCompleted(h, value) {
			continue
		}
		d, err := dateutil.ParseDate(key.date, today.Location())
		if err != nil {
			return 0, err
		}
		dates = append(dates, d)
	}
	return Streak(dates, today), nil
}

type HabitStreakInfo struct {
	HabitID uuid.UUID `json:"habitId"`
	Name    string    `json:"name"`
	Streak  int       `json:"streak"`
}

// HabitStreaks computes the streak of every active habit, longest first.
func HabitStreaks(habits []entity.Habit, entries []entity.HabitEntry, today time.Time) ([]HabitStreakInfo, error) {
	progress, err := habitProgress(entries, today.Location())
	if err != nil {
		return nil, err
	}
	out := make([]HabitStreakInfo, 0, len(habits))
	for _, h := range activeHabits(habits) {
		s, err := habitStreak(h, progress, today)
		if err != nil {
			return nil, err
		}
		out = append(out, HabitStreakInfo{HabitID: h.ID, Name: h.Name, Streak: s})
	}
	slices.SortStableFunc(out, func(a, b HabitStreakInfo) int { return b.Streak - a.Streak })
	return out, nil
}

// WatchlistStreak counts consecutive days on which something was finished.
func WatchlistStreak(items []entity.WatchlistItem, today time.Time) int {
	dates := make([]time.Time, 0, len(items))
	for _, it := range items {
		if it.Status == entity.WatchDone && it.FinishedAt != nil {
			dates = append(dates, *it.FinishedAt)
		}
	}
	return Streak(dates, today)
}
