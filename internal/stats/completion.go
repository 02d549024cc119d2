package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type HabitDayStats struct {
	Date            string `json:"date"`
	ActiveHabits    int    `json:"activeHabits"`
	CompletedHabits int    `json:"completedHabits"`
	CompletionRate  int    `json:"completionRate"`
}

type habitDay struct {
	habitID uuid.UUID
	date    string
}

// habitProgress sums entry values per habit and date.
func habitProgress(entries []entity.HabitEntry, loc *time.Location) (map[habitDay]float64, error) {
	progress := make(map[habitDay]float64, len(entries))
	for _, e := range entries {
		d, err := parseRecordDate("habit entry", e.ID, e.Date, loc)
		if err != nil {
			return nil, err
		}
		progress[habitDay{habitID: e.HabitID, date: dateutil.FormatDate(d)}] += e.Value
	}
	return progress, nil
}

// IsHabitCompleted reports whether value reaches the habit's target.
func IsHabitCompleted(h entity.Habit, value float64) bool {
	return value >= TargetValue(h)
}

func activeHabits(habits []entity.Habit) []entity.Habit {
	active := make([]entity.Habit, 0, len(habits))
	for _, h := range habits {
		if !h.IsArchived {
			active = append(active, h)
		}
	}
	return active
}

// HabitCompletion counts the active habits completed on day.
func HabitCompletion(habits []entity.Habit, entries []entity.HabitEntry, day time.Time) (HabitDayStats, error) {
	progress, err := habitProgress(entries, day.Location())
	if err != nil {
		return HabitDayStats{}, err
	}
	date := dateutil.FormatDate(day)
	active := activeHabits(habits)
	completed := 0
	for _, h := range active {
		if IsHabitCompleted(h, progress[habitDay{habitID: h.ID, date: date}]) {
			completed++
		}
	}
	return HabitDayStats{
		Date:            date,
		ActiveHabits:    len(active),
		CompletedHabits: completed,
		CompletionRate:  Rate(completed, len(active)),
	}, nil
}

type TodoStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	Cancelled      int `json:"cancelled"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

func isOverdue(t entity.Todo, today string) bool {
	return t.DueDate != nil && *t.DueDate < today && t.Status != entity.TodoCompleted
}

// checkDueDates rejects todos whose due date is not a valid yyyy-MM-dd value.
// Once checked, due dates compare correctly as strings.
func checkDueDates(todos []entity.Todo) error {
	for _, t := range todos {
		if t.DueDate == nil {
			continue
		}
		if _, err := parseRecordDate("todo", t.ID, *t.DueDate, time.UTC); err != nil {
			return err
		}
	}
	return nil
}

func TodoCompletion(todos []entity.Todo, today time.Time) (TodoStats, error) {
	if err := checkDueDates(todos); err != nil {
		return TodoStats{}, err
	}
	todayStr := dateutil.FormatDate(today)
	var st TodoStats
	for _, t := range todos {
		st.Total++
		switch t.Status {
		case entity.TodoPending:
			st.Pending++
		case entity.TodoInProgress:
			st.InProgress++
		case entity.TodoCompleted:
			st.Completed++
		case entity.TodoCancelled:
			st.Cancelled++
		}
		if isOverdue(t, todayStr) {
			st.Overdue++
		}
	}
	st.CompletionRate = Rate(st.Completed, st.Total)
	return st, nil
}

type GoalStats struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	Overdue         int     `json:"overdue"`
	AverageProgress float64 `json:"averageProgress"`
	CompletionRate  int     `json:"completionRate"`
}

// GoalCompletion treats progress >= 100 as completed. Unfinished goals past their deadline are overdue.
func GoalCompletion(goals []entity.Goal, today time.Time) (GoalStats, error) {
	todayStr := dateutil.FormatDate(today)
	var st GoalStats
	sum := 0.0
	for _, g := range goals {
		if g.Deadline != nil {
			if _, err := parseRecordDate("goal", g.ID, *g.Deadline, today.Location()); err != nil {
				return GoalStats{}, err
			}
		}
		st.Total++
		sum += float64(g.Progress)
		if g.Progress >= 100 {
			st.Completed++
		} else if g.Deadline != nil && *g.Deadline < todayStr {
			st.Overdue++
		}
	}
	st.AverageProgress = average(sum, st.Total)
	st.CompletionRate = Rate(st.Completed, st.Total)
	return st, nil
}

type TimerStats struct {
	Sessions          int `json:"sessions"`
	CompletedSessions int `json:"completedSessions"`
	FocusMinutes      int `json:"focusMinutes"`
	BreakMinutes      int `json:"breakMinutes"`
	CompletionRate    int `json:"completionRate"`
}

// TimerCompletion sums the durations of completed sessions, split into focus and break time.
func TimerCompletion(sessions []entity.TimerSession) TimerStats {
	var st TimerStats
	for _, s := range sessions {
		st.Sessions++
		if !s.Completed {
			continue
		}
		st.CompletedSessions++
		if s.Type == entity.SessionPomodoro {
			st.FocusMinutes += s.Duration
		} else {
			st.BreakMinutes += s.Duration
		}
	}
	st.CompletionRate = Rate(st.CompletedSessions, st.Sessions)
	return st
}
