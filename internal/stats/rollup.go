package stats

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type Range string

const (
	Last7Days  Range = "last7days"
	Last30Days Range = "last30days"
	Last90Days Range = "last90days"
	ThisWeek   Range = "thisWeek"
	ThisMonth  Range = "thisMonth"
)

func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case Last7Days, Last30Days, Last90Days, ThisWeek, ThisMonth:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", errorvalues.ErrUnknownRange, s)
}

// Window is a closed interval of whole days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Window resolves r against today. The N-day ranges run from N days before today
// through the end of today; thisWeek is Monday..Sunday and thisMonth the calendar month.
func (r Range) Window(today time.Time) (Window, error) {
	day := dateutil.StartOfDay(today)
	switch r {
	case Last7Days:
		return Window{Start: day.AddDate(0, 0, -7), End: dateutil.EndOfDay(day)}, nil
	case Last30Days:
		return Window{Start: day.AddDate(0, 0, -30), End: dateutil.EndOfDay(day)}, nil
	case Last90Days:
		return Window{Start: day.AddDate(0, 0, -90), End: dateutil.EndOfDay(day)}, nil
	case ThisWeek:
		return Window{Start: dateutil.StartOfWeek(day), End: dateutil.EndOfWeek(day)}, nil
	case ThisMonth:
		return Window{Start: dateutil.StartOfMonth(day), End: dateutil.EndOfMonth(day)}, nil
	}
	return Window{}, fmt.Errorf("%w: %q", errorvalues.ErrUnknownRange, string(r))
}

// DayWindow covers a single day.
func DayWindow(day time.Time) Window {
	return Window{Start: dateutil.StartOfDay(day), End: dateutil.EndOfDay(day)}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) Days() int {
	return dateutil.DaysBetween(w.Start, w.End) + 1
}

// ElapsedDays counts the window's days up to and including today.
func (w Window) ElapsedDays(today time.Time) int {
	end := w.End
	if eod := dateutil.EndOfDay(today); eod.Before(end) {
		end = eod
	}
	if end.Before(w.Start) {
		return 0
	}
	return dateutil.DaysBetween(w.Start, end) + 1
}

func (w Window) containsDate(kind string, id uuid.UUID, value string) (bool, error) {
	d, err := parseRecordDate(kind, id, value, w.Start.Location())
	if err != nil {
		return false, err
	}
	return w.Contains(d), nil
}

// filterByDate keeps the records whose date falls inside w.
func filterByDate[T any](items []T, w Window, kind string, key func(T) (uuid.UUID, string)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		id, date := key(it)
		ok, err := w.containsDate(kind, id, date)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// Snapshot is the set of collections a computation runs over.
type Snapshot struct {
	Todos             []entity.Todo
	Habits            []entity.Habit
	HabitEntries      []entity.HabitEntry
	Goals             []entity.Goal
	HealthEntries     []entity.HealthEntry
	TimerSessions     []entity.TimerSession
	CalendarEvents    []entity.CalendarEvent
	Meals             []entity.MealEntry
	ScreenTimeApps    []entity.ScreenTimeApp
	ScreenTimeEntries []entity.ScreenTimeEntry
	ScreenTimeLimits  []entity.ScreenTimeLimit
	Watchlist         []entity.WatchlistItem
}

type DayRate struct {
	Date string `json:"date"`
	Rate int    `json:"rate"`
}

type HabitsRollup struct {
	ActiveHabits   int       `json:"activeHabits"`
	EntriesLogged  int       `json:"entriesLogged"`
	CompletedDays  int       `json:"completedDays"`
	PossibleDays   int       `json:"possibleDays"`
	CompletionRate int       `json:"completionRate"`
	Daily          []DayRate `json:"daily"`
}

type GoalsRollup struct {
	GoalStats
	DueInRange int `json:"dueInRange"`
}

type HealthRollup struct {
	EntriesLogged        int     `json:"entriesLogged"`
	AverageSleepHours    float64 `json:"averageSleepHours"`
	AverageSleepQuality  float64 `json:"averageSleepQuality"`
	AverageMood          float64 `json:"averageMood"`
	TotalExerciseMinutes int     `json:"totalExerciseMinutes"`
	TotalCaloriesBurned  int     `json:"totalCaloriesBurned"`
	ActiveDays           int     `json:"activeDays"`
}

type TimerRollup struct {
	TimerStats
	AverageDailyFocus float64 `json:"averageDailyFocus"`
}

type TodosRollup struct {
	Created          int `json:"created"`
	CompletedInRange int `json:"completedInRange"`
	CompletionRate   int `json:"completionRate"`
	Overdue          int `json:"overdue"`
}

type ScreenTimeRollup struct {
	TotalMinutes int        `json:"totalMinutes"`
	DailyAverage float64    `json:"dailyAverage"`
	TopApps      []AppUsage `json:"topApps"`
	Warnings     []Warning  `json:"warnings"`
}

// Analytics is the fixed-shape output consumed by the analytics view.
type Analytics struct {
	Range      Range            `json:"range"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	Days       int              `json:"days"`
	Habits     HabitsRollup     `json:"habits"`
	Goals      GoalsRollup      `json:"goals"`
	Health     HealthRollup     `json:"health"`
	Timer      TimerRollup      `json:"timer"`
	Todos      TodosRollup      `json:"todos"`
	Nutrition  NutritionSummary `json:"nutrition"`
	ScreenTime ScreenTimeRollup `json:"screenTime"`
}

// Rollup resolves r against today and aggregates every domain of s over that window.
func Rollup(s Snapshot, r Range, today time.Time) (Analytics, error) {
	w, err := r.Window(today)
	if err != nil {
		return Analytics{}, err
	}
	a := Analytics{
		Range: r,
		From:  dateutil.FormatDate(w.Start),
		To:    dateutil.FormatDate(w.End),
		Days:  w.Days(),
	}
	if a.Habits, err = rollupHabits(s.Habits, s.HabitEntries, w, today); err != nil {
		return Analytics{}, err
	}
	if a.Goals, err = rollupGoals(s.Goals, w, today); err != nil {
		return Analytics{}, err
	}
	if a.Health, err = rollupHealth(s.HealthEntries, w); err != nil {
		return Analytics{}, err
	}
	if a.Timer, err = rollupTimer(s.TimerSessions, w, today); err != nil {
		return Analytics{}, err
	}
	if a.Todos, err = rollupTodos(s.Todos, w, today); err != nil {
		return Analytics{}, err
	}
	if a.Nutrition, err = SummarizeNutrition(s.Meals, w); err != nil {
		return Analytics{}, err
	}
	if a.ScreenTime, err = rollupScreenTime(s, w, today); err != nil {
		return Analytics{}, err
	}
	return a, nil
}

// rollupHabits rates completed habit-days against active habits times elapsed days,
// so future days of thisWeek/thisMonth do not drag the rate down.
func rollupHabits(habits []entity.Habit, entries []entity.HabitEntry, w Window, today time.Time) (HabitsRollup, error) {
	inRange, err := filterByDate(entries, w, "habit entry", func(e entity.HabitEntry) (uuid.UUID, string) { return e.ID, e.Date })
	if err != nil {
		return HabitsRollup{}, err
	}
	progress, err := habitProgress(inRange, w.Start.Location())
	if err != nil {
		return HabitsRollup{}, err
	}
	active := activeHabits(habits)
	elapsed := w.ElapsedDays(today)
	out := HabitsRollup{
		ActiveHabits:  len(active),
		EntriesLogged: len(inRange),
		PossibleDays:  len(active) * elapsed,
		Daily:         make([]DayRate, 0, elapsed),
	}
	for i := 0; i < elapsed; i++ {
		date := dateutil.FormatDate(w.Start.AddDate(0, 0, i))
		done := 0
		for _, h := range active {
			if IsHabitCompleted(h, progress[habitDay{habitID: h.ID, date: date}]) {
				done++
			}
		}
		out.CompletedDays += done
		out.Daily = append(out.Daily, DayRate{Date: date, Rate: Rate(done, len(active))})
	}
	out.CompletionRate = Rate(out.CompletedDays, out.PossibleDays)
	return out, nil
}

func rollupGoals(goals []entity.Goal, w Window, today time.Time) (GoalsRollup, error) {
	st, err := GoalCompletion(goals, today)
	if err != nil {
		return GoalsRollup{}, err
	}
	out := GoalsRollup{GoalStats: st}
	for _, g := range goals {
		if g.Deadline == nil {
			continue
		}
		ok, err := w.containsDate("goal", g.ID, *g.Deadline)
		if err != nil {
			return GoalsRollup{}, err
		}
		if ok {
			out.DueInRange++
		}
	}
	return out, nil
}

// rollupHealth averages only the entries that carry a value; sums treat missing values as 0.
func rollupHealth(entries []entity.HealthEntry, w Window) (HealthRollup, error) {
	inRange, err := filterByDate(entries, w, "health entry", func(e entity.HealthEntry) (uuid.UUID, string) { return e.ID, e.Date })
	if err != nil {
		return HealthRollup{}, err
	}
	var (
		out                                 HealthRollup
		sleepSum, qualitySum, moodSum       float64
		sleepCount, qualityCount, moodCount int
	)
	out.EntriesLogged = len(inRange)
	for _, e := range inRange {
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
			sleepCount++
		}
		if e.SleepQuality != nil {
			qualitySum += float64(*e.SleepQuality)
			qualityCount++
		}
		if e.Mood != nil {
			moodSum += float64(*e.Mood)
			moodCount++
		}
		if e.ExerciseMinutes != nil {
			out.TotalExerciseMinutes += *e.ExerciseMinutes
			if *e.ExerciseMinutes > 0 {
				out.ActiveDays++
			}
		}
		if e.CaloriesBurned != nil {
			out.TotalCaloriesBurned += *e.CaloriesBurned
		}
	}
	out.AverageSleepHours = average(sleepSum, sleepCount)
	out.AverageSleepQuality = average(qualitySum, qualityCount)
	out.AverageMood = average(moodSum, moodCount)
	return out, nil
}

func rollupTimer(sessions []entity.TimerSession, w Window, today time.Time) (TimerRollup, error) {
	inRange, err := filterByDate(sessions, w, "timer session", func(s entity.TimerSession) (uuid.UUID, string) { return s.ID, s.Date })
	if err != nil {
		return TimerRollup{}, err
	}
	st := TimerCompletion(inRange)
	return TimerRollup{
		TimerStats:        st,
		AverageDailyFocus: average(float64(st.FocusMinutes), w.ElapsedDays(today)),
	}, nil
}

// rollupTodos counts todos created in the window and todos completed in it.
func rollupTodos(todos []entity.Todo, w Window, today time.Time) (TodosRollup, error) {
	st, err := TodoCompletion(todos, today)
	if err != nil {
		return TodosRollup{}, err
	}
	out := TodosRollup{Overdue: st.Overdue}
	createdAndDone := 0
	for _, t := range todos {
		if t.CompletedAt != nil && w.Contains(*t.CompletedAt) {
			out.CompletedInRange++
		}
		if !w.Contains(t.CreatedAt) {
			continue
		}
		out.Created++
		if t.Status == entity.TodoCompleted {
			createdAndDone++
		}
	}
	out.CompletionRate = Rate(createdAndDone, out.Created)
	return out, nil
}

func rollupScreenTime(s Snapshot, w Window, today time.Time) (ScreenTimeRollup, error) {
	inRange, err := filterByDate(s.ScreenTimeEntries, w, "screen-time entry", func(e entity.ScreenTimeEntry) (uuid.UUID, string) { return e.ID, e.Date })
	if err != nil {
		return ScreenTimeRollup{}, err
	}
	out := ScreenTimeRollup{
		TopApps:  TopApps(inRange, s.ScreenTimeApps, 5),
		Warnings: LimitWarnings(inRange, s.ScreenTimeApps, s.ScreenTimeLimits, w.ElapsedDays(today)),
	}
	for _, e := range inRange {
		out.TotalMinutes += e.Minutes
	}
	out.DailyAverage = average(float64(out.TotalMinutes), w.ElapsedDays(today))
	return out, nil
}
