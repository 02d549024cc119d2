package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type ScreenTimeDay struct {
	TotalMinutes int        `json:"totalMinutes"`
	TopApps      []AppUsage `json:"topApps"`
	Warnings     []Warning  `json:"warnings"`
}

// Dashboard is everything the landing page shows for one day.
type Dashboard struct {
	Date           string                 `json:"date"`
	Habits         HabitDayStats          `json:"habits"`
	HabitStreaks   []HabitStreakInfo      `json:"habitStreaks"`
	Todos          TodoStats              `json:"todos"`
	EssentialTasks []entity.Todo          `json:"essentialTasks"`
	Goals          GoalStats              `json:"goals"`
	Timer          TimerStats             `json:"timer"`
	Health         *entity.HealthEntry    `json:"health"`
	Nutrition      NutritionTotals        `json:"nutrition"`
	UpcomingEvents []entity.CalendarEvent `json:"upcomingEvents"`
	ScreenTime     ScreenTimeDay          `json:"screenTime"`
	Watchlist      WatchlistSummary       `json:"watchlist"`
}

func BuildDashboard(s Snapshot, today time.Time) (Dashboard, error) {
	day := DayWindow(today)
	d := Dashboard{Date: dateutil.FormatDate(today)}
	var err error
	if d.Habits, err = HabitCompletion(s.Habits, s.HabitEntries, today); err != nil {
		return Dashboard{}, err
	}
	if d.HabitStreaks, err = HabitStreaks(s.Habits, s.HabitEntries, today); err != nil {
		return Dashboard{}, err
	}
	if d.Todos, err = TodoCompletion(s.Todos, today); err != nil {
		return Dashboard{}, err
	}
	if d.EssentialTasks, err = EssentialTasks(s.Todos, today); err != nil {
		return Dashboard{}, err
	}
	if d.Goals, err = GoalCompletion(s.Goals, today); err != nil {
		return Dashboard{}, err
	}

	sessions, err := filterByDate(s.TimerSessions, day, "timer session", func(t entity.TimerSession) (uuid.UUID, string) { return t.ID, t.Date })
	if err != nil {
		return Dashboard{}, err
	}
	d.Timer = TimerCompletion(sessions)

	health, err := filterByDate(s.HealthEntries, day, "health entry", func(h entity.HealthEntry) (uuid.UUID, string) { return h.ID, h.Date })
	if err != nil {
		return Dashboard{}, err
	}
	if len(health) > 0 {
		d.Health = &health[0]
	}

	if d.Nutrition, err = DailyNutrition(s.Meals, today); err != nil {
		return Dashboard{}, err
	}
	if d.UpcomingEvents, err = UpcomingEvents(s.CalendarEvents, today, UpcomingEventsDays, UpcomingEventsLimit); err != nil {
		return Dashboard{}, err
	}

	usage, err := filterByDate(s.ScreenTimeEntries, day, "screen-time entry", func(e entity.ScreenTimeEntry) (uuid.UUID, string) { return e.ID, e.Date })
	if err != nil {
		return Dashboard{}, err
	}
	for _, e := range usage {
		d.ScreenTime.TotalMinutes += e.Minutes
	}
	d.ScreenTime.TopApps = TopApps(usage, s.ScreenTimeApps, 3)
	d.ScreenTime.Warnings = LimitWarnings(usage, s.ScreenTimeApps, s.ScreenTimeLimits, 1)

	d.Watchlist = SummarizeWatchlist(s.Watchlist, today)
	return d, nil
}
