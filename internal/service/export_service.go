package service

import (
	"context"
	"strconv"
	"time"

	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// ExportBundle is a full backup. Field names match the JSON API.
type ExportBundle struct {
	ExportedAt        time.Time                `json:"exportedAt"`
	Todos             []entity.Todo            `json:"todos"`
	Habits            []entity.Habit           `json:"habits"`
	HabitEntries      []entity.HabitEntry      `json:"habitEntries"`
	Goals             []entity.Goal            `json:"goals"`
	HealthEntries     []entity.HealthEntry     `json:"healthEntries"`
	TimerSessions     []entity.TimerSession    `json:"timerSessions"`
	CalendarEvents    []entity.CalendarEvent   `json:"calendarEvents"`
	Meals             []entity.MealEntry       `json:"meals"`
	ScreenTimeApps    []entity.ScreenTimeApp   `json:"screenTimeApps"`
	ScreenTimeEntries []entity.ScreenTimeEntry `json:"screenTimeEntries"`
	ScreenTimeLimits  []entity.ScreenTimeLimit `json:"screenTimeLimits"`
	Watchlist         []entity.WatchlistItem   `json:"watchlist"`
}

var (
	watchlistCSVHeader  = []string{"id", "title", "type", "status", "finishedAt", "length", "rating", "notes", "createdAt"}
	screenTimeCSVHeader = []string{"id", "appId", "date", "minutes"}
)

type ExportService struct {
	src   Sources
	clock dateutil.Clock
}

func NewExportService(src Sources, clock dateutil.Clock) *ExportService {
	src.mustBeComplete()
	return &ExportService{
		src:   src,
		clock: clock,
	}
}

func (es *ExportService) Bundle(ctx context.Context) (*ExportBundle, error) {
	s, err := es.src.Load(ctx, repository.DateFilter{})
	if err != nil {
		return nil, err
	}
	return &ExportBundle{
		ExportedAt:        es.clock.Time(),
		Todos:             s.Todos,
		Habits:            s.Habits,
		HabitEntries:      s.HabitEntries,
		Goals:             s.Goals,
		HealthEntries:     s.HealthEntries,
		TimerSessions:     s.TimerSessions,
		CalendarEvents:    s.CalendarEvents,
		Meals:             s.Meals,
		ScreenTimeApps:    s.ScreenTimeApps,
		ScreenTimeEntries: s.ScreenTimeEntries,
		ScreenTimeLimits:  s.ScreenTimeLimits,
		Watchlist:         s.Watchlist,
	}, nil
}

func (es *ExportService) WatchlistCSV(ctx context.Context) ([][]string, error) {
	items, err := es.src.Watchlist.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(items)+1)
	records = append(records, watchlistCSVHeader)
	for _, it := range items {
		records = append(records, []string{
			it.ID.String(),
			it.Title,
			it.Type,
			string(it.Status),
			formatTimePtr(it.FinishedAt),
			formatIntPtr(it.Length),
			formatIntPtr(it.Rating),
			it.Notes,
			it.CreatedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}

func (es *ExportService) ScreenTimeCSV(ctx context.Context, filter repository.DateFilter) ([][]string, error) {
	entries, err := es.src.ScreenTime.ListUsage(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(entries)+1)
	records = append(records, screenTimeCSVHeader)
	for _, e := range entries {
		records = append(records, []string{e.ID.String(), e.AppID.String(), e.Date, strconv.Itoa(e.Minutes)})
	}
	return records, nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
