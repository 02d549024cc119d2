package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/entity"
)

type TodosServiceI interface {
	// Validates todo and stores it. Completed todos get CompletedAt stamped
	Create(ctx context.Context, todo *entity.Todo) (*entity.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	List(ctx context.Context) ([]entity.Todo, error)
	Update(ctx context.Context, todo *entity.Todo) (*entity.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Open todos split into Eisenhower quadrants
	Matrix(ctx context.Context) (stats.Matrix, error)
	// The short list of todos that need attention today
	Essential(ctx context.Context) ([]entity.Todo, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	ListHabits(ctx context.Context) ([]entity.Habit, error)
	UpdateHabit(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	// Creates or replaces the entry of a habit for a date and refreshes the habit's streak
	LogEntry(ctx context.Context, entry *entity.HabitEntry) (*entity.HabitEntry, error)
	ListEntries(ctx context.Context, filter repository.DateFilter) ([]entity.HabitEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	DayStats(ctx context.Context, day time.Time) (stats.HabitDayStats, error)
	Streaks(ctx context.Context) ([]stats.HabitStreakInfo, error)
}

type GoalsServiceI interface {
	Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	List(ctx context.Context) ([]entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type HealthServiceI interface {
	// One entry per date, saving again replaces it
	Save(ctx context.Context, entry *entity.HealthEntry) (*entity.HealthEntry, error)
	GetByDate(ctx context.Context, date string) (*entity.HealthEntry, error)
	List(ctx context.Context, filter repository.DateFilter) ([]entity.HealthEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimerServiceI interface {
	Create(ctx context.Context, session *entity.TimerSession) (*entity.TimerSession, error)
	List(ctx context.Context, filter repository.DateFilter) ([]entity.TimerSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CalendarServiceI interface {
	Create(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error)
	List(ctx context.Context, filter repository.DateFilter) ([]entity.CalendarEvent, error)
	Update(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Upcoming(ctx context.Context) ([]entity.CalendarEvent, error)
}

type MealsServiceI interface {
	// Validates meal and caches the totals of its items
	Create(ctx context.Context, meal *entity.MealEntry) (*entity.MealEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error)
	List(ctx context.Context, filter repository.DateFilter) ([]entity.MealEntry, error)
	Update(ctx context.Context, meal *entity.MealEntry) (*entity.MealEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DaySummary(ctx context.Context, day time.Time) (*MealsDaySummary, error)
}

type ScreenTimeServiceI interface {
	CreateApp(ctx context.Context, app *entity.ScreenTimeApp) (*entity.ScreenTimeApp, error)
	ListApps(ctx context.Context) ([]entity.ScreenTimeApp, error)
	UpdateApp(ctx context.Context, app *entity.ScreenTimeApp) (*entity.ScreenTimeApp, error)
	DeleteApp(ctx context.Context, id uuid.UUID) error
	// Records the minutes spent in an app on a date, replacing any earlier value
	LogUsage(ctx context.Context, entry *entity.ScreenTimeEntry) (*entity.ScreenTimeEntry, error)
	ListUsage(ctx context.Context, filter repository.DateFilter) ([]entity.ScreenTimeEntry, error)
	DeleteUsage(ctx context.Context, id uuid.UUID) error
	SetLimit(ctx context.Context, limit *entity.ScreenTimeLimit) (*entity.ScreenTimeLimit, error)
	ListLimits(ctx context.Context) ([]entity.ScreenTimeLimit, error)
	DeleteLimit(ctx context.Context, id uuid.UUID) error
	Warnings(ctx context.Context, day time.Time, period Period) ([]stats.Warning, error)
	TopApps(ctx context.Context, day time.Time, period Period, n int) ([]stats.AppUsage, error)
}

type WatchlistServiceI interface {
	Create(ctx context.Context, item *entity.WatchlistItem) (*entity.WatchlistItem, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.WatchlistItem, error)
	List(ctx context.Context) ([]entity.WatchlistItem, error)
	Update(ctx context.Context, item *entity.WatchlistItem) (*entity.WatchlistItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (stats.WatchlistSummary, error)
}

type AnalyticsServiceI interface {
	Dashboard(ctx context.Context) (*stats.Dashboard, error)
	Analytics(ctx context.Context, r stats.Range) (*stats.Analytics, error)
}

type ExportServiceI interface {
	// Every collection in one document
	Bundle(ctx context.Context) (*ExportBundle, error)
	WatchlistCSV(ctx context.Context) ([][]string, error)
	ScreenTimeCSV(ctx context.Context, filter repository.DateFilter) ([][]string, error)
}
