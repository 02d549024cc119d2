package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifedash/pkg/entity"
)

type TodosRepositoryI interface {
	// Inserts todo and fills its ID and timestamps
	Create(ctx context.Context, todo *entity.Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	List(ctx context.Context) ([]entity.Todo, error)
	// Updates every editable field of todo (ID is necessary)
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitsRepositoryI interface {
	Create(ctx context.Context, habit *entity.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	List(ctx context.Context) ([]entity.Habit, error)
	// Updates habit's editable fields. StreakDays is left untouched
	Update(ctx context.Context, habit *entity.Habit) error
	// Stores the recalculated streak counter
	SetStreak(ctx context.Context, id uuid.UUID, days int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitEntriesRepositoryI interface {
	// Creates entry or replaces value and notes of the existing entry for the same habit and date
	Upsert(ctx context.Context, entry *entity.HabitEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitEntry, error)
	List(ctx context.Context, filter DateFilter) ([]entity.HabitEntry, error)
	ListByHabit(ctx context.Context, habitID uuid.UUID, filter DateFilter) ([]entity.HabitEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	List(ctx context.Context) ([]entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HealthRepositoryI interface {
	// One entry per date: creates it or replaces the stored one
	Upsert(ctx context.Context, entry *entity.HealthEntry) error
	GetByDate(ctx context.Context, date string) (*entity.HealthEntry, error)
	List(ctx context.Context, filter DateFilter) ([]entity.HealthEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimerSessionsRepositoryI interface {
	Create(ctx context.Context, session *entity.TimerSession) error
	List(ctx context.Context, filter DateFilter) ([]entity.TimerSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CalendarEventsRepositoryI interface {
	Create(ctx context.Context, event *entity.CalendarEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error)
	// Filters on start date
	List(ctx context.Context, filter DateFilter) ([]entity.CalendarEvent, error)
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MealsRepositoryI interface {
	Create(ctx context.Context, meal *entity.MealEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error)
	List(ctx context.Context, filter DateFilter) ([]entity.MealEntry, error)
	Update(ctx context.Context, meal *entity.MealEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScreenTimeRepositoryI interface {
	CreateApp(ctx context.Context, app *entity.ScreenTimeApp) error
	ListApps(ctx context.Context) ([]entity.ScreenTimeApp, error)
	UpdateApp(ctx context.Context, app *entity.ScreenTimeApp) error
	DeleteApp(ctx context.Context, id uuid.UUID) error
	// One usage row per app and date
	UpsertEntry(ctx context.Context, entry *entity.ScreenTimeEntry) error
	ListEntries(ctx context.Context, filter DateFilter) ([]entity.ScreenTimeEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	// One limit per app
	UpsertLimit(ctx context.Context, limit *entity.ScreenTimeLimit) error
	ListLimits(ctx context.Context) ([]entity.ScreenTimeLimit, error)
	DeleteLimit(ctx context.Context, id uuid.UUID) error
}

type WatchlistRepositoryI interface {
	Create(ctx context.Context, item *entity.WatchlistItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WatchlistItem, error)
	List(ctx context.Context) ([]entity.WatchlistItem, error)
	Update(ctx context.Context, item *entity.WatchlistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DateFilter bounds a listing by calendar date (yyyy-MM-dd), both ends inclusive.
// A nil bound is open.
type DateFilter struct {
	From *string
	To   *string
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Appended as query string, e.g. "sslmode=disable"
	Options string
}

func (pgcfg *PGCfg) ConnString() string {
	s := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.Options != "" {
		s += "?" + pgcfg.Options
	}
	return s
}
