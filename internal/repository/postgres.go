package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/lifedash/pkg/cleanup"
)

const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

// Connect opens a pool shared by every repository and registers its shutdown.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection pool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	slog.Info("connected to postgres")
	return pool, nil
}

// Repositories groups every collection's store over one connection.
type Repositories struct {
	Todos        *TodosRepository
	Habits       *HabitsRepository
	HabitEntries *HabitEntriesRepository
	Goals        *GoalsRepository
	Health       *HealthRepository
	Timer        *TimerSessionsRepository
	Calendar     *CalendarEventsRepository
	Meals        *MealsRepository
	ScreenTime   *ScreenTimeRepository
	Watchlist    *WatchlistRepository
}

func NewRepositories(conn PgConnection) *Repositories {
	return &Repositories{
		Todos:        NewTodosRepo(conn),
		Habits:       NewHabitsRepo(conn),
		HabitEntries: NewHabitEntriesRepo(conn),
		Goals:        NewGoalsRepo(conn),
		Health:       NewHealthRepo(conn),
		Timer:        NewTimerSessionsRepo(conn),
		Calendar:     NewCalendarEventsRepo(conn),
		Meals:        NewMealsRepo(conn),
		ScreenTime:   NewScreenTimeRepo(conn),
		Watchlist:    NewWatchlistRepo(conn),
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// collect scans every row with scan. The result is never nil.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// affectOne turns a command that touched no rows into notFound.
func affectOne(ct pgconn.CommandTag, notFound error) error {
	if ct.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
