package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

// ScreenTimeRepository stores tracked apps, their daily usage and their limits.
type ScreenTimeRepository struct {
	conn PgConnection
}

func NewScreenTimeRepo(conn PgConnection) *ScreenTimeRepository {
	return &ScreenTimeRepository{
		conn: conn,
	}
}

func scanApp(row pgx.Row) (entity.ScreenTimeApp, error) {
	var a entity.ScreenTimeApp
	err := row.Scan(&a.ID, &a.Name, &a.Category, &a.IsExcluded)
	return a, err
}

func scanUsage(row pgx.Row) (entity.ScreenTimeEntry, error) {
	var e entity.ScreenTimeEntry
	err := row.Scan(&e.ID, &e.AppID, &e.Date, &e.Minutes)
	return e, err
}

func scanLimit(row pgx.Row) (entity.ScreenTimeLimit, error) {
	var l entity.ScreenTimeLimit
	err := row.Scan(&l.ID, &l.AppID, &l.DailyLimitMinutes, &l.IsActive)
	return l, err
}

func (sr *ScreenTimeRepository) CreateApp(ctx context.Context, app *entity.ScreenTimeApp) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO screen_time_apps (name, category, is_excluded) VALUES ($1, $2, $3) RETURNING id;`,
		app.Name, app.Category, app.IsExcluded,
	)
	if err := row.Scan(&app.ID); err != nil {
		// Unique violation
		if pgErrorCode(err) == codeUniqueViolation {
			return errorvalues.ErrAppExists
		}
		return errors.New("creating screen-time app db error: " + err.Error())
	}
	return nil
}

func (sr *ScreenTimeRepository) ListApps(ctx context.Context) ([]entity.ScreenTimeApp, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, name, category, is_excluded FROM screen_time_apps ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing screen-time apps error: " + err.Error())
	}
	apps, err := collect(rows, scanApp)
	if err != nil {
		return nil, errors.New("unmarshalling screen-time app error: " + err.Error())
	}
	return apps, nil
}

func (sr *ScreenTimeRepository) UpdateApp(ctx context.Context, app *entity.ScreenTimeApp) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE screen_time_apps SET name = $1, category = $2, is_excluded = $3 WHERE id = $4;`,
		app.Name, app.Category, app.IsExcluded, app.ID,
	)
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return errorvalues.ErrAppExists
		}
		return errors.New("error updating screen-time app: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrAppNotFound)
}

func (sr *ScreenTimeRepository) DeleteApp(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM screen_time_apps WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting screen-time app: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrAppNotFound)
}

func (sr *ScreenTimeRepository) UpsertEntry(ctx context.Context, entry *entity.ScreenTimeEntry) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO screen_time_entries (app_id, date, minutes) VALUES ($1, $2, $3)
		ON CONFLICT (app_id, date) DO UPDATE SET minutes = EXCLUDED.minutes RETURNING id;`,
		entry.AppID, entry.Date, entry.Minutes,
	)
	if err := row.Scan(&entry.ID); err != nil {
		// FK violation
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrAppNotFound
		}
		return errors.New("saving screen-time entry error: " + err.Error())
	}
	return nil
}

func (sr *ScreenTimeRepository) ListEntries(ctx context.Context, filter DateFilter) ([]entity.ScreenTimeEntry, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, app_id, to_char(date, 'YYYY-MM-DD'), minutes FROM screen_time_entries
		WHERE ($1::date IS NULL OR date >= $1::date) AND ($2::date IS NULL OR date <= $2::date) ORDER BY date;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing screen-time entries error: " + err.Error())
	}
	entries, err := collect(rows, scanUsage)
	if err != nil {
		return nil, errors.New("unmarshalling screen-time entry error: " + err.Error())
	}
	return entries, nil
}

func (sr *ScreenTimeRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM screen_time_entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting screen-time entry: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrUsageNotFound)
}

func (sr *ScreenTimeRepository) UpsertLimit(ctx context.Context, limit *entity.ScreenTimeLimit) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO screen_time_limits (app_id, daily_limit_minutes, is_active) VALUES ($1, $2, $3)
		ON CONFLICT (app_id) DO UPDATE SET daily_limit_minutes = EXCLUDED.daily_limit_minutes, is_active = EXCLUDED.is_active
		RETURNING id;`,
		limit.AppID, limit.DailyLimitMinutes, limit.IsActive,
	)
	if err := row.Scan(&limit.ID); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrAppNotFound
		}
		return errors.New("saving screen-time limit error: " + err.Error())
	}
	return nil
}

func (sr *ScreenTimeRepository) ListLimits(ctx context.Context) ([]entity.ScreenTimeLimit, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, app_id, daily_limit_minutes, is_active FROM screen_time_limits;`)
	if err != nil {
		return nil, errors.New("listing screen-time limits error: " + err.Error())
	}
	limits, err := collect(rows, scanLimit)
	if err != nil {
		return nil, errors.New("unmarshalling screen-time limit error: " + err.Error())
	}
	return limits, nil
}

func (sr *ScreenTimeRepository) DeleteLimit(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM screen_time_limits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting screen-time limit: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrLimitNotFound)
}
