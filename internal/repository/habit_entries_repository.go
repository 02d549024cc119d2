package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const habitEntryColumns = `id, habit_id, to_char(date, 'YYYY-MM-DD'), value, notes`

type HabitEntriesRepository struct {
	conn PgConnection
}

func NewHabitEntriesRepo(conn PgConnection) *HabitEntriesRepository {
	return &HabitEntriesRepository{
		conn: conn,
	}
}

func scanHabitEntry(row pgx.Row) (entity.HabitEntry, error) {
	var e entity.HabitEntry
	err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Value, &e.Notes)
	return e, err
}

func (er *HabitEntriesRepository) Upsert(ctx context.Context, entry *entity.HabitEntry) error {
	row := er.conn.QueryRow(ctx, `INSERT INTO habit_entries (habit_id, date, value, notes) VALUES ($1, $2, $3, $4)
		ON CONFLICT (habit_id, date) DO UPDATE SET value = EXCLUDED.value, notes = EXCLUDED.notes RETURNING id;`,
		entry.HabitID, entry.Date, entry.Value, entry.Notes,
	)
	if err := row.Scan(&entry.ID); err != nil {
		// FK violation
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrHabitNotFound
		}
		return errors.New("saving habit entry error: " + err.Error())
	}
	return nil
}

func (er *HabitEntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitEntry, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries WHERE id = $1;`, id)
	entry, err := scanHabitEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting habit entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (er *HabitEntriesRepository) List(ctx context.Context, filter DateFilter) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries
		WHERE ($1::date IS NULL OR date >= $1::date) AND ($2::date IS NULL OR date <= $2::date) ORDER BY date;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing habit entries error: " + err.Error())
	}
	entries, err := collect(rows, scanHabitEntry)
	if err != nil {
		return nil, errors.New("unmarshalling habit entry error: " + err.Error())
	}
	return entries, nil
}

func (er *HabitEntriesRepository) ListByHabit(ctx context.Context, habitID uuid.UUID, filter DateFilter) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries
		WHERE habit_id = $1 AND ($2::date IS NULL OR date >= $2::date) AND ($3::date IS NULL OR date <= $3::date) ORDER BY date;`,
		habitID, filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing entries of habit error: " + err.Error())
	}
	entries, err := collect(rows, scanHabitEntry)
	if err != nil {
		return nil, errors.New("unmarshalling habit entry error: " + err.Error())
	}
	return entries, nil
}

func (er *HabitEntriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM habit_entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit entry: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrEntryNotFound)
}
