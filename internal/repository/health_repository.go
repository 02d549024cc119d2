package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const healthColumns = `id, to_char(date, 'YYYY-MM-DD'), sleep_hours, sleep_quality, exercise_minutes, exercise_type,
	calories_burned, mood, notes`

type HealthRepository struct {
	conn PgConnection
}

func NewHealthRepo(conn PgConnection) *HealthRepository {
	return &HealthRepository{
		conn: conn,
	}
}

func scanHealthEntry(row pgx.Row) (entity.HealthEntry, error) {
	var h entity.HealthEntry
	err := row.Scan(&h.ID, &h.Date, &h.SleepHours, &h.SleepQuality, &h.ExerciseMinutes, &h.ExerciseType,
		&h.CaloriesBurned, &h.Mood, &h.Notes)
	return h, err
}

func (hr *HealthRepository) Upsert(ctx context.Context, entry *entity.HealthEntry) error {
	row := hr.conn.QueryRow(ctx, `INSERT INTO health_entries (date, sleep_hours, sleep_quality, exercise_minutes, exercise_type,
		calories_burned, mood, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO UPDATE SET sleep_hours = EXCLUDED.sleep_hours, sleep_quality = EXCLUDED.sleep_quality,
		exercise_minutes = EXCLUDED.exercise_minutes, exercise_type = EXCLUDED.exercise_type,
		calories_burned = EXCLUDED.calories_burned, mood = EXCLUDED.mood, notes = EXCLUDED.notes RETURNING id;`,
		entry.Date, entry.SleepHours, entry.SleepQuality, entry.ExerciseMinutes, entry.ExerciseType,
		entry.CaloriesBurned, entry.Mood, entry.Notes,
	)
	if err := row.Scan(&entry.ID); err != nil {
		return errors.New("saving health entry error: " + err.Error())
	}
	return nil
}

func (hr *HealthRepository) GetByDate(ctx context.Context, date string) (*entity.HealthEntry, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+healthColumns+` FROM health_entries WHERE date = $1;`, date)
	entry, err := scanHealthEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHealthEntryNotFound
		}
		return nil, errors.New("getting health entry by date error: " + err.Error())
	}
	return &entry, nil
}

func (hr *HealthRepository) List(ctx context.Context, filter DateFilter) ([]entity.HealthEntry, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+healthColumns+` FROM health_entries
		WHERE ($1::date IS NULL OR date >= $1::date) AND ($2::date IS NULL OR date <= $2::date) ORDER BY date;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing health entries error: " + err.Error())
	}
	entries, err := collect(rows, scanHealthEntry)
	if err != nil {
		return nil, errors.New("unmarshalling health entry error: " + err.Error())
	}
	return entries, nil
}

func (hr *HealthRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM health_entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting health entry: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrHealthEntryNotFound)
}
