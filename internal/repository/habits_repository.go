package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const habitColumns = `id, name, description, category, frequency, target_value, unit, is_archived, streak_days, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func scanHabit(row pgx.Row) (entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.Frequency, &h.TargetValue, &h.Unit,
		&h.IsArchived, &h.StreakDays, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) error {
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (name, description, category, frequency, target_value, unit, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, streak_days, created_at, updated_at;`,
		habit.Name, habit.Description, habit.Category, habit.Frequency, habit.TargetValue, habit.Unit, habit.IsArchived,
	)
	if err := row.Scan(&habit.ID, &habit.StreakDays, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		return errors.New("creating habit db error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) List(ctx context.Context) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing habits error: " + err.Error())
	}
	habits, err := collect(rows, scanHabit)
	if err != nil {
		return nil, errors.New("unmarshalling habit error: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	row := hr.conn.QueryRow(ctx, `UPDATE habits SET name = $1, description = $2, category = $3, frequency = $4,
		target_value = $5, unit = $6, is_archived = $7, updated_at = NOW() WHERE id = $8 RETURNING streak_days, created_at, updated_at;`,
		habit.Name, habit.Description, habit.Category, habit.Frequency, habit.TargetValue, habit.Unit, habit.IsArchived, habit.ID,
	)
	if err := row.Scan(&habit.StreakDays, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrHabitNotFound
		}
		return errors.New("error updating habit: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) SetStreak(ctx context.Context, id uuid.UUID, days int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET streak_days = $1 WHERE id = $2;`, days, id)
	if err != nil {
		return errors.New("error updating habit streak: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrHabitNotFound)
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrHabitNotFound)
}
