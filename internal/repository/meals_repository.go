package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const mealColumns = `id, to_char(date, 'YYYY-MM-DD'), meal_type, items, notes,
	total_calories, total_protein, total_carbs, total_fat, total_fiber, created_at`

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(conn PgConnection) *MealsRepository {
	return &MealsRepository{
		conn: conn,
	}
}

// Items are stored as a jsonb array.
func scanMeal(row pgx.Row) (entity.MealEntry, error) {
	var (
		m     entity.MealEntry
		items []byte
	)
	err := row.Scan(&m.ID, &m.Date, &m.MealType, &items, &m.Notes,
		&m.TotalCalories, &m.TotalProtein, &m.TotalCarbs, &m.TotalFat, &m.TotalFiber, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Items = make([]entity.MealItem, 0)
	if len(items) > 0 {
		if err = sonic.Unmarshal(items, &m.Items); err != nil {
			return m, errors.New("decoding meal items: " + err.Error())
		}
	}
	return m, nil
}

func encodeItems(items []entity.MealItem) ([]byte, error) {
	if items == nil {
		items = []entity.MealItem{}
	}
	b, err := sonic.Marshal(items)
	if err != nil {
		return nil, errors.New("encoding meal items: " + err.Error())
	}
	return b, nil
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.MealEntry) error {
	items, err := encodeItems(meal.Items)
	if err != nil {
		return err
	}
	row := mr.conn.QueryRow(ctx, `INSERT INTO meals (date, meal_type, items, notes,
		total_calories, total_protein, total_carbs, total_fat, total_fiber)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;`,
		meal.Date, meal.MealType, items, meal.Notes,
		meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.TotalFiber,
	)
	if err = row.Scan(&meal.ID, &meal.CreatedAt); err != nil {
		return errors.New("creating meal db error: " + err.Error())
	}
	return nil
}

func (mr *MealsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+mealColumns+` FROM meals WHERE id = $1;`, id)
	meal, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealNotFound
		}
		return nil, errors.New("getting meal by id error: " + err.Error())
	}
	return &meal, nil
}

func (mr *MealsRepository) List(ctx context.Context, filter DateFilter) ([]entity.MealEntry, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM meals
		WHERE ($1::date IS NULL OR date >= $1::date) AND ($2::date IS NULL OR date <= $2::date) ORDER BY date, created_at;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing meals error: " + err.Error())
	}
	meals, err := collect(rows, scanMeal)
	if err != nil {
		return nil, errors.New("unmarshalling meal error: " + err.Error())
	}
	return meals, nil
}

func (mr *MealsRepository) Update(ctx context.Context, meal *entity.MealEntry) error {
	items, err := encodeItems(meal.Items)
	if err != nil {
		return err
	}
	row := mr.conn.QueryRow(ctx, `UPDATE meals SET date = $1, meal_type = $2, items = $3, notes = $4,
		total_calories = $5, total_protein = $6, total_carbs = $7, total_fat = $8, total_fiber = $9
		WHERE id = $10 RETURNING created_at;`,
		meal.Date, meal.MealType, items, meal.Notes,
		meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.TotalFiber, meal.ID,
	)
	if err = row.Scan(&meal.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrMealNotFound
		}
		return errors.New("error updating meal: " + err.Error())
	}
	return nil
}

func (mr *MealsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM meals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting meal: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrMealNotFound)
}
