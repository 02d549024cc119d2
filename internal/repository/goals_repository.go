package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const goalColumns = `id, title, description, category, to_char(deadline, 'YYYY-MM-DD'), progress, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func scanGoal(row pgx.Row) (entity.Goal, error) {
	var g entity.Goal
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Category, &g.Deadline, &g.Progress, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (title, description, category, deadline, progress)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;`,
		goal.Title, goal.Description, goal.Category, goal.Deadline, goal.Progress,
	)
	if err := row.Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
		return errors.New("creating goal db error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) List(ctx context.Context) ([]entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY deadline NULLS LAST, created_at;`)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	goals, err := collect(rows, scanGoal)
	if err != nil {
		return nil, errors.New("unmarshalling goal error: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `UPDATE goals SET title = $1, description = $2, category = $3, deadline = $4, progress = $5,
		updated_at = NOW() WHERE id = $6 RETURNING created_at, updated_at;`,
		goal.Title, goal.Description, goal.Category, goal.Deadline, goal.Progress, goal.ID,
	)
	if err := row.Scan(&goal.CreatedAt, &goal.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrGoalNotFound
		}
		return errors.New("error updating goal: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrGoalNotFound)
}
