package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const todoColumns = `id, title, description, category_id, status, priority, is_urgent, is_important,
	priority_score, to_char(due_date, 'YYYY-MM-DD'), estimated_minutes, completed_at, created_at, updated_at`

type TodosRepository struct {
	conn PgConnection
}

func NewTodosRepo(conn PgConnection) *TodosRepository {
	return &TodosRepository{
		conn: conn,
	}
}

func scanTodo(row pgx.Row) (entity.Todo, error) {
	var t entity.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.CategoryID, &t.Status, &t.Priority, &t.IsUrgent, &t.IsImportant,
		&t.PriorityScore, &t.DueDate, &t.EstimatedMinutes, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (tr *TodosRepository) Create(ctx context.Context, todo *entity.Todo) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO todos (title, description, category_id, status, priority, is_urgent, is_important,
		priority_score, due_date, estimated_minutes, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at;`,
		todo.Title, todo.Description, todo.CategoryID, todo.Status, todo.Priority, todo.IsUrgent, todo.IsImportant,
		todo.PriorityScore, todo.DueDate, todo.EstimatedMinutes, todo.CompletedAt,
	)
	if err := row.Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		return errors.New("creating todo db error: " + err.Error())
	}
	return nil
}

func (tr *TodosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1;`, id)
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTodoNotFound
		}
		return nil, errors.New("getting todo by id error: " + err.Error())
	}
	return &todo, nil
}

func (tr *TodosRepository) List(ctx context.Context) ([]entity.Todo, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+todoColumns+` FROM todos ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing todos error: " + err.Error())
	}
	todos, err := collect(rows, scanTodo)
	if err != nil {
		return nil, errors.New("unmarshalling todo error: " + err.Error())
	}
	return todos, nil
}

func (tr *TodosRepository) Update(ctx context.Context, todo *entity.Todo) error {
	row := tr.conn.QueryRow(ctx, `UPDATE todos SET title = $1, description = $2, category_id = $3, status = $4, priority = $5,
		is_urgent = $6, is_important = $7, priority_score = $8, due_date = $9, estimated_minutes = $10, completed_at = $11,
		updated_at = NOW() WHERE id = $12 RETURNING updated_at;`,
		todo.Title, todo.Description, todo.CategoryID, todo.Status, todo.Priority, todo.IsUrgent, todo.IsImportant,
		todo.PriorityScore, todo.DueDate, todo.EstimatedMinutes, todo.CompletedAt, todo.ID,
	)
	if err := row.Scan(&todo.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrTodoNotFound
		}
		return errors.New("error updating todo: " + err.Error())
	}
	return nil
}

func (tr *TodosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM todos WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting todo: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrTodoNotFound)
}
