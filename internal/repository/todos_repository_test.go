package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

var todoRowColumns = []string{"id", "title", "description", "category_id", "status", "priority", "is_urgent", "is_important",
	"priority_score", "due_date", "estimated_minutes", "completed_at", "created_at", "updated_at"}

func todoRow(rows *pgxmock.Rows, t entity.Todo) *pgxmock.Rows {
	return rows.AddRow(t.ID, t.Title, t.Description, t.CategoryID, t.Status, t.Priority, t.IsUrgent, t.IsImportant,
		t.PriorityScore, t.DueDate, t.EstimatedMinutes, t.CompletedAt, t.CreatedAt, t.UpdatedAt)
}

func TestCreateTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTodosRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO todos (title, description, category_id, status, priority`)
	todo := entity.Todo{
		Title:         "file taxes",
		Status:        entity.TodoPending,
		Priority:      "high",
		IsImportant:   true,
		PriorityScore: ptr(4),
		DueDate:       ptr("2026-10-20"),
	}
	args := []any{todo.Title, todo.Description, todo.CategoryID, todo.Status, todo.Priority, todo.IsUrgent, todo.IsImportant,
		todo.PriorityScore, todo.DueDate, todo.EstimatedMinutes, todo.CompletedAt}
	id := uuid.New()
	now := time.Now()
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))
		created := todo
		err := repo.Create(ctx, &created)
		assert.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, now, created.CreatedAt)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		created := todo
		err := repo.Create(ctx, &created)
		assert.EqualError(t, err, "creating todo db error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTodoByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTodosRepo(mock)
	todo := entity.Todo{
		ID:          uuid.New(),
		Title:       "call mom",
		Status:      entity.TodoCompleted,
		Priority:    "medium",
		IsUrgent:    true,
		DueDate:     ptr("2026-10-14"),
		CompletedAt: ptr(time.Now()),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	query := regexp.QuoteMeta(`FROM todos WHERE id = $1;`)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Result       *entity.Todo
		Error        error
	}{
		{
			Desc: "found",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(todo.ID).WillReturnRows(todoRow(pgxmock.NewRows(todoRowColumns), todo))
			},
			Result: &todo,
		},
		{
			Desc: "not found",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(todo.ID).WillReturnError(pgx.ErrNoRows)
			},
			Error: errorvalues.ErrTodoNotFound,
		},
		{
			Desc: "db error",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(todo.ID).WillReturnError(errors.New("db error"))
			},
			Error: errors.New("getting todo by id error: db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := repo.GetByID(ctx, todo.ID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Result, res)
		})
	}
	assert.ErrorIs(t, errorvalues.ErrTodoNotFound, errorvalues.ErrNotFound)
}

func TestListTodos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTodosRepo(mock)
	query := regexp.QuoteMeta(`FROM todos ORDER BY created_at DESC;`)
	todos := []entity.Todo{
		{ID: uuid.New(), Title: "a", Status: entity.TodoPending, Priority: "low", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		{ID: uuid.New(), Title: "b", Status: entity.TodoInProgress, Priority: "urgent", PriorityScore: ptr(5), CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	ctx := context.Background()
	t.Run("rows", func(t *testing.T) {
		rows := pgxmock.NewRows(todoRowColumns)
		for _, td := range todos {
			todoRow(rows, td)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		res, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, todos, res)
	})
	t.Run("empty is not nil", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(todoRowColumns))
		res, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Len(t, res, 0)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestUpdateTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTodosRepo(mock)
	query := regexp.QuoteMeta(`UPDATE todos SET title = $1`)
	todo := entity.Todo{ID: uuid.New(), Title: "renamed", Status: entity.TodoPending, Priority: "low"}
	args := []any{todo.Title, todo.Description, todo.CategoryID, todo.Status, todo.Priority, todo.IsUrgent, todo.IsImportant,
		todo.PriorityScore, todo.DueDate, todo.EstimatedMinutes, todo.CompletedAt, todo.ID}
	ctx := context.Background()
	t.Run("updated", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
		upd := todo
		assert.NoError(t, repo.Update(ctx, &upd))
		assert.Equal(t, now, upd.UpdatedAt)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
		upd := todo
		assert.ErrorIs(t, repo.Update(ctx, &upd), errorvalues.ErrTodoNotFound)
	})
}

func TestDeleteTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewTodosRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrTodoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, id))
	})
}
