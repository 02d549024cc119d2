package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type TodosService struct {
	repo  repository.TodosRepositoryI
	cache *cache.QueryCache
	clock dateutil.Clock
}

func NewTodosService(todosRepo repository.TodosRepositoryI, qc *cache.QueryCache, clock dateutil.Clock) *TodosService {
	if todosRepo == nil {
		log.Fatal("provided nil todosRepo")
	}
	return &TodosService{
		repo:  todosRepo,
		cache: qc,
		clock: clock,
	}
}

func applyTodoDefaults(todo *entity.Todo) {
	if todo.Status == "" {
		todo.Status = entity.TodoPending
	}
	if todo.Priority == "" {
		todo.Priority = "medium"
	}
}

func (ts *TodosService) Create(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	applyTodoDefaults(todo)
	if err := validateStruct(todo); err != nil {
		return nil, err
	}
	todo.CompletedAt = nil
	if todo.Status == entity.TodoCompleted {
		now := ts.clock.Time()
		todo.CompletedAt = &now
	}
	if err := ts.repo.Create(ctx, todo); err != nil {
		return nil, repoError("todos", err)
	}
	invalidate(ts.cache, todosKey)
	return todo, nil
}

func (ts *TodosService) Get(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("todos", err)
	}
	return todo, nil
}

func (ts *TodosService) List(ctx context.Context) ([]entity.Todo, error) {
	todos, err := cache.Fetch(ctx, ts.cache, todosKey, ts.repo.List)
	if err != nil {
		return nil, repoError("todos", err)
	}
	return todos, nil
}

// Update replaces todo. CompletedAt follows the status: kept while the todo stays
// completed, stamped when it becomes completed and cleared when it leaves that state.
func (ts *TodosService) Update(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	applyTodoDefaults(todo)
	if err := validateStruct(todo); err != nil {
		return nil, err
	}
	existing, err := ts.repo.GetByID(ctx, todo.ID)
	if err != nil {
		return nil, repoError("todos", err)
	}
	switch {
	case todo.Status != entity.TodoCompleted:
		todo.CompletedAt = nil
	case existing.CompletedAt != nil:
		todo.CompletedAt = existing.CompletedAt
	default:
		now := ts.clock.Time()
		todo.CompletedAt = &now
	}
	todo.CreatedAt = existing.CreatedAt
	if err = ts.repo.Update(ctx, todo); err != nil {
		return nil, repoError("todos", err)
	}
	invalidate(ts.cache, todosKey)
	return todo, nil
}

func (ts *TodosService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ts.repo.Delete(ctx, id); err != nil {
		return repoError("todos", err)
	}
	invalidate(ts.cache, todosKey)
	return nil
}

func (ts *TodosService) Matrix(ctx context.Context) (stats.Matrix, error) {
	todos, err := ts.List(ctx)
	if err != nil {
		return stats.Matrix{}, err
	}
	m, err := stats.Classify(todos)
	if err != nil {
		return stats.Matrix{}, errors.New("classifying todos error: " + err.Error())
	}
	return m, nil
}

func (ts *TodosService) Essential(ctx context.Context) ([]entity.Todo, error) {
	todos, err := ts.List(ctx)
	if err != nil {
		return nil, err
	}
	essential, err := stats.EssentialTasks(todos, ts.clock.Today())
	if err != nil {
		return nil, errors.New("selecting essential todos error: " + err.Error())
	}
	return essential, nil
}
