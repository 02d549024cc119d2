package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
)

type GoalsService struct {
	repo  repository.GoalsRepositoryI
	cache *cache.QueryCache
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, qc *cache.QueryCache) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalsService{
		repo:  goalsRepo,
		cache: qc,
	}
}

func (gs *GoalsService) Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	if err := validateStruct(goal); err != nil {
		return nil, err
	}
	if err := gs.repo.Create(ctx, goal); err != nil {
		return nil, repoError("goals", err)
	}
	invalidate(gs.cache, goalsKey)
	return goal, nil
}

func (gs *GoalsService) Get(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("goals", err)
	}
	return goal, nil
}

func (gs *GoalsService) List(ctx context.Context) ([]entity.Goal, error) {
	goals, err := cache.Fetch(ctx, gs.cache, goalsKey, gs.repo.List)
	if err != nil {
		return nil, repoError("goals", err)
	}
	return goals, nil
}

func (gs *GoalsService) Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	if err := validateStruct(goal); err != nil {
		return nil, err
	}
	if err := gs.repo.Update(ctx, goal); err != nil {
		return nil, repoError("goals", err)
	}
	invalidate(gs.cache, goalsKey)
	return goal, nil
}

func (gs *GoalsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := gs.repo.Delete(ctx, id); err != nil {
		return repoError("goals", err)
	}
	invalidate(gs.cache, goalsKey)
	return nil
}
