package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
)

type TimerService struct {
	repo  repository.TimerSessionsRepositoryI
	cache *cache.QueryCache
}

func NewTimerService(sessionsRepo repository.TimerSessionsRepositoryI, qc *cache.QueryCache) *TimerService {
	if sessionsRepo == nil {
		log.Fatal("provided nil timerSessionsRepo")
	}
	return &TimerService{
		repo:  sessionsRepo,
		cache: qc,
	}
}

func (ts *TimerService) Create(ctx context.Context, session *entity.TimerSession) (*entity.TimerSession, error) {
	if session.Type == "" {
		session.Type = entity.SessionPomodoro
	}
	if err := validateStruct(session); err != nil {
		return nil, err
	}
	if err := ts.repo.Create(ctx, session); err != nil {
		return nil, repoError("timer sessions", err)
	}
	invalidate(ts.cache, timerKey)
	return session, nil
}

func (ts *TimerService) List(ctx context.Context, filter repository.DateFilter) ([]entity.TimerSession, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	sessions, err := cache.Fetch(ctx, ts.cache, filterKey(timerKey, filter), func(ctx context.Context) ([]entity.TimerSession, error) {
		return ts.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, repoError("timer sessions", err)
	}
	return sessions, nil
}

func (ts *TimerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ts.repo.Delete(ctx, id); err != nil {
		return repoError("timer sessions", err)
	}
	invalidate(ts.cache, timerKey)
	return nil
}
