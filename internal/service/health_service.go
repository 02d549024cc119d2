package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type HealthService struct {
	repo  repository.HealthRepositoryI
	cache *cache.QueryCache
}

func NewHealthService(healthRepo repository.HealthRepositoryI, qc *cache.QueryCache) *HealthService {
	if healthRepo == nil {
		log.Fatal("provided nil healthRepo")
	}
	return &HealthService{
		repo:  healthRepo,
		cache: qc,
	}
}

func (hs *HealthService) Save(ctx context.Context, entry *entity.HealthEntry) (*entity.HealthEntry, error) {
	if err := validateStruct(entry); err != nil {
		return nil, err
	}
	if err := hs.repo.Upsert(ctx, entry); err != nil {
		return nil, repoError("health", err)
	}
	invalidate(hs.cache, healthKey)
	return entry, nil
}

func (hs *HealthService) GetByDate(ctx context.Context, date string) (*entity.HealthEntry, error) {
	if _, err := dateutil.ParseDate(date, time.UTC); err != nil {
		return nil, err
	}
	entry, err := hs.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, repoError("health", err)
	}
	return entry, nil
}

func (hs *HealthService) List(ctx context.Context, filter repository.DateFilter) ([]entity.HealthEntry, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	entries, err := cache.Fetch(ctx, hs.cache, filterKey(healthKey, filter), func(ctx context.Context) ([]entity.HealthEntry, error) {
		return hs.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, repoError("health", err)
	}
	return entries, nil
}

func (hs *HealthService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := hs.repo.Delete(ctx, id); err != nil {
		return repoError("health", err)
	}
	invalidate(hs.cache, healthKey)
	return nil
}
