package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/entity"
)

// DefaultTopApps is the ranking size used when the caller does not pass one.
const DefaultTopApps = 5

type ScreenTimeService struct {
	repo  repository.ScreenTimeRepositoryI
	cache *cache.QueryCache
}

func NewScreenTimeService(screenTimeRepo repository.ScreenTimeRepositoryI, qc *cache.QueryCache) *ScreenTimeService {
	if screenTimeRepo == nil {
		log.Fatal("provided nil screenTimeRepo")
	}
	return &ScreenTimeService{
		repo:  screenTimeRepo,
		cache: qc,
	}
}

func (ss *ScreenTimeService) CreateApp(ctx context.Context, app *entity.ScreenTimeApp) (*entity.ScreenTimeApp, error) {
	if err := validateStruct(app); err != nil {
		return nil, err
	}
	if err := ss.repo.CreateApp(ctx, app); err != nil {
		return nil, repoError("screen time", err)
	}
	invalidate(ss.cache, appsKey)
	return app, nil
}

func (ss *ScreenTimeService) ListApps(ctx context.Context) ([]entity.ScreenTimeApp, error) {
	apps, err := cache.Fetch(ctx, ss.cache, appsKey, ss.repo.ListApps)
	if err != nil {
		return nil, repoError("screen time", err)
	}
	return apps, nil
}

func (ss *ScreenTimeService) UpdateApp(ctx context.Context, app *entity.ScreenTimeApp) (*entity.ScreenTimeApp, error) {
	if err := validateStruct(app); err != nil {
		return nil, err
	}
	if err := ss.repo.UpdateApp(ctx, app); err != nil {
		return nil, repoError("screen time", err)
	}
	invalidate(ss.cache, appsKey)
	return app, nil
}

// DeleteApp removes the app together with its usage and limit.
func (ss *ScreenTimeService) DeleteApp(ctx context.Context, id uuid.UUID) error {
	if err := ss.repo.DeleteApp(ctx, id); err != nil {
		return repoError("screen time", err)
	}
	invalidate(ss.cache, appsKey, usageKey, limitsKey)
	return nil
}

func (ss *ScreenTimeService) LogUsage(ctx context.Context, entry *entity.ScreenTimeEntry) (*entity.ScreenTimeEntry, error) {
	if err := validateStruct(entry); err != nil {
		return nil, err
	}
	if err := ss.repo.UpsertEntry(ctx, entry); err != nil {
		return nil, repoError("screen time", err)
	}
	invalidate(ss.cache, usageKey)
	return entry, nil
}

func (ss *ScreenTimeService) ListUsage(ctx context.Context, filter repository.DateFilter) ([]entity.ScreenTimeEntry, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	entries, err := cache.Fetch(ctx, ss.cache, filterKey(usageKey, filter), func(ctx context.Context) ([]entity.ScreenTimeEntry, error) {
		return ss.repo.ListEntries(ctx, filter)
	})
	if err != nil {
		return nil, repoError("screen time", err)
	}
	return entries, nil
}

func (ss *ScreenTimeService) DeleteUsage(ctx context.Context, id uuid.UUID) error {
	if err := ss.repo.DeleteEntry(ctx, id); err != nil {
		return repoError("screen time", err)
	}
	invalidate(ss.cache, usageKey)
	return nil
}

func (ss *ScreenTimeService) SetLimit(ctx context.Context, limit *entity.ScreenTimeLimit) (*entity.ScreenTimeLimit, error) {
	if err := validateStruct(limit); err != nil {
		return nil, err
	}
	if err := ss.repo.UpsertLimit(ctx, limit); err != nil {
		return nil, repoError("screen time", err)
	}
	invalidate(ss.cache, limitsKey)
	return limit, nil
}

func (ss *ScreenTimeService) ListLimits(ctx context.Context) ([]entity.ScreenTimeLimit, error) {
	limits, err := cache.Fetch(ctx, ss.cache, limitsKey, ss.repo.ListLimits)
	if err != nil {
		return nil, repoError("screen time", err)
	}
	return limits, nil
}

func (ss *ScreenTimeService) DeleteLimit(ctx context.Context, id uuid.UUID) error {
	if err := ss.repo.DeleteLimit(ctx, id); err != nil {
		return repoError("screen time", err)
	}
	invalidate(ss.cache, limitsKey)
	return nil
}

// Warnings reports the active limits that usage in the period around day has nearly
// or fully used up. Excluded apps are still checked.
func (ss *ScreenTimeService) Warnings(ctx context.Context, day time.Time, period Period) ([]stats.Warning, error) {
	filter, days := period.window(day)
	entries, err := ss.ListUsage(ctx, filter)
	if err != nil {
		return nil, err
	}
	apps, err := ss.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	limits, err := ss.ListLimits(ctx)
	if err != nil {
		return nil, err
	}
	return stats.LimitWarnings(entries, apps, limits, days), nil
}

func (ss *ScreenTimeService) TopApps(ctx context.Context, day time.Time, period Period, n int) ([]stats.AppUsage, error) {
	if n <= 0 {
		n = DefaultTopApps
	}
	filter, _ := period.window(day)
	entries, err := ss.ListUsage(ctx, filter)
	if err != nil {
		return nil, err
	}
	apps, err := ss.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	return stats.TopApps(entries, apps, n), nil
}
