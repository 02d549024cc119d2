package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type WatchlistService struct {
	repo  repository.WatchlistRepositoryI
	cache *cache.QueryCache
	clock dateutil.Clock
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepositoryI, qc *cache.QueryCache, clock dateutil.Clock) *WatchlistService {
	if watchlistRepo == nil {
		log.Fatal("provided nil watchlistRepo")
	}
	return &WatchlistService{
		repo:  watchlistRepo,
		cache: qc,
		clock: clock,
	}
}

func (ws *WatchlistService) Create(ctx context.Context, item *entity.WatchlistItem) (*entity.WatchlistItem, error) {
	if item.Status == "" {
		item.Status = entity.WatchToWatch
	}
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	switch {
	case item.Status != entity.WatchDone:
		item.FinishedAt = nil
	case item.FinishedAt == nil:
		now := ws.clock.Time()
		item.FinishedAt = &now
	}
	if err := ws.repo.Create(ctx, item); err != nil {
		return nil, repoError("watchlist", err)
	}
	invalidate(ws.cache, watchlistKey)
	return item, nil
}

func (ws *WatchlistService) Get(ctx context.Context, id uuid.UUID) (*entity.WatchlistItem, error) {
	item, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("watchlist", err)
	}
	return item, nil
}

func (ws *WatchlistService) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	items, err := cache.Fetch(ctx, ws.cache, watchlistKey, ws.repo.List)
	if err != nil {
		return nil, repoError("watchlist", err)
	}
	return items, nil
}

// Update replaces item. FinishedAt is stamped when the item becomes Done and
// cleared when it leaves Done. An explicit FinishedAt from the caller wins.
func (ws *WatchlistService) Update(ctx context.Context, item *entity.WatchlistItem) (*entity.WatchlistItem, error) {
	if item.Status == "" {
		item.Status = entity.WatchToWatch
	}
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	existing, err := ws.repo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, repoError("watchlist", err)
	}
	switch {
	case item.Status != entity.WatchDone:
		item.FinishedAt = nil
	case item.FinishedAt != nil:
	case existing.FinishedAt != nil:
		item.FinishedAt = existing.FinishedAt
	default:
		now := ws.clock.Time()
		item.FinishedAt = &now
	}
	item.CreatedAt = existing.CreatedAt
	if err = ws.repo.Update(ctx, item); err != nil {
		return nil, repoError("watchlist", err)
	}
	invalidate(ws.cache, watchlistKey)
	return item, nil
}

func (ws *WatchlistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ws.repo.Delete(ctx, id); err != nil {
		return repoError("watchlist", err)
	}
	invalidate(ws.cache, watchlistKey)
	return nil
}

func (ws *WatchlistService) Summary(ctx context.Context) (stats.WatchlistSummary, error) {
	items, err := ws.List(ctx)
	if err != nil {
		return stats.WatchlistSummary{}, err
	}
	return stats.SummarizeWatchlist(items, ws.clock.Today()), nil
}
