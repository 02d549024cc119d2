package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchlistRepoFake keeps items in memory.
type watchlistRepoFake struct {
	items map[uuid.UUID]entity.WatchlistItem
}

func newWatchlistRepoFake() *watchlistRepoFake {
	return &watchlistRepoFake{items: make(map[uuid.UUID]entity.WatchlistItem)}
}

func (f *watchlistRepoFake) Create(ctx context.Context, item *entity.WatchlistItem) error {
	item.ID = uuid.New()
	item.CreatedAt = testNow.Add(-72 * time.Hour)
	f.items[item.ID] = *item
	return nil
}

func (f *watchlistRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.WatchlistItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, errorvalues.ErrWatchlistItemNotFound
	}
	return &item, nil
}

func (f *watchlistRepoFake) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	out := make([]entity.WatchlistItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *watchlistRepoFake) Update(ctx context.Context, item *entity.WatchlistItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return errorvalues.ErrWatchlistItemNotFound
	}
	f.items[item.ID] = *item
	return nil
}

func (f *watchlistRepoFake) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return errorvalues.ErrWatchlistItemNotFound
	}
	delete(f.items, id)
	return nil
}

func TestWatchlistFinishedAt(t *testing.T) {
	t.Parallel()
	repo := newWatchlistRepoFake()
	serv := service.NewWatchlistService(repo, nil, testClock)
	ctx := context.Background()

	item, err := serv.Create(ctx, &entity.WatchlistItem{Title: "Dune", Type: "movie", Length: ptr(155)})
	require.NoError(t, err)
	assert.Equal(t, entity.WatchToWatch, item.Status)
	assert.Nil(t, item.FinishedAt)

	t.Run("finishing stamps now", func(t *testing.T) {
		upd := *item
		upd.Status = entity.WatchDone
		got, err := serv.Update(ctx, &upd)
		require.NoError(t, err)
		require.NotNil(t, got.FinishedAt)
		assert.Equal(t, testNow, *got.FinishedAt)
		assert.Equal(t, item.CreatedAt, got.CreatedAt)
	})

	t.Run("staying done keeps the stamp", func(t *testing.T) {
		upd := *item
		upd.Status = entity.WatchDone
		upd.Rating = ptr(9)
		got, err := serv.Update(ctx, &upd)
		require.NoError(t, err)
		assert.Equal(t, testNow, *got.FinishedAt)
	})

	t.Run("summary counts the finished item", func(t *testing.T) {
		s, err := serv.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Done)
		assert.Equal(t, 1, s.FinishedThisWeek)
		assert.Equal(t, 155, s.MinutesWatchedThisWeek)
		assert.Equal(t, 1, s.Streak)
	})

	t.Run("reopening clears the stamp", func(t *testing.T) {
		upd := *item
		upd.Status = entity.WatchInProgress
		upd.FinishedAt = &testNow
		got, err := serv.Update(ctx, &upd)
		require.NoError(t, err)
		assert.Nil(t, got.FinishedAt)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := serv.Update(ctx, &entity.WatchlistItem{ID: uuid.New(), Title: "x", Type: "show", Status: entity.WatchDone})
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := serv.Create(ctx, &entity.WatchlistItem{Title: "x", Type: "show", Status: "Abandoned"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
