package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/limbo/lifedash/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestFetch(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	qc := cache.New(30 * time.Second).WithClock(clock.Now)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	res, err := cache.Fetch(ctx, qc, "/todos", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res)

	_, err = cache.Fetch(ctx, qc, "/todos", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	clock.Advance(31 * time.Second)
	_, err = cache.Fetch(ctx, qc, "/todos", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchErrorNotCached(t *testing.T) {
	qc := cache.New(time.Minute)
	ctx := context.Background()
	calls := 0
	_, err := cache.Fetch(ctx, qc, "/goals", func(context.Context) (int, error) {
		calls++
		return 0, errors.New("db down")
	})
	assert.Error(t, err)
	v, err := cache.Fetch(ctx, qc, "/goals", func(context.Context) (int, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	qc := cache.New(time.Minute)
	qc.Set("/todos", 1)
	qc.Set("/habits", 2)
	qc.Set("/habit-entries?from=2026-01-01", 3)
	qc.Set("/screen-time/apps", 4)
	qc.Set("/screen-time/entries?from=2026-10-01", 5)

	qc.Invalidate("/habit")
	_, ok := qc.Get("/habits")
	assert.False(t, ok)
	_, ok = qc.Get("/habit-entries?from=2026-01-01")
	assert.False(t, ok)
	_, ok = qc.Get("/todos")
	assert.True(t, ok)

	qc.Invalidate("/screen-time/entries", "/todos")
	assert.Equal(t, 1, qc.Len())
	_, ok = qc.Get("/screen-time/apps")
	assert.True(t, ok)
}

func TestDisabledCache(t *testing.T) {
	qc := cache.New(0)
	calls := 0
	for range 3 {
		_, err := cache.Fetch(context.Background(), qc, "/todos", func(context.Context) (int, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, qc.Len())
}

func TestNilCacheLoads(t *testing.T) {
	v, err := cache.Fetch(context.Background(), nil, "/todos", func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestConcurrentMissesShareLoad(t *testing.T) {
	qc := cache.New(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.Fetch(context.Background(), qc, "/dashboard-source", load)
			if err == nil {
				results[i] = v
			}
		}()
	}
	// let the goroutines pile up on the in-flight load
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestInvalidationDuringLoadDropsResult(t *testing.T) {
	qc := cache.New(time.Minute)
	_, err := cache.Fetch(context.Background(), qc, "/todos", func(context.Context) (int, error) {
		qc.Invalidate("/todos")
		return 1, nil
	})
	require.NoError(t, err)
	_, ok := qc.Get("/todos")
	assert.False(t, ok)
}

func TestFetchHonorsContext(t *testing.T) {
	qc := cache.New(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = cache.Fetch(context.Background(), qc, "/slow", func(context.Context) (int, error) {
			<-release
			return 1, nil
		})
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	_, err := cache.Fetch(ctx, qc, "/slow", func(context.Context) (int, error) { return 2, nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(release)
	<-done
}

func TestSharedLoadSurvivesFirstCallerCancel(t *testing.T) {
	qc := cache.New(time.Minute)
	first, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	var (
		loadErr     atomic.Value
		startedOnce sync.Once
	)
	load := func(ctx context.Context) (int, error) {
		startedOnce.Do(func() { close(started) })
		select {
		case <-release:
		case <-ctx.Done():
			loadErr.Store(ctx.Err())
			return 0, ctx.Err()
		}
		return 5, nil
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := cache.Fetch(first, qc, "/todos", load)
		firstDone <- err
	}()
	<-started

	secondDone := make(chan struct{})
	var (
		v   int
		err error
	)
	go func() {
		defer close(secondDone)
		v, err = cache.Fetch(context.Background(), qc, "/todos", load)
	}()
	// let the second caller join the in-flight load
	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(release)
	<-secondDone
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Nil(t, loadErr.Load())

	cached, ok := qc.Get("/todos")
	require.True(t, ok)
	assert.Equal(t, 5, cached)
}
