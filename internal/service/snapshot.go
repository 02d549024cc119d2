package service

import (
	"context"
	"log"

	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"golang.org/x/sync/errgroup"
)

// Sources are the services a snapshot is read through, so every read shares their cache.
type Sources struct {
	Todos      TodosServiceI
	Habits     HabitsServiceI
	Goals      GoalsServiceI
	Health     HealthServiceI
	Timer      TimerServiceI
	Calendar   CalendarServiceI
	Meals      MealsServiceI
	ScreenTime ScreenTimeServiceI
	Watchlist  WatchlistServiceI
}

func (src Sources) mustBeComplete() {
	if src.Todos == nil || src.Habits == nil || src.Goals == nil || src.Health == nil || src.Timer == nil ||
		src.Calendar == nil || src.Meals == nil || src.ScreenTime == nil || src.Watchlist == nil {
		log.Fatal("provided incomplete service sources")
	}
}

// Load reads every collection in parallel. Dated collections are limited by filter,
// the rest are read whole. The first failure cancels the other loads.
func (src Sources) Load(ctx context.Context, filter repository.DateFilter) (stats.Snapshot, error) {
	var s stats.Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Todos, err = src.Todos.List(ctx)
		return
	})
	g.Go(func() (err error) {
		s.Habits, err = src.Habits.ListHabits(ctx)
		return
	})
	g.Go(func() (err error) {
		s.HabitEntries, err = src.Habits.ListEntries(ctx, filter)
		return
	})
	g.Go(func() (err error) {
		s.Goals, err = src.Goals.List(ctx)
		return
	})
	g.Go(func() (err error) {
		s.HealthEntries, err = src.Health.List(ctx, filter)
		return
	})
	g.Go(func() (err error) {
		s.TimerSessions, err = src.Timer.List(ctx, filter)
		return
	})
	g.Go(func() (err error) {
		s.CalendarEvents, err = src.Calendar.List(ctx, repository.DateFilter{})
		return
	})
	g.Go(func() (err error) {
		s.Meals, err = src.Meals.List(ctx, filter)
		return
	})
	g.Go(func() (err error) {
		s.ScreenTimeApps, err = src.ScreenTime.ListApps(ctx)
		return
	})
	g.Go(func() (err error) {
		s.ScreenTimeEntries, err = src.ScreenTime.ListUsage(ctx, filter)
		return
	})
	g.Go(func() (err error) {
		s.ScreenTimeLimits, err = src.ScreenTime.ListLimits(ctx)
		return
	})
	g.Go(func() (err error) {
		s.Watchlist, err = src.Watchlist.List(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return stats.Snapshot{}, err
	}
	return s, nil
}
