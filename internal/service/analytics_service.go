package service

import (
	"context"
	"errors"
	"time"

	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
)

type AnalyticsService struct {
	src      Sources
	clock    dateutil.Clock
	lookback int
}

func NewAnalyticsService(src Sources, clock dateutil.Clock, lookbackDays int) *AnalyticsService {
	src.mustBeComplete()
	if lookbackDays <= 0 {
		lookbackDays = DefaultStreakLookback
	}
	return &AnalyticsService{
		src:      src,
		clock:    clock,
		lookback: lookbackDays,
	}
}

// snapshotSince loads every collection, dated ones from `from` on.
func (as *AnalyticsService) snapshotSince(ctx context.Context, from time.Time) (stats.Snapshot, error) {
	f := dateutil.FormatDate(from)
	return as.src.Load(ctx, repository.DateFilter{From: &f})
}

// Dashboard reads back as far as streaks need.
func (as *AnalyticsService) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	today := as.clock.Today()
	s, err := as.snapshotSince(ctx, dateutil.AddDays(today, -as.lookback))
	if err != nil {
		return nil, err
	}
	d, err := stats.BuildDashboard(s, today)
	if err != nil {
		return nil, errors.New("building dashboard error: " + err.Error())
	}
	return &d, nil
}

func (as *AnalyticsService) Analytics(ctx context.Context, r stats.Range) (*stats.Analytics, error) {
	today := as.clock.Today()
	w, err := r.Window(today)
	if err != nil {
		return nil, err
	}
	s, err := as.snapshotSince(ctx, w.Start)
	if err != nil {
		return nil, err
	}
	a, err := stats.Rollup(s, r, today)
	if err != nil {
		return nil, errors.New("rolling up analytics error: " + err.Error())
	}
	return &a, nil
}
