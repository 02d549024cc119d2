package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/lifedash/internal/api"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/config"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/spf13/cobra"
)

const (
	defaultAddress  = ":8080"
	defaultCacheTTL = 30 * time.Second
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	serv := api.New(services)
	return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", defaultAddress))
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		Options:  cfg.GetString("POSTGRES_OPTIONS"),
	}
}

// buildServices wires repositories, cache and services over one pool.
func buildServices(ctx context.Context, cfg *config.Config) (*api.ServicesList, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, errors.New("loading timezone error: " + err.Error())
	}
	pool, err := repository.Connect(ctx, pgConfig(cfg))
	if err != nil {
		return nil, err
	}
	repos := repository.NewRepositories(pool)
	qc := cache.New(cfg.GetDuration("CACHE_TTL", defaultCacheTTL))
	clock := dateutil.NewClock(loc)
	lookback := cfg.GetInt("STREAK_LOOKBACK_DAYS", service.DefaultStreakLookback)

	src := service.Sources{
		Todos:      service.NewTodosService(repos.Todos, qc, clock),
		Habits:     service.NewHabitsService(repos.Habits, repos.HabitEntries, qc, clock, lookback),
		Goals:      service.NewGoalsService(repos.Goals, qc),
		Health:     service.NewHealthService(repos.Health, qc),
		Timer:      service.NewTimerService(repos.Timer, qc),
		Calendar:   service.NewCalendarService(repos.Calendar, qc, clock),
		Meals:      service.NewMealsService(repos.Meals, qc),
		ScreenTime: service.NewScreenTimeService(repos.ScreenTime, qc),
		Watchlist:  service.NewWatchlistService(repos.Watchlist, qc, clock),
	}
	return &api.ServicesList{
		Clock:             clock,
		TodosService:      src.Todos,
		HabitsService:     src.Habits,
		GoalsService:      src.Goals,
		HealthService:     src.Health,
		TimerService:      src.Timer,
		CalendarService:   src.Calendar,
		MealsService:      src.Meals,
		ScreenTimeService: src.ScreenTime,
		WatchlistService:  src.Watchlist,
		AnalyticsService:  service.NewAnalyticsService(src, clock, lookback),
		ExportService:     service.NewExportService(src, clock),
	}, nil
}
