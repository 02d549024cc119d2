package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// DefaultStreakLookback bounds how far back entries are read when a streak is recounted.
const DefaultStreakLookback = 365

type HabitsService struct {
	repo     repository.HabitsRepositoryI
	entries  repository.HabitEntriesRepositoryI
	cache    *cache.QueryCache
	clock    dateutil.Clock
	lookback int
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.HabitEntriesRepositoryI,
	qc *cache.QueryCache, clock dateutil.Clock, lookbackDays int) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	if entriesRepo == nil {
		log.Fatal("provided nil habitEntriesRepo")
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultStreakLookback
	}
	return &HabitsService{
		repo:     habitsRepo,
		entries:  entriesRepo,
		cache:    qc,
		clock:    clock,
		lookback: lookbackDays,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}
	if err := validateStruct(habit); err != nil {
		return nil, err
	}
	if err := hs.repo.Create(ctx, habit); err != nil {
		return nil, repoError("habits", err)
	}
	invalidate(hs.cache, habitsKey)
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("habits", err)
	}
	return habit, nil
}

func (hs *HabitsService) ListHabits(ctx context.Context) ([]entity.Habit, error) {
	habits, err := cache.Fetch(ctx, hs.cache, habitsKey, hs.repo.List)
	if err != nil {
		return nil, repoError("habits", err)
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}
	if err := validateStruct(habit); err != nil {
		return nil, err
	}
	if err := hs.repo.Update(ctx, habit); err != nil {
		return nil, repoError("habits", err)
	}
	invalidate(hs.cache, habitsKey)
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	if err := hs.repo.Delete(ctx, id); err != nil {
		return repoError("habits", err)
	}
	invalidate(hs.cache, habitsKey, habitEntriesKey)
	return nil
}

func (hs *HabitsService) LogEntry(ctx context.Context, entry *entity.HabitEntry) (*entity.HabitEntry, error) {
	if err := validateStruct(entry); err != nil {
		return nil, err
	}
	habit, err := hs.repo.GetByID(ctx, entry.HabitID)
	if err != nil {
		return nil, repoError("habits", err)
	}
	if err = hs.entries.Upsert(ctx, entry); err != nil {
		return nil, repoError("habit entries", err)
	}
	invalidate(hs.cache, habitEntriesKey)
	if err = hs.refreshStreak(ctx, habit); err != nil {
		return nil, err
	}
	return entry, nil
}

func (hs *HabitsService) ListEntries(ctx context.Context, filter repository.DateFilter) ([]entity.HabitEntry, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	entries, err := cache.Fetch(ctx, hs.cache, filterKey(habitEntriesKey, filter), func(ctx context.Context) ([]entity.HabitEntry, error) {
		return hs.entries.List(ctx, filter)
	})
	if err != nil {
		return nil, repoError("habit entries", err)
	}
	return entries, nil
}

func (hs *HabitsService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := hs.entries.GetByID(ctx, id)
	if err != nil {
		return repoError("habit entries", err)
	}
	if err = hs.entries.Delete(ctx, id); err != nil {
		return repoError("habit entries", err)
	}
	invalidate(hs.cache, habitEntriesKey)
	habit, err := hs.repo.GetByID(ctx, entry.HabitID)
	if err != nil {
		return repoError("habits", err)
	}
	return hs.refreshStreak(ctx, habit)
}

// refreshStreak recounts the habit's streak from its recent entries and stores it.
func (hs *HabitsService) refreshStreak(ctx context.Context, habit *entity.Habit) error {
	today := hs.clock.Today()
	from := dateutil.FormatDate(dateutil.AddDays(today, -hs.lookback))
	entries, err := hs.entries.ListByHabit(ctx, habit.ID, repository.DateFilter{From: &from})
	if err != nil {
		return repoError("habit entries", err)
	}
	streak, err := stats.HabitStreak(*habit, entries, today)
	if err != nil {
		return errors.New("counting habit streak error: " + err.Error())
	}
	if streak == habit.StreakDays {
		return nil
	}
	if err = hs.repo.SetStreak(ctx, habit.ID, streak); err != nil {
		return repoError("habits", err)
	}
	habit.StreakDays = streak
	invalidate(hs.cache, habitsKey)
	return nil
}

// recentEntries loads the entries the streak and day views need.
func (hs *HabitsService) recentEntries(ctx context.Context) ([]entity.HabitEntry, error) {
	from := dateutil.FormatDate(dateutil.AddDays(hs.clock.Today(), -hs.lookback))
	return hs.ListEntries(ctx, repository.DateFilter{From: &from})
}

func (hs *HabitsService) DayStats(ctx context.Context, day time.Time) (stats.HabitDayStats, error) {
	habits, err := hs.ListHabits(ctx)
	if err != nil {
		return stats.HabitDayStats{}, err
	}
	d := dateutil.FormatDate(day)
	entries, err := hs.ListEntries(ctx, repository.DateFilter{From: &d, To: &d})
	if err != nil {
		return stats.HabitDayStats{}, err
	}
	res, err := stats.HabitCompletion(habits, entries, day)
	if err != nil {
		return stats.HabitDayStats{}, errors.New("habit completion error: " + err.Error())
	}
	return res, nil
}

func (hs *HabitsService) Streaks(ctx context.Context) ([]stats.HabitStreakInfo, error) {
	habits, err := hs.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := hs.recentEntries(ctx)
	if err != nil {
		return nil, err
	}
	res, err := stats.HabitStreaks(habits, entries, hs.clock.Today())
	if err != nil {
		return nil, errors.New("habit streaks error: " + err.Error())
	}
	return res, nil
}
