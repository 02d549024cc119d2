package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/repository/mocks"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHabitEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockHabitEntriesRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo, entriesRepo, nil, testClock, 0)

	habitID := uuid.New()
	lookback := repository.DateFilter{From: ptr(day(-service.DefaultStreakLookback))}
	twoDays := []entity.HabitEntry{
		{ID: uuid.New(), HabitID: habitID, Date: day(0), Value: 1},
		{ID: uuid.New(), HabitID: habitID, Date: day(-1), Value: 1},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Entry        entity.HabitEntry
		MockPrepFunc func()
	}{
		{
			Desc:  "success refreshes streak",
			Entry: entity.HabitEntry{HabitID: habitID, Date: day(0), Value: 1},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, Name: "read", Frequency: "daily"}, nil)
				entriesRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				entriesRepo.EXPECT().ListByHabit(gomock.Any(), habitID, lookback).Return(twoDays, nil)
				habitsRepo.EXPECT().SetStreak(gomock.Any(), habitID, 2).Return(nil)
			},
		},
		{
			Desc:  "unchanged streak is not written",
			Entry: entity.HabitEntry{HabitID: habitID, Date: day(0), Value: 1},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, Name: "read", Frequency: "daily", StreakDays: 2}, nil)
				entriesRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				entriesRepo.EXPECT().ListByHabit(gomock.Any(), habitID, lookback).Return(twoDays, nil)
			},
		},
		{
			Desc:  "error habit not found",
			Error: errorvalues.ErrHabitNotFound,
			Entry: entity.HabitEntry{HabitID: habitID, Date: day(0), Value: 1},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "error malformed date",
			Error:        errorvalues.ErrValidation,
			Entry:        entity.HabitEntry{HabitID: habitID, Date: "2026-13-01", Value: 1},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error negative value",
			Error:        errorvalues.ErrValidation,
			Entry:        entity.HabitEntry{HabitID: habitID, Date: day(0), Value: -1},
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.LogEntry(ctx, &tc.Entry)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestDeleteHabitEntryResetsStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockHabitEntriesRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo, entriesRepo, nil, testClock, 30)

	habitID := uuid.New()
	entryID := uuid.New()
	gomock.InOrder(
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.HabitEntry{ID: entryID, HabitID: habitID, Date: day(0), Value: 1}, nil),
		entriesRepo.EXPECT().Delete(gomock.Any(), entryID).Return(nil),
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, Name: "run", Frequency: "daily", StreakDays: 1}, nil),
		entriesRepo.EXPECT().ListByHabit(gomock.Any(), habitID, repository.DateFilter{From: ptr(day(-30))}).Return([]entity.HabitEntry{}, nil),
		habitsRepo.EXPECT().SetStreak(gomock.Any(), habitID, 0).Return(nil),
	)
	require.NoError(t, serv.DeleteEntry(context.Background(), entryID))

	t.Run("entry not found", func(t *testing.T) {
		missing := uuid.New()
		entriesRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, errorvalues.ErrEntryNotFound)
		err := serv.DeleteEntry(context.Background(), missing)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
}

func TestHabitDayStatsAndStreaks(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	entriesRepo := mocks.NewMockHabitEntriesRepositoryI(ctrl)
	serv := service.NewHabitsService(habitsRepo, entriesRepo, nil, testClock, 0)
	ctx := context.Background()

	water := entity.Habit{ID: uuid.New(), Name: "water", Frequency: "daily", TargetValue: ptr(8.0)}
	stretch := entity.Habit{ID: uuid.New(), Name: "stretch", Frequency: "daily"}
	archived := entity.Habit{ID: uuid.New(), Name: "old", Frequency: "daily", IsArchived: true}
	habits := []entity.Habit{water, stretch, archived}
	entries := []entity.HabitEntry{
		{ID: uuid.New(), HabitID: water.ID, Date: day(0), Value: 5},
		{ID: uuid.New(), HabitID: water.ID, Date: day(0), Value: 3},
		{ID: uuid.New(), HabitID: stretch.ID, Date: day(-1), Value: 1},
		{ID: uuid.New(), HabitID: archived.ID, Date: day(0), Value: 1},
	}

	t.Run("day stats", func(t *testing.T) {
		today := day(0)
		habitsRepo.EXPECT().List(gomock.Any()).Return(habits, nil)
		entriesRepo.EXPECT().List(gomock.Any(), repository.DateFilter{From: &today, To: &today}).Return(entries, nil)
		got, err := serv.DayStats(ctx, testToday)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ActiveHabits)
		assert.Equal(t, 1, got.CompletedHabits)
		assert.Equal(t, 50, got.CompletionRate)
	})

	t.Run("streaks", func(t *testing.T) {
		habitsRepo.EXPECT().List(gomock.Any()).Return(habits, nil)
		entriesRepo.EXPECT().List(gomock.Any(), repository.DateFilter{From: ptr(day(-service.DefaultStreakLookback))}).Return(entries, nil)
		got, err := serv.Streaks(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "water", got[0].Name)
		assert.Equal(t, 1, got[0].Streak)
		assert.Equal(t, 1, got[1].Streak)
	})
}
