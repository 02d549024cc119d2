package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBundle(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m, src := newSourceMocks(ctrl)
	serv := service.NewExportService(src, testClock)
	snapshot := testSnapshot()
	m.expectSnapshot(snapshot, repository.DateFilter{})

	b, err := serv.Bundle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testNow, b.ExportedAt)
	if diff := cmp.Diff(snapshot.Todos, b.Todos); diff != "" {
		t.Errorf("todos mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot.Meals, b.Meals); diff != "" {
		t.Errorf("meals mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, b.ScreenTimeLimits, 1)
}

func TestExportCSV(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	m, src := newSourceMocks(ctrl)
	serv := service.NewExportService(src, testClock)
	ctx := context.Background()

	t.Run("watchlist", func(t *testing.T) {
		id := uuid.New()
		m.watchlist.EXPECT().List(gomock.Any()).Return([]entity.WatchlistItem{
			{ID: id, Title: "Arrival", Type: "movie", Status: entity.WatchDone, FinishedAt: &testNow, Rating: ptr(9), CreatedAt: testNow},
		}, nil)
		records, err := serv.WatchlistCSV(ctx)
		require.NoError(t, err)
		want := [][]string{
			{"id", "title", "type", "status", "finishedAt", "length", "rating", "notes", "createdAt"},
			{id.String(), "Arrival", "movie", "Done", "2026-10-14T15:30:00Z", "", "9", "", "2026-10-14T15:30:00Z"},
		}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("screen time", func(t *testing.T) {
		filter := repository.DateFilter{From: ptr(day(-7))}
		entryID, appID := uuid.New(), uuid.New()
		m.screenTime.EXPECT().ListUsage(gomock.Any(), filter).Return([]entity.ScreenTimeEntry{
			{ID: entryID, AppID: appID, Date: day(-1), Minutes: 42},
		}, nil)
		records, err := serv.ScreenTimeCSV(ctx, filter)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"id", "appId", "date", "minutes"}, records[0])
		assert.Equal(t, []string{entryID.String(), appID.String(), day(-1), "42"}, records[1])
	})
}
