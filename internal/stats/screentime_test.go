package stats_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitWarnings(t *testing.T) {
	app := entity.ScreenTimeApp{ID: uuid.New(), Name: "social"}
	private := entity.ScreenTimeApp{ID: uuid.New(), Name: "private", IsExcluded: true}
	apps := []entity.ScreenTimeApp{app, private}
	// has usage and a limit but no app row
	removed := entity.ScreenTimeApp{ID: uuid.New(), Name: "removed"}
	limit := func(a entity.ScreenTimeApp, minutes int, active bool) entity.ScreenTimeLimit {
		return entity.ScreenTimeLimit{ID: uuid.New(), AppID: a.ID, DailyLimitMinutes: minutes, IsActive: active}
	}
	usage := func(a entity.ScreenTimeApp, minutes int) entity.ScreenTimeEntry {
		return entity.ScreenTimeEntry{ID: uuid.New(), AppID: a.ID, Date: day(0), Minutes: minutes}
	}

	testCases := []struct {
		Desc     string
		Entries  []entity.ScreenTimeEntry
		Limits   []entity.ScreenTimeLimit
		Days     int
		Warnings []stats.Warning
	}{
		{
			Desc:     "exactly 80 percent warns",
			Entries:  []entity.ScreenTimeEntry{usage(app, 80)},
			Limits:   []entity.ScreenTimeLimit{limit(app, 100, true)},
			Days:     1,
			Warnings: []stats.Warning{{AppID: app.ID, App: "social", Usage: 80, Limit: 100, Percentage: 80}},
		},
		{
			Desc:     "79 percent is quiet",
			Entries:  []entity.ScreenTimeEntry{usage(app, 79)},
			Limits:   []entity.ScreenTimeLimit{limit(app, 100, true)},
			Days:     1,
			Warnings: []stats.Warning{},
		},
		{
			Desc:     "over the limit",
			Entries:  []entity.ScreenTimeEntry{usage(app, 90), usage(app, 45)},
			Limits:   []entity.ScreenTimeLimit{limit(app, 120, true)},
			Days:     1,
			Warnings: []stats.Warning{{AppID: app.ID, App: "social", Usage: 135, Limit: 120, Percentage: 113}},
		},
		{
			Desc:     "inactive limit ignored",
			Entries:  []entity.ScreenTimeEntry{usage(app, 200)},
			Limits:   []entity.ScreenTimeLimit{limit(app, 100, false)},
			Days:     1,
			Warnings: []stats.Warning{},
		},
		{
			Desc:     "excluded app still warns",
			Entries:  []entity.ScreenTimeEntry{usage(private, 60)},
			Limits:   []entity.ScreenTimeLimit{limit(private, 60, true)},
			Days:     1,
			Warnings: []stats.Warning{{AppID: private.ID, App: "private", Usage: 60, Limit: 60, Percentage: 100}},
		},
		{
			Desc:     "week scales the daily limit",
			Entries:  []entity.ScreenTimeEntry{usage(app, 300)},
			Limits:   []entity.ScreenTimeLimit{limit(app, 60, true)},
			Days:     7,
			Warnings: []stats.Warning{},
		},
		{
			Desc:     "limit of an unknown app is skipped",
			Entries:  []entity.ScreenTimeEntry{usage(removed, 500), usage(app, 90)},
			Limits:   []entity.ScreenTimeLimit{limit(removed, 60, true), limit(app, 100, true)},
			Days:     1,
			Warnings: []stats.Warning{{AppID: app.ID, App: "social", Usage: 90, Limit: 100, Percentage: 90}},
		},
		{
			Desc:     "no usage",
			Entries:  nil,
			Limits:   []entity.ScreenTimeLimit{limit(app, 60, true)},
			Days:     1,
			Warnings: []stats.Warning{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Warnings, stats.LimitWarnings(tc.Entries, apps, tc.Limits, tc.Days))
		})
	}

	t.Run("sorted by percentage", func(t *testing.T) {
		res := stats.LimitWarnings(
			[]entity.ScreenTimeEntry{usage(app, 85), usage(private, 150)},
			apps,
			[]entity.ScreenTimeLimit{limit(app, 100, true), limit(private, 100, true)},
			1,
		)
		require.Len(t, res, 2)
		assert.Equal(t, "private", res[0].App)
		assert.Equal(t, "social", res[1].App)
	})
}

func TestTopApps(t *testing.T) {
	a := entity.ScreenTimeApp{ID: uuid.New(), Name: "browser", Category: "work"}
	b := entity.ScreenTimeApp{ID: uuid.New(), Name: "chat", Category: "social"}
	c := entity.ScreenTimeApp{ID: uuid.New(), Name: "diary", IsExcluded: true}
	d := entity.ScreenTimeApp{ID: uuid.New(), Name: "atlas"}
	entries := []entity.ScreenTimeEntry{
		{ID: uuid.New(), AppID: a.ID, Date: day(0), Minutes: 30},
		{ID: uuid.New(), AppID: a.ID, Date: day(-1), Minutes: 30},
		{ID: uuid.New(), AppID: b.ID, Date: day(0), Minutes: 90},
		{ID: uuid.New(), AppID: c.ID, Date: day(0), Minutes: 500},
		{ID: uuid.New(), AppID: d.ID, Date: day(0), Minutes: 60},
		{ID: uuid.New(), AppID: uuid.New(), Date: day(0), Minutes: 999},
	}
	apps := []entity.ScreenTimeApp{a, b, c, d}

	all := stats.TopApps(entries, apps, 0)
	assert.Equal(t, []stats.AppUsage{
		{AppID: b.ID, Name: "chat", Category: "social", Minutes: 90},
		{AppID: d.ID, Name: "atlas", Minutes: 60},
		{AppID: a.ID, Name: "browser", Category: "work", Minutes: 60},
	}, all)

	top := stats.TopApps(entries, apps, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "chat", top[0].Name)
}
