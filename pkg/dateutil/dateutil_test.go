package dateutil_test

import (
	"testing"
	"time"

	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	testCases := []struct {
		Desc  string
		Input string
		Error error
	}{
		{Desc: "valid", Input: "2026-10-14", Error: nil},
		{Desc: "wrong layout", Input: "14.10.2026", Error: dateutil.ErrInvalidDate},
		{Desc: "impossible day", Input: "2026-02-30", Error: dateutil.ErrInvalidDate},
		{Desc: "empty", Input: "", Error: dateutil.ErrInvalidDate},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			d, err := dateutil.ParseDate(tc.Input, loc)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.Input, dateutil.FormatDate(d))
				assert.Equal(t, loc, d.Location())
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2026-10-14 is a Wednesday
	wed := time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), dateutil.StartOfWeek(wed))
	assert.Equal(t, time.Date(2026, 10, 18, 23, 59, 59, 999999999, time.UTC), dateutil.EndOfWeek(wed))

	sun := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), dateutil.StartOfWeek(sun))

	mon := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, dateutil.StartOfWeek(mon))
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2028, 2, 17, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC), dateutil.StartOfMonth(d))
	assert.Equal(t, time.Date(2028, 2, 29, 23, 59, 59, 999999999, time.UTC), dateutil.EndOfMonth(d))
}

func TestDaysBetween(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// DST ends on 2026-10-25 in Berlin, that day has 25 hours
	from := time.Date(2026, 10, 24, 0, 0, 0, 0, loc)
	to := time.Date(2026, 10, 26, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, dateutil.DaysBetween(from, to))
	assert.Equal(t, -2, dateutil.DaysBetween(to, from))
	assert.Equal(t, 0, dateutil.DaysBetween(from, from.Add(23*time.Hour)))
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)
	b := time.Date(2026, 10, 14, 0, 5, 0, 0, time.UTC)
	assert.True(t, dateutil.IsSameDay(a, b))
	assert.False(t, dateutil.IsSameDay(a, b.AddDate(0, 0, 1)))
}

func TestClockToday(t *testing.T) {
	now := time.Date(2026, 10, 14, 22, 30, 0, 0, time.UTC)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := dateutil.Clock{Now: func() time.Time { return now }, Location: tokyo}
	// 22:30 UTC is already the next morning in Tokyo
	assert.Equal(t, "2026-10-15", dateutil.FormatDate(clock.Today()))
	assert.Equal(t, "2026-10-14", dateutil.FormatDate(dateutil.FixedClock(now).Today()))
}
