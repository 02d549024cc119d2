package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// UpcomingEvents returns events starting between today and today+days, both ends
// included, plus multi-day events still running today. Ordered by start date, all-day events
// first within a day, then by start time. limit <= 0 means no limit.
func UpcomingEvents(events []entity.CalendarEvent, today time.Time, days, limit int) ([]entity.CalendarEvent, error) {
	from := dateutil.FormatDate(today)
	to := dateutil.FormatDate(today.AddDate(0, 0, days))
	out := make([]entity.CalendarEvent, 0)
	for _, e := range events {
		if _, err := parseRecordDate("calendar event", e.ID, e.StartDate, today.Location()); err != nil {
			return nil, err
		}
		if e.EndDate != nil {
			if _, err := parseRecordDate("calendar event", e.ID, *e.EndDate, today.Location()); err != nil {
				return nil, err
			}
		}
		starts := e.StartDate >= from && e.StartDate <= to
		running := e.StartDate < from && e.EndDate != nil && *e.EndDate >= from
		if starts || running {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b entity.CalendarEvent) int {
		if c := strings.Compare(a.StartDate, b.StartDate); c != 0 {
			return c
		}
		if a.IsAllDay != b.IsAllDay {
			if a.IsAllDay {
				return -1
			}
			return 1
		}
		return strings.Compare(deref(a.StartTime), deref(b.StartTime))
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
