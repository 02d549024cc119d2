package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/limbo/lifedash/internal/cache"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/dateutil"
)

// Cache keys, one per collection endpoint. Mutations invalidate by these prefixes.
const (
	todosKey        = "/todos"
	habitsKey       = "/habits"
	habitEntriesKey = "/habit-entries"
	goalsKey        = "/goals"
	healthKey       = "/health-entries"
	timerKey        = "/timer-sessions"
	calendarKey     = "/calendar-events"
	mealsKey        = "/meals"
	appsKey         = "/screen-time/apps"
	usageKey        = "/screen-time/entries"
	limitsKey       = "/screen-time/limits"
	watchlistKey    = "/watchlist"
)

// Period is the span screen-time usage is compared over.
type Period string

const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodDay, nil
	case PeriodDay, PeriodWeek:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown period %q", errorvalues.ErrValidation, s)
}

// window returns the calendar dates the period covers around day, and its length in days.
func (p Period) window(day time.Time) (repository.DateFilter, int) {
	if p == PeriodWeek {
		from := dateutil.FormatDate(dateutil.StartOfWeek(day))
		to := dateutil.FormatDate(dateutil.EndOfWeek(day))
		return repository.DateFilter{From: &from, To: &to}, 7
	}
	d := dateutil.FormatDate(day)
	return repository.DateFilter{From: &d, To: &d}, 1
}

// repoError passes domain errors through and hides the rest behind a generic message.
func repoError(name string, err error) error {
	if errors.Is(err, errorvalues.ErrNotFound) || errors.Is(err, errorvalues.ErrDuplicate) {
		return err
	}
	return errors.New(name + " repository error: " + err.Error())
}

func filterKey(base string, f repository.DateFilter) string {
	key := base
	sep := "?"
	if f.From != nil {
		key += sep + "from=" + *f.From
		sep = "&"
	}
	if f.To != nil {
		key += sep + "to=" + *f.To
	}
	return key
}

// ValidateFilter rejects bounds that are not yyyy-MM-dd dates.
func ValidateFilter(f repository.DateFilter) error {
	for _, bound := range []*string{f.From, f.To} {
		if bound == nil {
			continue
		}
		if _, err := dateutil.ParseDate(*bound, time.UTC); err != nil {
			return err
		}
	}
	if f.From != nil && f.To != nil && *f.From > *f.To {
		return fmt.Errorf("%w: from %s is after to %s", errorvalues.ErrValidation, *f.From, *f.To)
	}
	return nil
}

func invalidate(qc *cache.QueryCache, prefixes ...string) {
	if qc != nil {
		qc.Invalidate(prefixes...)
	}
}
