package errorvalues

import (
	"errors"
	"fmt"

	"github.com/limbo/lifedash/pkg/dateutil"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("already exists")
	// Malformed yyyy-MM-dd values, both in requests and in stored records
	ErrInvalidDate  = dateutil.ErrInvalidDate
	ErrUnknownRange = errors.New("unknown time range")
)

var (
	ErrTodoNotFound          = fmt.Errorf("todo %w", ErrNotFound)
	ErrHabitNotFound         = fmt.Errorf("habit %w", ErrNotFound)
	ErrEntryNotFound         = fmt.Errorf("habit entry %w", ErrNotFound)
	ErrGoalNotFound          = fmt.Errorf("goal %w", ErrNotFound)
	ErrHealthEntryNotFound   = fmt.Errorf("health entry %w", ErrNotFound)
	ErrSessionNotFound       = fmt.Errorf("timer session %w", ErrNotFound)
	ErrEventNotFound         = fmt.Errorf("calendar event %w", ErrNotFound)
	ErrMealNotFound          = fmt.Errorf("meal %w", ErrNotFound)
	ErrAppNotFound           = fmt.Errorf("screen-time app %w", ErrNotFound)
	ErrUsageNotFound         = fmt.Errorf("screen-time entry %w", ErrNotFound)
	ErrLimitNotFound         = fmt.Errorf("screen-time limit %w", ErrNotFound)
	ErrWatchlistItemNotFound = fmt.Errorf("watchlist item %w", ErrNotFound)
	ErrAppExists             = fmt.Errorf("screen-time app %w", ErrDuplicate)
)
