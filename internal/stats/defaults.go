// Package stats derives dashboard and analytics figures from snapshots of stored records.
//
// Every function here is pure: it takes already loaded collections plus a reference day
// and recomputes its result from scratch. Nothing is persisted or cached at this level.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

const (
	// Used when a habit has no target value.
	DefaultTargetValue = 1.0
	// Used when a todo has no priority score.
	DefaultPriorityScore = 3
	// Todos scoring at least this are always essential.
	EssentialPriorityScore = 4
	EssentialTasksLimit    = 8
	// Usage at or above this share of a limit raises a warning.
	WarningThresholdPercent = 80
	UpcomingEventsDays      = 7
	UpcomingEventsLimit     = 5
)

func TargetValue(h entity.Habit) float64 {
	if h.TargetValue == nil {
		return DefaultTargetValue
	}
	return *h.TargetValue
}

func PriorityScore(t entity.Todo) int {
	if t.PriorityScore == nil {
		return DefaultPriorityScore
	}
	return *t.PriorityScore
}

// Rate returns round(100 * completed / total), or 0 for an empty total.
func Rate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// average is the mean rounded to two decimals, 0 when there is nothing to average.
func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func parseRecordDate(kind string, id uuid.UUID, value string, loc *time.Location) (time.Time, error) {
	d, err := dateutil.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %s: %w", kind, id, err)
	}
	return d, nil
}
