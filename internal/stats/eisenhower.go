package stats

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// Matrix is the Eisenhower partition of open todos.
type Matrix struct {
	UrgentImportant       []entity.Todo `json:"urgentImportant"`
	NotUrgentImportant    []entity.Todo `json:"notUrgentImportant"`
	UrgentNotImportant    []entity.Todo `json:"urgentNotImportant"`
	NotUrgentNotImportant []entity.Todo `json:"notUrgentNotImportant"`
}

// Classify puts every todo that is not completed into exactly one quadrant and
// sorts each quadrant with CompareTodos.
func Classify(todos []entity.Todo) (Matrix, error) {
	if err := checkDueDates(todos); err != nil {
		return Matrix{}, err
	}
	m := Matrix{
		UrgentImportant:       []entity.Todo{},
		NotUrgentImportant:    []entity.Todo{},
		UrgentNotImportant:    []entity.Todo{},
		NotUrgentNotImportant: []entity.Todo{},
	}
	for _, t := range todos {
		if t.Status == entity.TodoCompleted {
			continue
		}
		switch {
		case t.IsUrgent && t.IsImportant:
			m.UrgentImportant = append(m.UrgentImportant, t)
		case t.IsImportant:
			m.NotUrgentImportant = append(m.NotUrgentImportant, t)
		case t.IsUrgent:
			m.UrgentNotImportant = append(m.UrgentNotImportant, t)
		default:
			m.NotUrgentNotImportant = append(m.NotUrgentNotImportant, t)
		}
	}
	for _, bucket := range [][]entity.Todo{m.UrgentImportant, m.NotUrgentImportant, m.UrgentNotImportant, m.NotUrgentNotImportant} {
		slices.SortStableFunc(bucket, CompareTodos)
	}
	return m, nil
}

// CompareTodos orders by priority score (high first), then due date (earliest first,
// undated last), then creation time (newest first).
func CompareTodos(a, b entity.Todo) int {
	if c := cmp.Compare(PriorityScore(b), PriorityScore(a)); c != 0 {
		return c
	}
	if c := compareDueDates(a.DueDate, b.DueDate); c != 0 {
		return c
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func compareDueDates(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return strings.Compare(*a, *b)
	}
}

func compareEssential(a, b entity.Todo) int {
	aq, bq := a.IsUrgent && a.IsImportant, b.IsUrgent && b.IsImportant
	if aq != bq {
		if aq {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(PriorityScore(b), PriorityScore(a)); c != 0 {
		return c
	}
	return compareDueDates(a.DueDate, b.DueDate)
}

// EssentialTasks picks open todos that are urgent and important, overdue, or scored
// EssentialPriorityScore or more, and returns the top EssentialTasksLimit of them.
func EssentialTasks(todos []entity.Todo, today time.Time) ([]entity.Todo, error) {
	if err := checkDueDates(todos); err != nil {
		return nil, err
	}
	todayStr := dateutil.FormatDate(today)
	// one pass over the input, so a todo matching several rules is added once
	out := make([]entity.Todo, 0, EssentialTasksLimit)
	for _, t := range todos {
		if t.Status == entity.TodoCompleted {
			continue
		}
		if (t.IsUrgent && t.IsImportant) || isOverdue(t, todayStr) || PriorityScore(t) >= EssentialPriorityScore {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, compareEssential)
	if len(out) > EssentialTasksLimit {
		out = out[:EssentialTasksLimit]
	}
	return out, nil
}
