package stats_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

// Wednesday
var today = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// day returns today shifted by n days as yyyy-MM-dd.
func day(n int) string {
	return dateutil.FormatDate(today.AddDate(0, 0, n))
}

func todo(title string, urgent, important bool, status entity.TodoStatus) entity.Todo {
	return entity.Todo{
		ID:          uuid.New(),
		Title:       title,
		Status:      status,
		Priority:    "medium",
		IsUrgent:    urgent,
		IsImportant: important,
		CreatedAt:   today.Add(-time.Hour),
	}
}

func titles(todos []entity.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.Title)
	}
	return out
}
