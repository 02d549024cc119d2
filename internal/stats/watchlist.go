package stats

import (
	"time"

	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type WatchlistSummary struct {
	Total                  int `json:"total"`
	ToWatch                int `json:"toWatch"`
	InProgress             int `json:"inProgress"`
	Done                   int `json:"done"`
	FinishedThisWeek       int `json:"finishedThisWeek"`
	MinutesWatchedThisWeek int `json:"minutesWatchedThisWeek"`
	Streak                 int `json:"streak"`
}

func SummarizeWatchlist(items []entity.WatchlistItem, today time.Time) WatchlistSummary {
	week := Window{Start: dateutil.StartOfWeek(today), End: dateutil.EndOfWeek(today)}
	var s WatchlistSummary
	for _, it := range items {
		s.Total++
		switch it.Status {
		case entity.WatchToWatch:
			s.ToWatch++
		case entity.WatchInProgress:
			s.InProgress++
		case entity.WatchDone:
			s.Done++
		}
		if it.FinishedAt != nil && week.Contains(it.FinishedAt.In(today.Location())) {
			s.FinishedThisWeek++
			if it.Length != nil {
				s.MinutesWatchedThisWeek += *it.Length
			}
		}
	}
	s.Streak = WatchlistStreak(items, today)
	return s
}
