package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/entity"
)

type AppUsage struct {
	AppID    uuid.UUID `json:"appId"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Minutes  int       `json:"minutes"`
}

type Warning struct {
	AppID      uuid.UUID `json:"appId"`
	App        string    `json:"app"`
	Usage      int       `json:"usage"`
	Limit      int       `json:"limit"`
	Percentage int       `json:"percentage"`
}

// UsageByApp sums minutes per app. Callers filter entries to the period of interest first.
func UsageByApp(entries []entity.ScreenTimeEntry) map[uuid.UUID]int {
	usage := make(map[uuid.UUID]int)
	for _, e := range entries {
		usage[e.AppID] += e.Minutes
	}
	return usage
}

func appsByID(apps []entity.ScreenTimeApp) map[uuid.UUID]entity.ScreenTimeApp {
	byID := make(map[uuid.UUID]entity.ScreenTimeApp, len(apps))
	for _, a := range apps {
		byID[a.ID] = a
	}
	return byID
}

// TopApps ranks apps by usage, most used first. Excluded apps and usage of unknown
// apps are left out. n <= 0 returns the full ranking.
func TopApps(entries []entity.ScreenTimeEntry, apps []entity.ScreenTimeApp, n int) []AppUsage {
	byID := appsByID(apps)
	out := make([]AppUsage, 0, len(byID))
	for id, minutes := range UsageByApp(entries) {
		app, ok := byID[id]
		if !ok || app.IsExcluded {
			continue
		}
		out = append(out, AppUsage{AppID: id, Name: app.Name, Category: app.Category, Minutes: minutes})
	}
	slices.SortFunc(out, func(a, b AppUsage) int {
		if c := cmp.Compare(b.Minutes, a.Minutes); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// LimitWarnings compares usage over `days` days against each active daily limit scaled
// to that period. A warning is raised once usage reaches WarningThresholdPercent of the
// limit. Excluded apps are evaluated like any other app: a limit is an explicit request
// to be warned.
func LimitWarnings(entries []entity.ScreenTimeEntry, apps []entity.ScreenTimeApp, limits []entity.ScreenTimeLimit, days int) []Warning {
	if days < 1 {
		days = 1
	}
	byID := appsByID(apps)
	usage := UsageByApp(entries)
	out := make([]Warning, 0)
	for _, l := range limits {
		if !l.IsActive || l.DailyLimitMinutes <= 0 {
			continue
		}
		app, ok := byID[l.AppID]
		if !ok {
			continue
		}
		limit := l.DailyLimitMinutes * days
		used := usage[l.AppID]
		if used*100 < limit*WarningThresholdPercent {
			continue
		}
		out = append(out, Warning{
			AppID:      l.AppID,
			App:        app.Name,
			Usage:      used,
			Limit:      limit,
			Percentage: int(math.Round(100 * float64(used) / float64(limit))),
		})
	}
	slices.SortFunc(out, func(a, b Warning) int {
		if c := cmp.Compare(b.Percentage, a.Percentage); c != 0 {
			return c
		}
		return cmp.Compare(a.App, b.App)
	})
	return out
}
