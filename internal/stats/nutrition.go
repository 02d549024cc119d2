package stats

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/pkg/entity"
)

type NutritionTotals struct {
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

func (t *NutritionTotals) add(m entity.MealEntry) {
	t.Meals++
	t.Calories += m.TotalCalories
	t.Protein += m.TotalProtein
	t.Carbs += m.TotalCarbs
	t.Fat += m.TotalFat
	t.Fiber += m.TotalFiber
}

func (t NutritionTotals) rounded() NutritionTotals {
	return NutritionTotals{
		Meals:    t.Meals,
		Calories: round2(t.Calories),
		Protein:  round2(t.Protein),
		Carbs:    round2(t.Carbs),
		Fat:      round2(t.Fat),
		Fiber:    round2(t.Fiber),
	}
}

func mealKey(m entity.MealEntry) (uuid.UUID, string) { return m.ID, m.Date }

// DailyNutrition sums the cached totals of the meals logged on day.
func DailyNutrition(meals []entity.MealEntry, day time.Time) (NutritionTotals, error) {
	inDay, err := filterByDate(meals, DayWindow(day), "meal", mealKey)
	if err != nil {
		return NutritionTotals{}, err
	}
	var t NutritionTotals
	for _, m := range inDay {
		t.add(m)
	}
	return t.rounded(), nil
}

// NutritionByMealType splits the totals of day by meal type.
func NutritionByMealType(meals []entity.MealEntry, day time.Time) (map[string]NutritionTotals, error) {
	inDay, err := filterByDate(meals, DayWindow(day), "meal", mealKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]NutritionTotals, 4)
	for _, m := range inDay {
		t := out[m.MealType]
		t.add(m)
		out[m.MealType] = t
	}
	for k, t := range out {
		out[k] = t.rounded()
	}
	return out, nil
}

type NutritionSummary struct {
	DaysLogged   int             `json:"daysLogged"`
	Totals       NutritionTotals `json:"totals"`
	DailyAverage NutritionTotals `json:"dailyAverage"`
}

// SummarizeNutrition totals the meals in w. The daily average is taken over the days
// that have at least one meal, so unlogged days are not read as fasting.
func SummarizeNutrition(meals []entity.MealEntry, w Window) (NutritionSummary, error) {
	inRange, err := filterByDate(meals, w, "meal", mealKey)
	if err != nil {
		return NutritionSummary{}, err
	}
	var total NutritionTotals
	days := make(map[string]struct{})
	for _, m := range inRange {
		total.add(m)
		days[m.Date] = struct{}{}
	}
	n := len(days)
	return NutritionSummary{
		DaysLogged: n,
		Totals:     total.rounded(),
		DailyAverage: NutritionTotals{
			Meals:    int(math.Round(average(float64(total.Meals), n))),
			Calories: average(total.Calories, n),
			Protein:  average(total.Protein, n),
			Carbs:    average(total.Carbs, n),
			Fat:      average(total.Fat, n),
			Fiber:    average(total.Fiber, n),
		},
	}, nil
}
