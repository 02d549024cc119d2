package entity

import (
	"time"

	"github.com/google/uuid"
)

// Calendar dates are yyyy-MM-dd strings, see dateutil.DateLayout.

type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
	TodoCancelled  TodoStatus = "cancelled"
)

type Todo struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title" validate:"required,max=200"`
	Description      string     `json:"description" validate:"max=2000"`
	CategoryID       *uuid.UUID `json:"categoryId,omitempty"`
	Status           TodoStatus `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	Priority         string     `json:"priority" validate:"required,oneof=low medium high urgent"`
	IsUrgent         bool       `json:"isUrgent"`
	IsImportant      bool       `json:"isImportant"`
	PriorityScore    *int       `json:"priorityScore,omitempty" validate:"omitempty,min=1,max=5"`
	DueDate          *string    `json:"dueDate,omitempty" validate:"omitempty,isodate"`
	EstimatedMinutes *int       `json:"estimatedMinutes,omitempty" validate:"omitempty,min=1"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Habit is a tracked "system". StreakDays is maintained by the server whenever entries change.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"max=60"`
	Frequency   string    `json:"frequency" validate:"required,oneof=daily weekly custom"`
	TargetValue *float64  `json:"targetValue,omitempty" validate:"omitempty,min=1"`
	Unit        string    `json:"unit" validate:"max=30"`
	IsArchived  bool      `json:"isArchived"`
	StreakDays  int       `json:"streakDays"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type HabitEntry struct {
	ID      uuid.UUID `json:"id"`
	HabitID uuid.UUID `json:"habitId" validate:"required"`
	Date    string    `json:"date" validate:"required,isodate"`
	Value   float64   `json:"value" validate:"min=0"`
	Notes   string    `json:"notes" validate:"max=1000"`
}

type Goal struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"max=60"`
	Deadline    *string   `json:"deadline,omitempty" validate:"omitempty,isodate"`
	Progress    int       `json:"progress" validate:"min=0,max=100"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HealthEntry holds one day of sleep, exercise and mood data. One entry per date.
type HealthEntry struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date" validate:"required,isodate"`
	SleepHours      *float64  `json:"sleepHours,omitempty" validate:"omitempty,min=0,max=24"`
	SleepQuality    *int      `json:"sleepQuality,omitempty" validate:"omitempty,min=1,max=10"`
	ExerciseMinutes *int      `json:"exerciseMinutes,omitempty" validate:"omitempty,min=0"`
	ExerciseType    string    `json:"exerciseType" validate:"max=60"`
	CaloriesBurned  *int      `json:"caloriesBurned,omitempty" validate:"omitempty,min=0"`
	Mood            *int      `json:"mood,omitempty" validate:"omitempty,min=1,max=10"`
	Notes           string    `json:"notes" validate:"max=2000"`
}

const (
	SessionPomodoro  = "pomodoro"
	SessionBreak     = "break"
	SessionLongBreak = "long-break"
)

type TimerSession struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date" validate:"required,isodate"`
	Type      string    `json:"type" validate:"required,oneof=pomodoro break long-break"`
	Duration  int       `json:"duration" validate:"min=1"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type CalendarEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	EventType   string    `json:"eventType" validate:"max=60"`
	StartDate   string    `json:"startDate" validate:"required,isodate"`
	StartTime   *string   `json:"startTime,omitempty" validate:"omitempty,clocktime"`
	EndDate     *string   `json:"endDate,omitempty" validate:"omitempty,isodate"`
	EndTime     *string   `json:"endTime,omitempty" validate:"omitempty,clocktime"`
	Location    string    `json:"location" validate:"max=200"`
	IsAllDay    bool      `json:"isAllDay"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"`
}

type WatchStatus string

const (
	WatchToWatch    WatchStatus = "To Watch"
	WatchInProgress WatchStatus = "In Progress"
	WatchDone       WatchStatus = "Done"
)

type WatchlistItem struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title" validate:"required,max=200"`
	Type       string      `json:"type" validate:"required,oneof=movie show podcast other"`
	Status     WatchStatus `json:"status" validate:"required,oneof='To Watch' 'In Progress' Done"`
	FinishedAt *time.Time  `json:"finishedAt,omitempty"`
	Length     *int        `json:"length,omitempty" validate:"omitempty,min=1"`
	Rating     *int        `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Notes      string      `json:"notes" validate:"max=2000"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ScreenTimeApp is an application tracked for usage. Excluded apps are private:
// they are hidden from usage rankings.
type ScreenTimeApp struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" validate:"required,max=120"`
	Category   string    `json:"category" validate:"max=60"`
	IsExcluded bool      `json:"isExcluded"`
}

type ScreenTimeEntry struct {
	ID      uuid.UUID `json:"id"`
	AppID   uuid.UUID `json:"appId" validate:"required"`
	Date    string    `json:"date" validate:"required,isodate"`
	Minutes int       `json:"minutes" validate:"min=0,max=1440"`
}

type ScreenTimeLimit struct {
	ID                uuid.UUID `json:"id"`
	AppID             uuid.UUID `json:"appId" validate:"required"`
	DailyLimitMinutes int       `json:"dailyLimitMinutes" validate:"min=1,max=1440"`
	IsActive          bool      `json:"isActive"`
}

type MealItem struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Quantity float64 `json:"quantity" validate:"min=0"`
	Unit     string  `json:"unit" validate:"max=30"`
	Calories float64 `json:"calories" validate:"min=0"`
	Protein  float64 `json:"protein" validate:"min=0"`
	Carbs    float64 `json:"carbs" validate:"min=0"`
	Fat      float64 `json:"fat" validate:"min=0"`
	Fiber    float64 `json:"fiber" validate:"min=0"`
}

// MealEntry caches the nutrition totals of its items.
type MealEntry struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date" validate:"required,isodate"`
	MealType      string     `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Items         []MealItem `json:"items" validate:"required,min=1,dive"`
	Notes         string     `json:"notes" validate:"max=1000"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalCarbs    float64    `json:"totalCarbs"`
	TotalFat      float64    `json:"totalFat"`
	TotalFiber    float64    `json:"totalFiber"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// RecalculateTotals refreshes the cached totals from Items.
func (m *MealEntry) RecalculateTotals() {
	m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat, m.TotalFiber = 0, 0, 0, 0, 0
	for _, it := range m.Items {
		m.TotalCalories += it.Calories
		m.TotalProtein += it.Protein
		m.TotalCarbs += it.Carbs
		m.TotalFat += it.Fat
		m.TotalFiber += it.Fiber
	}
}
