package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/dateutil"
)

const (
	mutationTimeout = 10 * time.Second
	readTimeout     = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                *chi.Mux
	clock             dateutil.Clock
	todosService      service.TodosServiceI
	habitsService     service.HabitsServiceI
	goalsService      service.GoalsServiceI
	healthService     service.HealthServiceI
	timerService      service.TimerServiceI
	calendarService   service.CalendarServiceI
	mealsService      service.MealsServiceI
	screenTimeService service.ScreenTimeServiceI
	watchlistService  service.WatchlistServiceI
	analyticsService  service.AnalyticsServiceI
	exportService     service.ExportServiceI
}

type ServicesList struct {
	Clock             dateutil.Clock
	TodosService      service.TodosServiceI
	HabitsService     service.HabitsServiceI
	GoalsService      service.GoalsServiceI
	HealthService     service.HealthServiceI
	TimerService      service.TimerServiceI
	CalendarService   service.CalendarServiceI
	MealsService      service.MealsServiceI
	ScreenTimeService service.ScreenTimeServiceI
	WatchlistService  service.WatchlistServiceI
	AnalyticsService  service.AnalyticsServiceI
	ExportService     service.ExportServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		clock:             servicesOptions.Clock,
		todosService:      servicesOptions.TodosService,
		habitsService:     servicesOptions.HabitsService,
		goalsService:      servicesOptions.GoalsService,
		healthService:     servicesOptions.HealthService,
		timerService:      servicesOptions.TimerService,
		calendarService:   servicesOptions.CalendarService,
		mealsService:      servicesOptions.MealsService,
		screenTimeService: servicesOptions.ScreenTimeService,
		watchlistService:  servicesOptions.WatchlistService,
		analyticsService:  servicesOptions.AnalyticsService,
		exportService:     servicesOptions.ExportService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Liveness)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.ListTodos)
			r.Post("/", s.CreateTodo)
			r.Get("/matrix", s.TodosMatrix)
			r.Get("/essential", s.EssentialTodos)
			r.Get("/{id}", s.GetTodo)
			r.Put("/{id}", s.UpdateTodo)
			r.Delete("/{id}", s.DeleteTodo)
		})
		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.ListHabits)
			r.Post("/", s.CreateHabit)
			r.Get("/stats", s.HabitDayStats)
			r.Get("/streaks", s.HabitStreaks)
			r.Get("/{id}", s.GetHabit)
			r.Put("/{id}", s.UpdateHabit)
			r.Delete("/{id}", s.DeleteHabit)
		})
		r.Route("/habit-entries", func(r chi.Router) {
			r.Get("/", s.ListHabitEntries)
			r.Post("/", s.LogHabitEntry)
			r.Delete("/{id}", s.DeleteHabitEntry)
		})
		r.Route("/goals", func(r chi.Router) {
			r.Get("/", s.ListGoals)
			r.Post("/", s.CreateGoal)
			r.Get("/{id}", s.GetGoal)
			r.Put("/{id}", s.UpdateGoal)
			r.Delete("/{id}", s.DeleteGoal)
		})
		r.Route("/health-entries", func(r chi.Router) {
			r.Get("/", s.ListHealthEntries)
			r.Post("/", s.SaveHealthEntry)
			r.Get("/by-date/{date}", s.GetHealthEntry)
			r.Delete("/{id}", s.DeleteHealthEntry)
		})
		r.Route("/timer-sessions", func(r chi.Router) {
			r.Get("/", s.ListTimerSessions)
			r.Post("/", s.CreateTimerSession)
			r.Delete("/{id}", s.DeleteTimerSession)
		})
		r.Route("/calendar-events", func(r chi.Router) {
			r.Get("/", s.ListCalendarEvents)
			r.Post("/", s.CreateCalendarEvent)
			r.Get("/upcoming", s.UpcomingEvents)
			r.Get("/{id}", s.GetCalendarEvent)
			r.Put("/{id}", s.UpdateCalendarEvent)
			r.Delete("/{id}", s.DeleteCalendarEvent)
		})
		r.Route("/meals", func(r chi.Router) {
			r.Get("/", s.ListMeals)
			r.Post("/", s.CreateMeal)
			r.Get("/summary", s.MealsDaySummary)
			r.Get("/{id}", s.GetMeal)
			r.Put("/{id}", s.UpdateMeal)
			r.Delete("/{id}", s.DeleteMeal)
		})
		r.Route("/screen-time", func(r chi.Router) {
			r.Get("/apps", s.ListScreenTimeApps)
			r.Post("/apps", s.CreateScreenTimeApp)
			r.Put("/apps/{id}", s.UpdateScreenTimeApp)
			r.Delete("/apps/{id}", s.DeleteScreenTimeApp)
			r.Get("/entries", s.ListScreenTimeUsage)
			r.Post("/entries", s.LogScreenTimeUsage)
			r.Delete("/entries/{id}", s.DeleteScreenTimeUsage)
			r.Get("/limits", s.ListScreenTimeLimits)
			r.Post("/limits", s.SetScreenTimeLimit)
			r.Delete("/limits/{id}", s.DeleteScreenTimeLimit)
			r.Get("/warnings", s.ScreenTimeWarnings)
			r.Get("/top", s.TopScreenTimeApps)
		})
		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", s.ListWatchlist)
			r.Post("/", s.CreateWatchlistItem)
			r.Get("/summary", s.WatchlistSummary)
			r.Get("/{id}", s.GetWatchlistItem)
			r.Put("/{id}", s.UpdateWatchlistItem)
			r.Delete("/{id}", s.DeleteWatchlistItem)
		})
		r.Get("/dashboard", s.Dashboard)
		r.Get("/analytics", s.Analytics)
		r.Get("/export", s.ExportBundle)
		r.Get("/export/watchlist.csv", s.ExportWatchlistCSV)
		r.Get("/export/screen-time.csv", s.ExportScreenTimeCSV)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("api server stopped")
	return nil
}
