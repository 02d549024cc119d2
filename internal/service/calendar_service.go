package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/lifedash/internal/cache"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/stats"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/entity"
)

type CalendarService struct {
	repo  repository.CalendarEventsRepositoryI
	cache *cache.QueryCache
	clock dateutil.Clock
}

func NewCalendarService(eventsRepo repository.CalendarEventsRepositoryI, qc *cache.QueryCache, clock dateutil.Clock) *CalendarService {
	if eventsRepo == nil {
		log.Fatal("provided nil calendarEventsRepo")
	}
	return &CalendarService{
		repo:  eventsRepo,
		cache: qc,
		clock: clock,
	}
}

func validateEvent(event *entity.CalendarEvent) error {
	if err := validateStruct(event); err != nil {
		return err
	}
	if event.EndDate != nil && *event.EndDate < event.StartDate {
		return fmt.Errorf("%w: event ends before it starts", errorvalues.ErrValidation)
	}
	return nil
}

func (cs *CalendarService) Create(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := cs.repo.Create(ctx, event); err != nil {
		return nil, repoError("calendar events", err)
	}
	invalidate(cs.cache, calendarKey)
	return event, nil
}

func (cs *CalendarService) Get(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error) {
	event, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("calendar events", err)
	}
	return event, nil
}

func (cs *CalendarService) List(ctx context.Context, filter repository.DateFilter) ([]entity.CalendarEvent, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}
	events, err := cache.Fetch(ctx, cs.cache, filterKey(calendarKey, filter), func(ctx context.Context) ([]entity.CalendarEvent, error) {
		return cs.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, repoError("calendar events", err)
	}
	return events, nil
}

func (cs *CalendarService) Update(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := cs.repo.Update(ctx, event); err != nil {
		return nil, repoError("calendar events", err)
	}
	invalidate(cs.cache, calendarKey)
	return event, nil
}

func (cs *CalendarService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := cs.repo.Delete(ctx, id); err != nil {
		return repoError("calendar events", err)
	}
	invalidate(cs.cache, calendarKey)
	return nil
}

// Upcoming lists the events of the coming week, including multi-day events still running.
func (cs *CalendarService) Upcoming(ctx context.Context) ([]entity.CalendarEvent, error) {
	events, err := cs.List(ctx, repository.DateFilter{})
	if err != nil {
		return nil, err
	}
	upcoming, err := stats.UpcomingEvents(events, cs.clock.Today(), stats.UpcomingEventsDays, stats.UpcomingEventsLimit)
	if err != nil {
		return nil, errors.New("selecting upcoming events error: " + err.Error())
	}
	return upcoming, nil
}
