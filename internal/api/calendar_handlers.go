package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var event entity.CalendarEvent
	if !decodeBody(w, r, logger, "create calendar event", &event) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.calendarService.Create(ctx, &event)
	if err != nil {
		writeServiceError(w, logger, "create calendar event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("calendar event created")
}

func (s *Server) ListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter, err := queryFilter(r)
	if err != nil {
		writeServiceError(w, logger, "list calendar events", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	events, err := s.calendarService.List(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "list calendar events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
	logger.Info("calendar events provided")
}

func (s *Server) GetCalendarEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get calendar event")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	event, err := s.calendarService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get calendar event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, event)
	logger.Info("calendar event provided")
}

func (s *Server) UpdateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update calendar event")
	if !ok {
		return
	}
	var event entity.CalendarEvent
	if !decodeBody(w, r, logger, "update calendar event", &event) {
		return
	}
	event.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.calendarService.Update(ctx, &event)
	if err != nil {
		writeServiceError(w, logger, "update calendar event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("calendar event updated")
}

func (s *Server) DeleteCalendarEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete calendar event")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.calendarService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete calendar event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("calendar event deleted")
}

func (s *Server) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	events, err := s.calendarService.Upcoming(ctx)
	if err != nil {
		writeServiceError(w, logger, "list upcoming events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
	logger.Info("upcoming events provided")
}
