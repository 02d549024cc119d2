package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const eventColumns = `id, title, description, event_type, to_char(start_date, 'YYYY-MM-DD'), start_time,
	to_char(end_date, 'YYYY-MM-DD'), end_time, location, is_all_day, color`

type CalendarEventsRepository struct {
	conn PgConnection
}

func NewCalendarEventsRepo(conn PgConnection) *CalendarEventsRepository {
	return &CalendarEventsRepository{
		conn: conn,
	}
}

func scanEvent(row pgx.Row) (entity.CalendarEvent, error) {
	var e entity.CalendarEvent
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventType, &e.StartDate, &e.StartTime,
		&e.EndDate, &e.EndTime, &e.Location, &e.IsAllDay, &e.Color)
	return e, err
}

func (cr *CalendarEventsRepository) Create(ctx context.Context, event *entity.CalendarEvent) error {
	row := cr.conn.QueryRow(ctx, `INSERT INTO calendar_events (title, description, event_type, start_date, start_time,
		end_date, end_time, location, is_all_day, color) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		event.Title, event.Description, event.EventType, event.StartDate, event.StartTime,
		event.EndDate, event.EndTime, event.Location, event.IsAllDay, event.Color,
	)
	if err := row.Scan(&event.ID); err != nil {
		return errors.New("creating calendar event db error: " + err.Error())
	}
	return nil
}

func (cr *CalendarEventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE id = $1;`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("getting calendar event by id error: " + err.Error())
	}
	return &event, nil
}

func (cr *CalendarEventsRepository) List(ctx context.Context, filter DateFilter) ([]entity.CalendarEvent, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+eventColumns+` FROM calendar_events
		WHERE ($1::date IS NULL OR start_date >= $1::date) AND ($2::date IS NULL OR start_date <= $2::date)
		ORDER BY start_date, start_time NULLS FIRST;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing calendar events error: " + err.Error())
	}
	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, errors.New("unmarshalling calendar event error: " + err.Error())
	}
	return events, nil
}

func (cr *CalendarEventsRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE calendar_events SET title = $1, description = $2, event_type = $3, start_date = $4,
		start_time = $5, end_date = $6, end_time = $7, location = $8, is_all_day = $9, color = $10 WHERE id = $11;`,
		event.Title, event.Description, event.EventType, event.StartDate, event.StartTime,
		event.EndDate, event.EndTime, event.Location, event.IsAllDay, event.Color, event.ID,
	)
	if err != nil {
		return errors.New("error updating calendar event: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrEventNotFound)
}

func (cr *CalendarEventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting calendar event: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrEventNotFound)
}
