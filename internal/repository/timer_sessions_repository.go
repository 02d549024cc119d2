package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

type TimerSessionsRepository struct {
	conn PgConnection
}

func NewTimerSessionsRepo(conn PgConnection) *TimerSessionsRepository {
	return &TimerSessionsRepository{
		conn: conn,
	}
}

func scanTimerSession(row pgx.Row) (entity.TimerSession, error) {
	var s entity.TimerSession
	err := row.Scan(&s.ID, &s.Date, &s.Type, &s.Duration, &s.Completed, &s.CreatedAt)
	return s, err
}

func (tr *TimerSessionsRepository) Create(ctx context.Context, session *entity.TimerSession) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO timer_sessions (date, type, duration, completed)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		session.Date, session.Type, session.Duration, session.Completed,
	)
	if err := row.Scan(&session.ID, &session.CreatedAt); err != nil {
		return errors.New("creating timer session db error: " + err.Error())
	}
	return nil
}

func (tr *TimerSessionsRepository) List(ctx context.Context, filter DateFilter) ([]entity.TimerSession, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, to_char(date, 'YYYY-MM-DD'), type, duration, completed, created_at
		FROM timer_sessions WHERE ($1::date IS NULL OR date >= $1::date) AND ($2::date IS NULL OR date <= $2::date)
		ORDER BY date, created_at;`,
		filter.From, filter.To,
	)
	if err != nil {
		return nil, errors.New("listing timer sessions error: " + err.Error())
	}
	sessions, err := collect(rows, scanTimerSession)
	if err != nil {
		return nil, errors.New("unmarshalling timer session error: " + err.Error())
	}
	return sessions, nil
}

func (tr *TimerSessionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM timer_sessions WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting timer session: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrSessionNotFound)
}
