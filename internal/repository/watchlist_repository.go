package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/entity"
)

const watchlistColumns = `id, title, type, status, finished_at, length, rating, notes, created_at`

type WatchlistRepository struct {
	conn PgConnection
}

func NewWatchlistRepo(conn PgConnection) *WatchlistRepository {
	return &WatchlistRepository{
		conn: conn,
	}
}

func scanWatchlistItem(row pgx.Row) (entity.WatchlistItem, error) {
	var it entity.WatchlistItem
	err := row.Scan(&it.ID, &it.Title, &it.Type, &it.Status, &it.FinishedAt, &it.Length, &it.Rating, &it.Notes, &it.CreatedAt)
	return it, err
}

func (wr *WatchlistRepository) Create(ctx context.Context, item *entity.WatchlistItem) error {
	row := wr.conn.QueryRow(ctx, `INSERT INTO watchlist (title, type, status, finished_at, length, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		item.Title, item.Type, item.Status, item.FinishedAt, item.Length, item.Rating, item.Notes,
	)
	if err := row.Scan(&item.ID, &item.CreatedAt); err != nil {
		return errors.New("creating watchlist item db error: " + err.Error())
	}
	return nil
}

func (wr *WatchlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WatchlistItem, error) {
	row := wr.conn.QueryRow(ctx, `SELECT `+watchlistColumns+` FROM watchlist WHERE id = $1;`, id)
	item, err := scanWatchlistItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWatchlistItemNotFound
		}
		return nil, errors.New("getting watchlist item by id error: " + err.Error())
	}
	return &item, nil
}

func (wr *WatchlistRepository) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+watchlistColumns+` FROM watchlist ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing watchlist error: " + err.Error())
	}
	items, err := collect(rows, scanWatchlistItem)
	if err != nil {
		return nil, errors.New("unmarshalling watchlist item error: " + err.Error())
	}
	return items, nil
}

func (wr *WatchlistRepository) Update(ctx context.Context, item *entity.WatchlistItem) error {
	ct, err := wr.conn.Exec(ctx, `UPDATE watchlist SET title = $1, type = $2, status = $3, finished_at = $4, length = $5,
		rating = $6, notes = $7 WHERE id = $8;`,
		item.Title, item.Type, item.Status, item.FinishedAt, item.Length, item.Rating, item.Notes, item.ID,
	)
	if err != nil {
		return errors.New("error updating watchlist item: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrWatchlistItemNotFound)
}

func (wr *WatchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM watchlist WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting watchlist item: " + err.Error())
	}
	return affectOne(ct, errorvalues.ErrWatchlistItemNotFound)
}
