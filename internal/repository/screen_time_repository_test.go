package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScreenTimeApp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewScreenTimeRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO screen_time_apps (name, category, is_excluded)`)
	app := entity.ScreenTimeApp{Name: "browser", Category: "work"}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "created",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(app.Name, app.Category, app.IsExcluded).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
			},
		},
		{
			Desc:  "duplicate name",
			Error: errorvalues.ErrAppExists,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(app.Name, app.Category, app.IsExcluded).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating screen-time app db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(app.Name, app.Category, app.IsExcluded).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			a := app
			err := repo.CreateApp(context.Background(), &a)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, a.ID)
		})
	}
	assert.ErrorIs(t, errorvalues.ErrAppExists, errorvalues.ErrDuplicate)
}

func TestUpsertScreenTimeEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewScreenTimeRepo(mock)
	query := regexp.QuoteMeta(`ON CONFLICT (app_id, date) DO UPDATE SET minutes = EXCLUDED.minutes`)
	entry := entity.ScreenTimeEntry{AppID: uuid.New(), Date: "2026-10-14", Minutes: 95}
	ctx := context.Background()

	mock.ExpectQuery(query).WithArgs(entry.AppID, entry.Date, entry.Minutes).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	e := entry
	assert.ErrorIs(t, repo.UpsertEntry(ctx, &e), errorvalues.ErrAppNotFound)

	id := uuid.New()
	mock.ExpectQuery(query).WithArgs(entry.AppID, entry.Date, entry.Minutes).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
	e = entry
	assert.NoError(t, repo.UpsertEntry(ctx, &e))
	assert.Equal(t, id, e.ID)
}

func TestScreenTimeLimits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewScreenTimeRepo(mock)
	ctx := context.Background()
	limits := []entity.ScreenTimeLimit{
		{ID: uuid.New(), AppID: uuid.New(), DailyLimitMinutes: 60, IsActive: true},
		{ID: uuid.New(), AppID: uuid.New(), DailyLimitMinutes: 30},
	}
	rows := pgxmock.NewRows([]string{"id", "app_id", "daily_limit_minutes", "is_active"})
	for _, l := range limits {
		rows.AddRow(l.ID, l.AppID, l.DailyLimitMinutes, l.IsActive)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM screen_time_limits;`)).WillReturnRows(rows)
	res, err := repo.ListLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, limits, res)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM screen_time_limits WHERE id = $1;`)).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.DeleteLimit(ctx, id), errorvalues.ErrLimitNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
