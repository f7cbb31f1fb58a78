package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func conferenceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "organizer_id", "name", "description", "topics", "city",
		"start_date", "end_date", "month", "max_attendees", "seats_available",
		"created_at", "updated_at",
	})
}

func TestConferenceRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM conferences WHERE id`).
			WithArgs("conf-1").
			WillReturnRows(conferenceRows().AddRow(
				"conf-1", "prof-1", "GopherCon", "Go conference", "{Go,Web}", "Denver",
				start, nil, 6, 100, 42, now, now,
			))

		repo := NewConferenceRepository(db)
		conf, err := repo.GetByID(ctx, "conf-1")
		require.NoError(t, err)
		require.Equal(t, "GopherCon", conf.Name)
		require.Equal(t, []string{"Go", "Web"}, conf.Topics)
		require.Equal(t, 6, conf.Month)
		require.NotNil(t, conf.StartDate)
		require.Equal(t, start, *conf.StartDate)
		require.Nil(t, conf.EndDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM conferences WHERE id`).
			WithArgs("missing").
			WillReturnRows(conferenceRows())

		repo := NewConferenceRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConferenceRepository_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by inequality field then name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		plan, err := domain.CompileFilters([]domain.Filter{
			{Field: "MONTH", Operator: "GT", Value: "3"},
			{Field: "CITY", Operator: "EQ", Value: "London"},
		})
		require.NoError(t, err)

		mock.ExpectQuery(`WHERE month > \$1 AND city = \$2\s+ORDER BY month ASC, name ASC`).
			WithArgs(3, "London").
			WillReturnRows(conferenceRows())

		repo := NewConferenceRepository(db)
		confs, err := repo.Search(ctx, plan)
		require.NoError(t, err)
		require.Empty(t, confs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("equality-only plan orders by name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		plan, err := domain.CompileFilters([]domain.Filter{
			{Field: "TOPIC", Operator: "EQ", Value: "Go"},
		})
		require.NoError(t, err)

		mock.ExpectQuery(`EXISTS \(SELECT 1 FROM unnest\(topics\) AS topic WHERE topic = \$1\)\s+ORDER BY name ASC`).
			WithArgs("Go").
			WillReturnRows(conferenceRows())

		repo := NewConferenceRepository(db)
		_, err = repo.Search(ctx, plan)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters lists everything ordered by name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		plan, err := domain.CompileFilters(nil)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT (.+) FROM conferences\s+ORDER BY name ASC`).
			WillReturnRows(conferenceRows())

		repo := NewConferenceRepository(db)
		_, err = repo.Search(ctx, plan)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConferenceRepository_ListNearlySoldOut(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE seats_available > 0 AND seats_available <= \$1`).
		WithArgs(5).
		WillReturnRows(conferenceRows().AddRow(
			"conf-1", "prof-1", "Almost Full Con", "", "{}", "Austin",
			nil, nil, 0, 50, 2, now, now,
		))

	repo := NewConferenceRepository(db)
	confs, err := repo.ListNearlySoldOut(ctx, 5)
	require.NoError(t, err)
	require.Len(t, confs, 1)
	require.Equal(t, "Almost Full Con", confs[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
