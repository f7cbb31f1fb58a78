package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func sessionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "conference_id", "name", "highlights", "speaker",
		"duration_minutes", "type_of_session", "date", "start_time", "created_at",
	})
}

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("formats start time and sets the returned id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		start := time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)
		session := &domain.Session{
			ConferenceID:    "conf-1",
			Name:            "Concurrency Patterns",
			Speaker:         "Alice",
			DurationMinutes: 45,
			TypeOfSession:   "workshop",
			StartTime:       &start,
			CreatedAt:       time.Now(),
		}

		mock.ExpectQuery(`INSERT INTO sessions`).
			WithArgs(
				session.ConferenceID, session.Name, session.Highlights, session.Speaker,
				session.DurationMinutes, session.TypeOfSession, nil, "09:30:00", session.CreatedAt,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sess-1"))

		repo := NewSessionRepository(db)
		require.NoError(t, repo.Create(ctx, session))
		require.Equal(t, "sess-1", session.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil start time inserts null", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		session := &domain.Session{ConferenceID: "conf-1", Name: "Keynote", Speaker: "Bob", CreatedAt: time.Now()}

		mock.ExpectQuery(`INSERT INTO sessions`).
			WithArgs(
				session.ConferenceID, session.Name, "", session.Speaker,
				0, "", nil, nil, session.CreatedAt,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sess-2"))

		repo := NewSessionRepository(db)
		require.NoError(t, repo.Create(ctx, session))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM sessions WHERE id`).
			WithArgs("missing").
			WillReturnRows(sessionRows())

		repo := NewSessionRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_ListByStartTime(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	start := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE start_time = \$1\s+ORDER BY date ASC NULLS LAST, name ASC`).
		WithArgs("09:30:00").
		WillReturnRows(sessionRows().
			AddRow("sess-1", "conf-1", "Concurrency Patterns", "", "Alice", 45, "workshop", nil, start, now))

	repo := NewSessionRepository(db)
	sessions, err := repo.ListByStartTime(ctx, start)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "Alice", sessions[0].Speaker)
	require.NotNil(t, sessions[0].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}
