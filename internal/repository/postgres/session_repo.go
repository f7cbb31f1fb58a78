package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

const sessionColumns = `id, conference_id, name, highlights, speaker, duration_minutes, type_of_session, date, start_time, created_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, highlights, speaker, duration_minutes, type_of_session, date, start_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var startTime interface{}
	if s.StartTime != nil {
		startTime = s.StartTime.Format("15:04:05")
	}
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, s.Highlights, s.Speaker, s.DurationMinutes,
		s.TypeOfSession, s.Date, startTime, s.CreatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE id = $1`, sessionColumns)
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE conference_id = $1
		ORDER BY date ASC NULLS LAST, start_time ASC NULLS LAST, name ASC
	`, sessionColumns)
	return r.listSessions(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE conference_id = $1 AND type_of_session = $2
		ORDER BY date ASC NULLS LAST, start_time ASC NULLS LAST, name ASC
	`, sessionColumns)
	return r.listSessions(ctx, query, conferenceID, typeOfSession)
}

func (r *sessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE speaker = $1
		ORDER BY created_at ASC
	`, sessionColumns)
	return r.listSessions(ctx, query, speaker)
}

func (r *sessionRepository) ListByMaxDuration(ctx context.Context, maxMinutes int) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE duration_minutes <= $1
		ORDER BY duration_minutes ASC, name ASC
	`, sessionColumns)
	return r.listSessions(ctx, query, maxMinutes)
}

func (r *sessionRepository) ListByStartTime(ctx context.Context, startTime time.Time) ([]*domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE start_time = $1
		ORDER BY date ASC NULLS LAST, name ASC
	`, sessionColumns)
	return r.listSessions(ctx, query, startTime.Format("15:04:05"))
}

func (r *sessionRepository) listSessions(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var dateNull, startNull sql.NullTime
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, &s.Highlights, &s.Speaker,
		&s.DurationMinutes, &s.TypeOfSession, &dateNull, &startNull, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	if startNull.Valid {
		s.StartTime = &startNull.Time
	}
	return s, nil
}
