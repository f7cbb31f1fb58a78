package domain

import (
	"context"
	"time"
)

// Session represents a single talk/workshop within a conference. Sessions are
// created by the conference organizer and are immutable afterwards.
// swagger:model Session
type Session struct {
	ID              string     `json:"id"`
	ConferenceID    string     `json:"conference_id"`
	Name            string     `json:"name"`
	Highlights      string     `json:"highlights"`
	Speaker         string     `json:"speaker"`
	DurationMinutes int        `json:"duration_minutes"`
	TypeOfSession   string     `json:"type_of_session"`
	Date            *time.Time `json:"date,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListByMaxDuration(ctx context.Context, maxMinutes int) ([]*Session, error)
	ListByStartTime(ctx context.Context, startTime time.Time) ([]*Session, error)
}

// WishlistRepository stores the sessions a profile wants to attend. Entries
// are weak references: the session may be deleted out from under them.
type WishlistRepository interface {
	// Add is idempotent; adding an existing entry is a no-op.
	Add(ctx context.Context, profileID, sessionID string, now time.Time) error
	// ListSessions resolves wishlist entries to sessions, dropping entries
	// whose session no longer exists.
	ListSessions(ctx context.Context, profileID string) ([]*Session, error)
}

// CreateSessionInput carries the client-supplied session fields.
// Date uses the 2006-01-02 layout; StartTime uses 15:04.
type CreateSessionInput struct {
	Name            string
	Highlights      string
	Speaker         string
	DurationMinutes int
	TypeOfSession   string
	Date            string
	StartTime       string
}

// SessionService defines session creation, the session queries, and the
// wishlist operations.
type SessionService interface {
	// CreateSession creates a session under the conference. Only the
	// conference organizer may create sessions. A speaker event is
	// dispatched asynchronously for featured-speaker tracking.
	CreateSession(ctx context.Context, conferenceID, callerID string, input CreateSessionInput) (*Session, error)
	GetConferenceSessions(ctx context.Context, conferenceID string) ([]*Session, error)
	GetConferenceSessionsByType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	GetSessionsBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	GetSessionsByMaxDuration(ctx context.Context, maxMinutes int) ([]*Session, error)
	// GetSessionsByStartTime parses startTime as 15:04 (24h).
	GetSessionsByStartTime(ctx context.Context, startTime string) ([]*Session, error)
	AddSessionToWishlist(ctx context.Context, profileID, sessionID string) error
	GetSessionsInWishlist(ctx context.Context, profileID string) ([]*Session, error)
}
