package domain

import (
	"context"
	"time"
)

// Defaults applied to missing conference fields on create.
var (
	DefaultCity   = "Default City"
	DefaultTopics = []string{"Default", "Topic"}
)

// Conference represents a conference owned by its organizer profile.
// Month is derived from StartDate (0 when no start date is set).
// Invariant: 0 <= SeatsAvailable <= MaxAttendees; SeatsAvailable is mutated
// only by the registration engine.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	OrganizerID    string     `json:"organizer_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Topics         []string   `json:"topics"`
	City           string     `json:"city"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ConferenceWithOrganizer bundles a conference with its organizer's display name.
type ConferenceWithOrganizer struct {
	Conference           *Conference `json:"conference"`
	OrganizerDisplayName string      `json:"organizer_display_name"`
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	// ListByAttendee returns the conferences the profile is registered for.
	// Registrations pointing at deleted conferences are skipped.
	ListByAttendee(ctx context.Context, profileID string) ([]*Conference, error)
	// Search executes a compiled query plan. Results are ordered by the
	// plan's inequality field first (when present), then by name.
	Search(ctx context.Context, plan *QueryPlan) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 1..maxSeats seats left,
	// used for the announcement.
	ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*Conference, error)
}

// CreateConferenceInput carries the client-supplied conference fields.
// Date strings use the 2006-01-02 layout.
type CreateConferenceInput struct {
	Name         string
	Description  string
	Topics       []string
	City         string
	StartDate    string
	EndDate      string
	MaxAttendees int
}

// ConferenceService defines conference creation, lookup, search, and the
// sold-out announcement.
type ConferenceService interface {
	CreateConference(ctx context.Context, organizerID string, input CreateConferenceInput) (*Conference, error)
	GetConference(ctx context.Context, conferenceID string) (*ConferenceWithOrganizer, error)
	GetConferencesCreated(ctx context.Context, organizerID string) ([]*ConferenceWithOrganizer, error)
	GetConferencesToAttend(ctx context.Context, profileID string) ([]*Conference, error)
	QueryConferences(ctx context.Context, filters []Filter) ([]*Conference, error)
	// GetAnnouncement returns the cached sold-out announcement, or "" when none.
	GetAnnouncement(ctx context.Context) (string, error)
	// RefreshAnnouncement recomputes the announcement from nearly sold out
	// conferences and publishes (or clears) it in the cache.
	RefreshAnnouncement(ctx context.Context) (string, error)
}

// RegistrationService is the seat-inventory state machine between a profile
// and a conference.
type RegistrationService interface {
	// Register registers the profile for the conference, taking one seat.
	Register(ctx context.Context, profileID, conferenceID string) error
	// Unregister removes the registration and returns the seat. Returns
	// false when the profile was not registered (a no-op, not an error).
	Unregister(ctx context.Context, profileID, conferenceID string) (bool, error)
}

// RegistrationRepository performs the atomic register/unregister transitions.
// Both entities (registration row and seat counter) are read, validated, and
// written inside a single transaction; no intermediate state is observable.
type RegistrationRepository interface {
	Register(ctx context.Context, profileID, conferenceID string, now time.Time) error
	Unregister(ctx context.Context, profileID, conferenceID string) (bool, error)
}
