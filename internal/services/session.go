package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const timeLayout = "15:04"

type sessionService struct {
	confRepo     domain.ConferenceRepository
	sessionRepo  domain.SessionRepository
	wishlistRepo domain.WishlistRepository
	dispatcher   domain.TaskDispatcher
	logger       *slog.Logger
}

func NewSessionService(
	confRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	wishlistRepo domain.WishlistRepository,
	dispatcher domain.TaskDispatcher,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		confRepo:     confRepo,
		sessionRepo:  sessionRepo,
		wishlistRepo: wishlistRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, conferenceID, callerID string, input domain.CreateSessionInput) (*domain.Session, error) {
	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}

	// Session creation is open only to the conference organizer.
	if conf.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Speaker) == "" {
		return nil, fmt.Errorf("%w: session speaker is required", domain.ErrInvalidInput)
	}
	if input.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", domain.ErrInvalidInput)
	}

	session := &domain.Session{
		ConferenceID:    conferenceID,
		Name:            strings.TrimSpace(input.Name),
		Highlights:      input.Highlights,
		Speaker:         strings.TrimSpace(input.Speaker),
		DurationMinutes: input.DurationMinutes,
		TypeOfSession:   input.TypeOfSession,
		CreatedAt:       time.Now(),
	}
	if input.Date != "" {
		date, err := time.Parse(dateLayout, input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		session.Date = &date
	}
	if input.StartTime != "" {
		start, err := time.Parse(timeLayout, input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start time must be HH:MM (24h)", domain.ErrInvalidInput)
		}
		session.StartTime = &start
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// Speaker tracking happens out-of-band; a dispatch failure must not fail
	// session creation.
	if err := s.dispatcher.Enqueue(ctx, domain.JobAddFeaturedSpeaker, map[string]string{
		domain.TaskParamSessionID: session.ID,
		domain.TaskParamSpeaker:   session.Speaker,
	}); err != nil {
		s.logger.Warn("failed to enqueue speaker event", "session_id", session.ID, "err", err)
	}

	return session, nil
}

func (s *sessionService) GetConferenceSessions(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if err := s.requireConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetConferenceSessionsByType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	if err := s.requireConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConferenceIDAndType(ctx, conferenceID, typeOfSession)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetSessionsBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	if strings.TrimSpace(speaker) == "" {
		return nil, fmt.Errorf("%w: speaker is required", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListBySpeaker(ctx, speaker)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetSessionsByMaxDuration(ctx context.Context, maxMinutes int) ([]*domain.Session, error) {
	if maxMinutes <= 0 {
		return nil, fmt.Errorf("%w: max duration must be positive", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListByMaxDuration(ctx, maxMinutes)
	if err != nil {
		return nil, fmt.Errorf("list sessions by max duration: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetSessionsByStartTime(ctx context.Context, startTime string) ([]*domain.Session, error) {
	t, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time must be HH:MM (24h)", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListByStartTime(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list sessions by start time: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) AddSessionToWishlist(ctx context.Context, profileID, sessionID string) error {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get session: %w", err)
	}
	if err := s.wishlistRepo.Add(ctx, profileID, sessionID, time.Now()); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (s *sessionService) GetSessionsInWishlist(ctx context.Context, profileID string) ([]*domain.Session, error) {
	sessions, err := s.wishlistRepo.ListSessions(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) requireConference(ctx context.Context, conferenceID string) error {
	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get conference: %w", err)
	}
	return nil
}
