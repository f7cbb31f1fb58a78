package services

import (
	"context"
	"fmt"
	"log/slog"

	"conferencecentral/internal/domain"
)

type speakerService struct {
	speakerRepo domain.SpeakerRepository
	cache       domain.Cache
	logger      *slog.Logger
}

// NewSpeakerService creates the featured-speaker tracker. It consumes
// session-created events (one per session) and publishes a speaker to the
// cache once they have appeared in two or more sessions.
func NewSpeakerService(speakerRepo domain.SpeakerRepository, cache domain.Cache, logger *slog.Logger) domain.SpeakerService {
	return &speakerService{
		speakerRepo: speakerRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *speakerService) HandleSpeakerEvent(ctx context.Context, sessionID, speaker string) error {
	if sessionID == "" || speaker == "" {
		return fmt.Errorf("%w: session id and speaker are required", domain.ErrInvalidInput)
	}

	count, counted, err := s.speakerRepo.RecordMention(ctx, sessionID, speaker)
	if err != nil {
		return fmt.Errorf("record speaker mention: %w", err)
	}
	if !counted {
		// Redelivered event: the session was already counted.
		s.logger.Debug("speaker event already processed", "session_id", sessionID, "speaker", speaker)
		return nil
	}

	if count >= domain.FeaturedSpeakerThreshold {
		if err := s.cache.Set(ctx, domain.CacheKeyFeaturedSpeaker, speaker); err != nil {
			return fmt.Errorf("cache featured speaker: %w", err)
		}
		s.logger.Info("featured speaker updated", "speaker", speaker, "count", count)
	}
	return nil
}

func (s *speakerService) GetFeaturedSpeaker(ctx context.Context) (string, error) {
	// Push-only: a cache miss means no speaker has been promoted yet, and we
	// deliberately do not recompute from session history.
	speaker, ok, err := s.cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
	if err != nil {
		return "", fmt.Errorf("get featured speaker: %w", err)
	}
	if !ok {
		return "", nil
	}
	return speaker, nil
}
