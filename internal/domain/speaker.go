package domain

import "context"

// FeaturedSpeakerThreshold is the appearance count at which a speaker is
// promoted to featured. The second session naming the same speaker triggers
// promotion.
const FeaturedSpeakerThreshold = 2

// SpeakerRepository maintains the global per-speaker appearance counter.
type SpeakerRepository interface {
	// RecordMention counts the speaker's appearance for the given session.
	// Each session is counted at most once: redelivery of the same event
	// returns counted=false with the current count unchanged. Counts are
	// monotonically non-decreasing.
	RecordMention(ctx context.Context, sessionID, speaker string) (count int, counted bool, err error)
	// GetCount returns the current count for the speaker (0 when unseen).
	GetCount(ctx context.Context, speaker string) (int, error)
}

// SpeakerService consumes speaker events from session creation and publishes
// the featured speaker.
type SpeakerService interface {
	// HandleSpeakerEvent processes one session-created event. Safe under
	// at-least-once delivery.
	HandleSpeakerEvent(ctx context.Context, sessionID, speaker string) error
	// GetFeaturedSpeaker returns the cached featured speaker, or "" when
	// none has been published. Never recomputes on miss.
	GetFeaturedSpeaker(ctx context.Context) (string, error)
}
