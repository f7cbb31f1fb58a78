package domain

import "context"

// Cache keys for derived facts. Values are recomputable from primary
// entities; absence is a valid state.
const (
	CacheKeyAnnouncement    = "recent_announcement"
	CacheKeyFeaturedSpeaker = "featured_speaker"
)

// Cache is a key-value store for derived, non-authoritative facts.
type Cache interface {
	Set(ctx context.Context, key, value string) error
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
