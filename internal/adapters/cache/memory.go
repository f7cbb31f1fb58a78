// Package cache provides an in-process implementation of domain.Cache for
// derived facts (announcement, featured speaker). Values are recomputable, so
// losing them on restart is acceptable.
package cache

import (
	"context"
	"sync"

	"conferencecentral/internal/domain"
)

type memoryCache struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() domain.Cache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}
