package store

import (
	"context"
	"sync"
	"time"
)

// SessionKeyCache is the process-lifetime [KeyCache]. Its contents vanish
// when the process exits.
type SessionKeyCache struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	now     func() time.Time
}

type sessionEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewSessionKeyCache returns an empty session cache.
func NewSessionKeyCache() *SessionKeyCache {
	return &SessionKeyCache{
		entries: make(map[string]sessionEntry),
		now:     time.Now,
	}
}

// Get implements [KeyCache].
func (c *SessionKeyCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, ErrCacheMiss
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set implements [KeyCache]. A non-positive ttl keeps the entry until Delete.
func (c *SessionKeyCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := sessionEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// Delete implements [KeyCache].
func (c *SessionKeyCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
