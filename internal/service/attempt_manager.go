package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	loggerpkg "github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/models"
)

const (
	// DefaultMaxAttempts is the number of failed unlocks that triggers a lockout.
	DefaultMaxAttempts = 10
	// DefaultLockoutWindow is how long a lockout lasts.
	DefaultLockoutWindow = 5 * time.Minute

	// AttemptsCacheKey holds the failed attempt counter in the device cache.
	AttemptsCacheKey = "e2ee_unlock_attempts"
)

// attemptState is the persisted form of the counter.
type attemptState struct {
	Attempts int       `json:"attempts"`
	LockedAt time.Time `json:"locked_at,omitzero"`
}

type attemptManager struct {
	maxAttempts int
	window      time.Duration
	now         func() time.Time

	// cache is nil for a counter that lives only as long as the process.
	cache  store.KeyCache
	logger *loggerpkg.Logger

	mu       sync.Mutex
	attempts int
	lockedAt time.Time
}

// NewAttemptManager returns an [AttemptManager]. Non-positive arguments fall
// back to DefaultMaxAttempts and DefaultLockoutWindow.
func NewAttemptManager(maxAttempts int, window time.Duration) AttemptManager {
	return newAttemptManager(maxAttempts, window, time.Now)
}

func newAttemptManager(maxAttempts int, window time.Duration, now func() time.Time) *attemptManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultLockoutWindow
	}
	return &attemptManager{maxAttempts: maxAttempts, window: window, now: now}
}

// NewPersistentAttemptManager returns an [AttemptManager] whose counter and
// lockout are kept in cache, so a lockout outlives the process that caused
// it. Cache failures are logged and leave the in-memory counter in charge.
func NewPersistentAttemptManager(cache store.KeyCache, maxAttempts int, window time.Duration, logger *loggerpkg.Logger) AttemptManager {
	return newPersistentAttemptManager(cache, maxAttempts, window, time.Now, logger)
}

func newPersistentAttemptManager(cache store.KeyCache, maxAttempts int, window time.Duration, now func() time.Time,
	logger *loggerpkg.Logger) *attemptManager {
	if logger == nil {
		logger = loggerpkg.Nop()
	}
	a := newAttemptManager(maxAttempts, window, now)
	a.cache = cache
	a.logger = logger
	a.load()
	return a
}

// RecordFailedAttempt implements [AttemptManager]. Attempts made while
// locked out are not counted.
func (a *attemptManager) RecordFailedAttempt() models.LockoutStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	if status := a.statusLocked(); status.Locked {
		return status
	}

	a.attempts++
	if a.attempts >= a.maxAttempts {
		a.lockedAt = a.now()
	}

	a.persistLocked()
	return a.statusLocked()
}

// IsLockedOut implements [AttemptManager].
func (a *attemptManager) IsLockedOut() models.LockoutStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statusLocked()
}

// ClearAttempts implements [AttemptManager].
func (a *attemptManager) ClearAttempts() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attempts = 0
	a.lockedAt = time.Time{}
	a.persistLocked()
}

// statusLocked must be called with a.mu held. It resets an elapsed lockout.
func (a *attemptManager) statusLocked() models.LockoutStatus {
	if !a.lockedAt.IsZero() {
		until := a.lockedAt.Add(a.window)
		if a.now().Before(until) {
			return models.LockoutStatus{Locked: true, Until: until, Attempts: a.attempts}
		}
		a.attempts = 0
		a.lockedAt = time.Time{}
	}

	return models.LockoutStatus{Attempts: a.attempts, Remaining: a.maxAttempts - a.attempts}
}

func (a *attemptManager) load() {
	if a.cache == nil {
		return
	}

	data, err := a.cache.Get(context.Background(), AttemptsCacheKey)
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			a.logger.Warn().Err(err).Str("func", "attemptManager.load").Msg("reading attempt counter failed")
		}
		return
	}

	var state attemptState
	if err = json.Unmarshal(data, &state); err != nil {
		a.logger.Warn().Err(err).Str("func", "attemptManager.load").Msg("attempt counter is unreadable")
		return
	}

	a.attempts = min(max(state.Attempts, 0), a.maxAttempts)
	a.lockedAt = state.LockedAt
	if a.attempts == a.maxAttempts && a.lockedAt.IsZero() {
		a.lockedAt = a.now()
	}
}

// persistLocked must be called with a.mu held. A running lockout is kept
// until it ends, a partial count for one lockout window.
func (a *attemptManager) persistLocked() {
	if a.cache == nil {
		return
	}
	ctx := context.Background()

	if a.attempts == 0 && a.lockedAt.IsZero() {
		if err := a.cache.Delete(ctx, AttemptsCacheKey); err != nil {
			a.logger.Warn().Err(err).Str("func", "attemptManager.persistLocked").Msg("clearing attempt counter failed")
		}
		return
	}

	ttl := a.window
	if !a.lockedAt.IsZero() {
		ttl = a.lockedAt.Add(a.window).Sub(a.now())
		if ttl <= 0 {
			return
		}
	}

	data, err := json.Marshal(attemptState{Attempts: a.attempts, LockedAt: a.lockedAt})
	if err == nil {
		err = a.cache.Set(ctx, AttemptsCacheKey, data, ttl)
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "attemptManager.persistLocked").Msg("saving attempt counter failed")
	}
}
