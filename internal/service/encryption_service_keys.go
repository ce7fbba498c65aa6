package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/models"
)

// StoreCurrentKey implements [EncryptionService].
func (e *encryptionService) StoreCurrentKey(ctx context.Context, userID string, rememberDevice bool) error {
	key, owner, ok := e.residentKey()
	if !ok {
		return ErrKeyNotResident
	}
	if owner != userID {
		return ErrKeyOwnerMismatch
	}

	wrapped := models.CachedKey{UserID: userID, Key: key, ExpiresAt: e.now().Add(e.keyTTL)}

	if err := e.writeCache(ctx, e.sessionCache, SessionCacheKey, wrapped); err != nil {
		return fmt.Errorf("store key in session cache: %w", err)
	}

	if rememberDevice {
		if err := e.writeCache(ctx, e.deviceCache, deviceCacheKey(userID), wrapped); err != nil {
			return fmt.Errorf("store key in device cache: %w", err)
		}
		return nil
	}

	if err := e.deviceCache.Delete(ctx, deviceCacheKey(userID)); err != nil {
		return fmt.Errorf("remove stale device cache entry: %w", err)
	}
	return nil
}

// RestoreKeyForUser implements [EncryptionService]. Unreadable, expired and
// foreign entries are skipped.
//
// A restored entry is written back with its expiry slid forward: the new
// expiry is max(current expiry, now + sliding window), so a restore never
// shortens the remaining lifetime of a key.
func (e *encryptionService) RestoreKeyForUser(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	e.mu.Lock()
	switch {
	case e.state == models.KeyResident && e.owner == userID:
		e.mu.Unlock()
		return true
	case e.state == models.KeyEstablishing:
		e.mu.Unlock()
		return false
	}
	e.mu.Unlock()

	log := logger.FromContext(ctx)
	now := e.now()

	if cached, ok := e.readCache(ctx, e.sessionCache, SessionCacheKey, userID, now); ok {
		log.Debug().Str("user_id", userID).Msg("key restored from session cache")
		return e.makeResident(userID, cached.Key)
	}

	cached, ok := e.readCache(ctx, e.deviceCache, deviceCacheKey(userID), userID, now)
	if !ok {
		return false
	}

	renewed := cached
	if extended := now.Add(e.sliding); extended.After(renewed.ExpiresAt) {
		renewed.ExpiresAt = extended
	}
	if err := e.writeCache(ctx, e.sessionCache, SessionCacheKey, renewed); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to rewrite session cache")
	}
	if err := e.writeCache(ctx, e.deviceCache, deviceCacheKey(userID), renewed); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to extend device cache entry")
	}

	log.Debug().Str("user_id", userID).Time("expires_at", renewed.ExpiresAt).Msg("key restored from device cache")
	return e.makeResident(userID, cached.Key)
}

// ClearKey implements [EncryptionService].
func (e *encryptionService) ClearKey(ctx context.Context) error {
	owner := e.dropResident()
	if owner == "" {
		return nil
	}
	return e.clearCachedKeys(ctx, owner)
}

// ClearKeyForUser implements [EncryptionService]. The cache entries of userID
// are removed even when no key is resident in this process.
func (e *encryptionService) ClearKeyForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUserID
	}

	owner := e.dropResident()

	var errs []error
	if owner != "" && owner != userID {
		errs = append(errs, e.clearCachedKeys(ctx, owner))
	}
	errs = append(errs, e.clearCachedKeys(ctx, userID))
	return errors.Join(errs...)
}

// dropResident wipes the in-memory key, aborts any establishment in flight
// and returns the previous owner.
func (e *encryptionService) dropResident() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	owner := e.owner
	e.dropKeyLocked()
	e.state = models.KeyUninitialized
	e.epoch++
	return owner
}

// clearCachedKeys removes the session entry and the device entry of userID
// and forgets its cached salt. Deletion failures are joined.
func (e *encryptionService) clearCachedKeys(ctx context.Context, userID string) error {
	var errs []error
	if err := e.sessionCache.Delete(ctx, SessionCacheKey); err != nil {
		errs = append(errs, fmt.Errorf("delete session cache entry: %w", err))
	}
	if err := e.deviceCache.Delete(ctx, deviceCacheKey(userID)); err != nil {
		errs = append(errs, fmt.Errorf("delete device cache entry: %w", err))
	}
	e.salts.ClearSaltForUser(userID)

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("encryption key cleared")
	return errors.Join(errs...)
}

func (e *encryptionService) makeResident(userID, key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == models.KeyEstablishing {
		return false
	}
	if e.key != key {
		clear(e.recordKeys)
	}
	e.key = key
	e.owner = userID
	e.state = models.KeyResident
	return true
}

func (e *encryptionService) writeCache(ctx context.Context, cache store.KeyCache, name string, wrapped models.CachedKey) error {
	data, err := json.Marshal(wrapped)
	if err != nil {
		return fmt.Errorf("serialize cached key: %w", err)
	}

	ttl := wrapped.ExpiresAt.Sub(e.now())
	if ttl <= 0 {
		ttl = time.Second
	}
	return cache.Set(ctx, name, data, ttl)
}

func (e *encryptionService) readCache(ctx context.Context, cache store.KeyCache, name, userID string, now time.Time) (models.CachedKey, bool) {
	log := logger.FromContext(ctx)

	data, err := cache.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			log.Warn().Err(err).Str("cache_key", name).Msg("failed to read key cache")
		}
		return models.CachedKey{}, false
	}

	var cached models.CachedKey
	if err = json.Unmarshal(data, &cached); err != nil {
		log.Warn().Err(err).Str("cache_key", name).Msg("ignoring malformed key cache entry")
		return models.CachedKey{}, false
	}

	if !cached.ValidFor(userID, now) {
		log.Debug().Str("cache_key", name).Str("user_id", userID).Msg("ignoring expired or foreign key cache entry")
		return models.CachedKey{}, false
	}

	return cached, true
}
