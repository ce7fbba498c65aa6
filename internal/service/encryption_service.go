// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/models"
)

const (
	// SessionCacheKey is the well-known session cache entry holding the key.
	SessionCacheKey = "e2ee_session_key"
	// DeviceCacheKeyPrefix is followed by the user ID in device cache entries.
	DeviceCacheKeyPrefix = "e2ee_device_key:"

	// DefaultKeyTTL is the lifetime of a freshly stored cache entry.
	DefaultKeyTTL = 90 * 24 * time.Hour
	// DefaultSlidingWindow is how far a device cache restore pushes the expiry.
	DefaultSlidingWindow = 10 * 24 * time.Hour
)

// ErrKeyEstablishmentAborted is returned when ClearKey runs while a setup or
// verification is in flight; the derived key is discarded.
var ErrKeyEstablishmentAborted = errors.New("key establishment aborted")

// EncryptionConfig tunes key caching. Zero values select the defaults.
type EncryptionConfig struct {
	KeyTTL        time.Duration
	SlidingWindow time.Duration
}

// EncryptionDeps are the collaborators of the encryption service.
type EncryptionDeps struct {
	KeyChain     crypto.KeyChain
	Salts        SaltManager
	Records      store.UserRecordRepository
	SessionCache store.KeyCache
	DeviceCache  store.KeyCache
}

type encryptionService struct {
	keyChain     crypto.KeyChain
	salts        SaltManager
	records      store.UserRecordRepository
	sessionCache store.KeyCache
	deviceCache  store.KeyCache

	keyTTL  time.Duration
	sliding time.Duration
	now     func() time.Time

	mu    sync.Mutex
	state models.KeyState
	key   string
	owner string
	// epoch is bumped by ClearKey so an in-flight establishment cannot
	// resurrect a key after logout.
	epoch uint64
	// recordKeys memoizes DeriveKey(key, salt) by salt for the resident key.
	recordKeys map[string]string

	logger *logger.Logger
}

// NewEncryptionService constructs the [EncryptionService]. Each instance owns
// its resident key; the composition root creates exactly one per session.
func NewEncryptionService(deps EncryptionDeps, cfg EncryptionConfig, logger *logger.Logger) EncryptionService {
	if cfg.KeyTTL <= 0 {
		cfg.KeyTTL = DefaultKeyTTL
	}
	if cfg.SlidingWindow <= 0 {
		cfg.SlidingWindow = DefaultSlidingWindow
	}

	return &encryptionService{
		keyChain:     deps.KeyChain,
		salts:        deps.Salts,
		records:      deps.Records,
		sessionCache: deps.SessionCache,
		deviceCache:  deps.DeviceCache,
		keyTTL:       cfg.KeyTTL,
		sliding:      cfg.SlidingWindow,
		now:          time.Now,
		recordKeys:   make(map[string]string),
		logger:       logger,
	}
}

// InitializeKeyForFirstTimeSetup implements [EncryptionService]. If the hash
// cannot be persisted, the durable flag is cleared again and no key becomes
// resident.
func (e *encryptionService) InitializeKeyForFirstTimeSetup(ctx context.Context, identity models.Identity, pin string) error {
	if identity.UserID == "" {
		return ErrNoUserID
	}

	log := logger.FromContext(ctx)

	epoch, err := e.beginEstablishing()
	if err != nil {
		return err
	}

	salt, err := e.salts.GetSaltForUser(ctx, identity.UserID)
	if err != nil {
		e.abortEstablishing(epoch)
		return fmt.Errorf("first-time setup: %w", err)
	}

	key := e.keyChain.DeriveKey(identity.KeyMaterial()+pin, salt)
	hash := e.keyChain.HashKey(key)

	if err = e.records.SavePinHash(ctx, identity.UserID, hash); err != nil {
		e.abortEstablishing(epoch)
		log.Err(err).Str("func", "encryptionService.InitializeKeyForFirstTimeSetup").
			Str("user_id", identity.UserID).Msg("failed to persist PIN hash")
		if clearErr := e.records.ClearPinHash(ctx, identity.UserID); clearErr != nil {
			log.Err(clearErr).Str("user_id", identity.UserID).Msg("failed to roll back PIN flag")
		}
		return fmt.Errorf("persist PIN hash: %w", err)
	}

	if err = e.finishEstablishing(epoch, identity.UserID, key); err != nil {
		return err
	}

	log.Info().Str("user_id", identity.UserID).Msg("encryption key set up")
	return nil
}

// RevertKeySetup implements [EncryptionService].
func (e *encryptionService) RevertKeySetup(ctx context.Context, userID string) error {
	clearErr := e.ClearKey(ctx)

	if err := e.records.ClearPinHash(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.RevertKeySetup").
			Str("user_id", userID).Msg("failed to clear PIN hash")
		return errors.Join(fmt.Errorf("clear PIN hash: %w", err), clearErr)
	}

	return clearErr
}

// VerifyPin implements [EncryptionService]. The hash comparison is constant
// time; durable-store failures are returned as errors, a wrong PIN is not.
func (e *encryptionService) VerifyPin(ctx context.Context, identity models.Identity, pin string) (bool, error) {
	if identity.UserID == "" {
		return false, ErrNoUserID
	}

	epoch, err := e.beginEstablishing()
	if err != nil {
		return false, err
	}

	state, err := e.records.GetPinState(ctx, identity.UserID)
	if err != nil {
		e.abortEstablishing(epoch)
		return false, fmt.Errorf("read PIN state: %w", err)
	}
	if !state.Configured || state.Hash == "" {
		e.abortEstablishing(epoch)
		return false, ErrPinNotConfigured
	}

	salt, err := e.salts.GetSaltForUser(ctx, identity.UserID)
	if err != nil {
		e.abortEstablishing(epoch)
		return false, fmt.Errorf("verify PIN: %w", err)
	}

	key := e.keyChain.DeriveKey(identity.KeyMaterial()+pin, salt)
	if !e.keyChain.HashesEqual(e.keyChain.HashKey(key), state.Hash) {
		e.abortEstablishing(epoch)
		logger.FromContext(ctx).Info().Str("user_id", identity.UserID).Msg("PIN verification failed")
		return false, nil
	}

	if err = e.finishEstablishing(epoch, identity.UserID, key); err != nil {
		return false, err
	}

	return true, nil
}

// IsPinConfigured implements [EncryptionService].
func (e *encryptionService) IsPinConfigured(ctx context.Context, userID string) (bool, error) {
	state, err := e.records.GetPinState(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("read PIN state: %w", err)
	}
	return state.Configured && state.Hash != "", nil
}

// IsInitialized implements [EncryptionService].
func (e *encryptionService) IsInitialized() bool {
	return e.State() == models.KeyResident
}

// State implements [EncryptionService].
func (e *encryptionService) State() models.KeyState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ResetEncryptionState implements [EncryptionService].
func (e *encryptionService) ResetEncryptionState(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUserID
	}

	var errs []error
	if err := e.ClearKeyForUser(ctx, userID); err != nil {
		errs = append(errs, err)
	}
	if err := e.records.DeleteEncryptionState(ctx, userID); err != nil {
		errs = append(errs, fmt.Errorf("delete encryption state: %w", err))
	}

	if len(errs) == 0 {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("encryption state reset")
	}
	return errors.Join(errs...)
}

// beginEstablishing moves to KeyEstablishing, dropping any resident key. It
// rejects re-entrant calls.
func (e *encryptionService) beginEstablishing() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == models.KeyEstablishing {
		return 0, ErrKeyEstablishmentInProgress
	}

	e.dropKeyLocked()
	e.state = models.KeyEstablishing
	return e.epoch, nil
}

func (e *encryptionService) abortEstablishing(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch == epoch {
		e.state = models.KeyUninitialized
	}
}

func (e *encryptionService) finishEstablishing(epoch uint64, userID, key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		return ErrKeyEstablishmentAborted
	}

	e.key = key
	e.owner = userID
	e.state = models.KeyResident
	return nil
}

// residentKey returns the key and its owner when a key is resident.
func (e *encryptionService) residentKey() (key, owner string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != models.KeyResident {
		return "", "", false
	}
	return e.key, e.owner, true
}

// dropKeyLocked must be called with e.mu held.
func (e *encryptionService) dropKeyLocked() {
	e.key = ""
	e.owner = ""
	clear(e.recordKeys)
}

func deviceCacheKey(userID string) string {
	return DeviceCacheKeyPrefix + userID
}
