// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side end-to-end encryption core: salt
// management, the key lifecycle, record and blob cryptography, the unlock
// attempt counter and the thin callers built on top of them.
//
// All services are explicitly constructed by [NewServices] and passed by
// reference; none of them keeps package-level state.
package service

import (
	"context"

	"github.com/MKhiriev/go-absence-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SaltManager owns the per-user salt. The durable user record is the source
// of truth; a process-local cache sits in front of it.
type SaltManager interface {
	// GetSaltForUser returns the salt of userID, creating and persisting a
	// fresh one on first use. Durable-store failures are returned unchanged
	// in meaning (wrapped), never papered over with a new salt.
	GetSaltForUser(ctx context.Context, userID string) (string, error)

	// ClearSaltForUser drops the local cache entry of userID only.
	ClearSaltForUser(userID string)
}

// AttemptManager counts failed unlock attempts and enforces a temporary
// lockout once the maximum is reached.
type AttemptManager interface {
	// RecordFailedAttempt increments the counter and starts the lockout
	// window when the maximum is reached. It returns the resulting status.
	RecordFailedAttempt() models.LockoutStatus

	// IsLockedOut reports the current status. Once the window has elapsed the
	// counter is reset and an unlocked status is returned.
	IsLockedOut() models.LockoutStatus

	// ClearAttempts resets the counter and the lockout stamp.
	ClearAttempts()
}

// EncryptionService holds the key of the current session and exposes the
// record and blob cryptography built on it.
//
// Key lifecycle: KeyUninitialized → KeyEstablishing (setup or verification in
// flight) → KeyResident → KeyUninitialized (ClearKey).
type EncryptionService interface {
	// InitializeKeyForFirstTimeSetup derives the identity key from the
	// identity, pin and user salt, persists its verification hash together
	// with the "PIN configured" flag and makes the key resident.
	InitializeKeyForFirstTimeSetup(ctx context.Context, identity models.Identity, pin string) error

	// RevertKeySetup clears the resident key and the durable hash and flag.
	// It is called when a step after key establishment fails.
	RevertKeySetup(ctx context.Context, userID string) error

	// VerifyPin re-derives the key and compares its hash with the stored one.
	// A mismatch returns false and leaves no key resident.
	VerifyPin(ctx context.Context, identity models.Identity, pin string) (bool, error)

	// IsPinConfigured reports whether the user has completed PIN setup.
	IsPinConfigured(ctx context.Context, userID string) (bool, error)

	// IsInitialized reports whether a key is resident.
	IsInitialized() bool

	// State returns the current key lifecycle state.
	State() models.KeyState

	// StoreCurrentKey writes the resident key into the session cache and,
	// when rememberDevice is set, into the device cache. Otherwise any device
	// cache entry of the user is removed.
	StoreCurrentKey(ctx context.Context, userID string, rememberDevice bool) error

	// RestoreKeyForUser makes a cached key resident. The session cache is
	// preferred; a device cache hit extends the expiry by the sliding window
	// and rewrites both caches. Absence is reported as false.
	RestoreKeyForUser(ctx context.Context, userID string) bool

	// ClearKey wipes the resident key and both cache entries of its owner.
	// Calling it without a resident key is a no-op.
	ClearKey(ctx context.Context) error

	// ClearKeyForUser wipes any resident key and removes the session entry
	// and the device entry of userID, whether or not a key is resident in
	// this process.
	ClearKeyForUser(ctx context.Context, userID string) error

	// Encrypt serializes record canonically and encrypts it with the
	// record-level key of userID. Returns ErrKeyNotResident without a key.
	Encrypt(ctx context.Context, record any, userID string) (models.EncryptedPayload, error)

	// Decrypt reverses Encrypt. Failures are reported in the result.
	Decrypt(ctx context.Context, ciphertext, salt string) models.DecryptResult

	// DecryptField decrypts a single-value field. Any failure yields false.
	DecryptField(ctx context.Context, ciphertext, userID string) (string, bool)

	// EncryptProfileData bundles the sensitive fields of profile into one
	// ciphertext. Returns ErrKeyNotResident without a key.
	EncryptProfileData(ctx context.Context, profile models.Profile) (models.Profile, error)

	// DecryptProfileData restores the sensitive fields of an encrypted
	// profile. Plaintext profiles pass through. Without a key the profile is
	// returned unchanged together with ErrKeyNotResident.
	DecryptProfileData(ctx context.Context, profile models.Profile) (models.Profile, error)

	// EncryptBlob encrypts an arbitrary byte slice with the record-level key
	// of userID. Returns ErrKeyNotResident without a key.
	EncryptBlob(ctx context.Context, blob []byte, userID string) ([]byte, error)

	// DecryptBlob reverses EncryptBlob.
	DecryptBlob(ctx context.Context, blob []byte, userID string) ([]byte, error)

	// ResetEncryptionState clears the key and deletes the durable salt and
	// PIN hash of userID. Everything encrypted before becomes unrecoverable.
	ResetEncryptionState(ctx context.Context, userID string) error
}

// AuthGate decides per identity whether the key can be restored, must be set
// up or must be unlocked, and drives the corresponding flow.
type AuthGate interface {
	// Begin restores a cached key or tells the caller which PIN flow to run.
	Begin(ctx context.Context, identity models.Identity) (models.AuthStep, error)

	// Setup runs first-time PIN setup and stores the key.
	Setup(ctx context.Context, identity models.Identity, pin string, rememberDevice bool) error

	// Unlock verifies pin unless the user is locked out and stores the key.
	Unlock(ctx context.Context, identity models.Identity, pin string, rememberDevice bool) error

	// Logout clears the resident key, every cached copy of the key of
	// identity and the attempt counter. A running lockout is kept.
	Logout(ctx context.Context, identity models.Identity) error
}

// ProfileService stores absence-form profiles, encrypting their sensitive
// fields whenever a key is resident.
type ProfileService interface {
	Save(ctx context.Context, profile models.Profile) (models.Profile, error)
	Load(ctx context.Context, userID string) (models.Profile, error)
	Delete(ctx context.Context, userID string) error
}

// DocumentService stores generated PDF documents in blob storage.
type DocumentService interface {
	Store(ctx context.Context, userID, fileName string, pdf []byte) (models.Document, error)
	Load(ctx context.Context, userID, id string) (models.Document, []byte, error)
	List(ctx context.Context, userID string) ([]models.Document, error)
	Delete(ctx context.Context, userID, id string) error
}
