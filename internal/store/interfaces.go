package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-absence-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRecordRepository is the durable per-user encryption record: the salt
// and the PIN verification state. It is the source of truth shared by every
// device of the user.
type UserRecordRepository interface {
	// GetEncryptionSalt returns the stored salt or "" when none exists yet.
	GetEncryptionSalt(ctx context.Context, userID string) (string, error)
	// CreateEncryptionSalt writes salt only if the user has none and returns
	// the salt that is stored afterwards (the first writer wins).
	CreateEncryptionSalt(ctx context.Context, userID, salt string) (string, error)
	// GetPinState returns the PIN hash and configured flag. A missing record
	// yields a zero PinState.
	GetPinState(ctx context.Context, userID string) (models.PinState, error)
	// SavePinHash stores hash and marks the PIN as configured.
	SavePinHash(ctx context.Context, userID, hash string) error
	// ClearPinHash removes the hash and the configured flag.
	ClearPinHash(ctx context.Context, userID string) error
	// DeleteEncryptionState drops the whole record of the user.
	DeleteEncryptionState(ctx context.Context, userID string) error
}

// ProfileRepository persists absence-form profiles.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile models.Profile) error
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// DocumentRepository persists metadata of stored documents.
type DocumentRepository interface {
	SaveDocument(ctx context.Context, doc models.Document) error
	GetDocument(ctx context.Context, userID, id string) (models.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]models.Document, error)
	DeleteDocument(ctx context.Context, userID, id string) error
}

// KeyCache stores serialized key wrappers. Get returns [ErrCacheMiss] when
// key is absent or its entry has expired.
type KeyCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// BlobStorage stores opaque binary objects under slash-separated paths.
// Get returns [ErrBlobNotFound] for unknown paths.
type BlobStorage interface {
	Put(ctx context.Context, path string, data []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}
