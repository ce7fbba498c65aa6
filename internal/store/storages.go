package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

// Storages groups every persistence backend the services depend on.
type Storages struct {
	DB           *DB
	UserRecords  UserRecordRepository
	Profiles     ProfileRepository
	Documents    DocumentRepository
	SessionCache KeyCache
	DeviceCache  *DeviceKeyCache
	Blobs        BlobStorage
}

// NewStorages opens the database (running migrations), the device cache and
// the configured blob backend. cipher optionally wraps device cache entries.
func NewStorages(ctx context.Context, cfg config.Storage, cipher crypto.TextEncrypter, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	deviceCache, err := NewDeviceKeyCache(cfg.Cache.DeviceDir, cipher, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	blobs, err := newBlobStorage(ctx, cfg, log)
	if err != nil {
		_ = deviceCache.Close()
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:           db,
		UserRecords:  NewUserRecordRepository(db, log),
		Profiles:     NewProfileRepository(db, log),
		Documents:    NewDocumentRepository(db, log),
		SessionCache: NewSessionKeyCache(),
		DeviceCache:  deviceCache,
		Blobs:        blobs,
	}, nil
}

func newBlobStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (BlobStorage, error) {
	switch cfg.Blob.Backend {
	case config.BlobBackendS3:
		return NewS3BlobStorage(ctx, cfg.S3, log)
	case config.BlobBackendFile, "":
		return NewFileBlobStorage(cfg.Files.BinaryDataDir, log)
	default:
		return nil, fmt.Errorf("unsupported blob backend %q", cfg.Blob.Backend)
	}
}

// Close releases the device cache and the database connection.
func (s *Storages) Close() error {
	var errs []error
	if s.DeviceCache != nil {
		errs = append(errs, s.DeviceCache.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
