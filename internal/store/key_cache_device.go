// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

// DeviceKeyCache is the persistent [KeyCache] backed by an embedded Badger
// database. Entries expire through Badger's native TTL. When a
// [crypto.TextEncrypter] is configured, values are wrapped with it at rest.
type DeviceKeyCache struct {
	db     *badger.DB
	cipher crypto.TextEncrypter
	logger *logger.Logger
}

// NewDeviceKeyCache opens (or creates) the cache in dir. An empty dir opens
// an in-memory instance. cipher may be nil.
func NewDeviceKeyCache(dir string, cipher crypto.TextEncrypter, log *logger.Logger) (*DeviceKeyCache, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(logger.NewBadgerLogger(log))

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewDeviceKeyCache").Str("dir", dir).Msg("error opening device cache")
		return nil, fmt.Errorf("error opening device cache: %w", err)
	}

	log.Debug().Str("func", "NewDeviceKeyCache").Bool("wrapped", cipher != nil).Msg("device cache opened")

	return &DeviceKeyCache{
		db:     db,
		cipher: cipher,
		logger: log,
	}, nil
}

// Get implements [KeyCache]. A value that the configured cipher cannot unwrap
// is treated as a miss.
func (c *DeviceKeyCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("error reading device cache: %w", err)
	}

	if c.cipher == nil {
		return value, nil
	}

	plain, err := c.cipher.DecryptText(string(value))
	if err != nil {
		return nil, fmt.Errorf("error unwrapping device cache entry: %w", err)
	}
	if plain == "" {
		logger.FromContext(ctx).Warn().
			Str("func", "DeviceKeyCache.Get").
			Msg("device cache entry could not be unwrapped, ignoring it")
		return nil, ErrCacheMiss
	}

	return []byte(plain), nil
}

// Set implements [KeyCache]. A non-positive ttl stores the entry without
// expiry.
func (c *DeviceKeyCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.cipher != nil {
		wrapped, err := c.cipher.EncryptText(string(value))
		if err != nil {
			return fmt.Errorf("error wrapping device cache entry: %w", err)
		}
		value = []byte(wrapped)
	}

	entry := badger.NewEntry([]byte(key), value)
	if ttl > 0 {
		entry = entry.WithTTL(ttl)
	}

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	}); err != nil {
		return fmt.Errorf("error writing device cache: %w", err)
	}

	return nil
}

// Delete implements [KeyCache].
func (c *DeviceKeyCache) Delete(_ context.Context, key string) error {
	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("error deleting device cache entry: %w", err)
	}
	return nil
}

// RunGC reclaims value-log space until Badger reports nothing left to
// rewrite.
func (c *DeviceKeyCache) RunGC() error {
	for {
		err := c.db.RunValueLogGC(0.5)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		default:
			return fmt.Errorf("error running device cache gc: %w", err)
		}
	}
}

// Close flushes and closes the underlying database.
func (c *DeviceKeyCache) Close() error {
	return c.db.Close()
}
