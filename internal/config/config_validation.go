// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// minKDFIterations mirrors crypto.MinIterations.
const minKDFIterations = 10000

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations != 0 && cfg.App.KDFIterations < minKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidAppConfigs, cfg.App.KDFIterations, minKDFIterations)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Security.MaxAttempts < 0 || cfg.Security.LockoutWindow < 0 ||
		cfg.Security.KeyTTL < 0 || cfg.Security.SlidingWindow < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidSecurityConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.Driver != "" && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Blob.Backend {
	case "":
	case BlobBackendFile:
		if cfg.Storage.Files.BinaryDataDir == "" {
			return fmt.Errorf("%w: empty binary data dir", ErrInvalidStorageConfigs)
		}
	case BlobBackendS3:
		if cfg.Storage.S3.Bucket == "" || cfg.Storage.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob backend %q", ErrInvalidStorageConfigs, cfg.Storage.Blob.Backend)
	}

	if cfg.Adapter.BaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.Adapter.BaseURL); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
		}
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
	}

	if cfg.Workers.CacheGCInterval < 0 {
		return fmt.Errorf("%w: negative cache gc interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
