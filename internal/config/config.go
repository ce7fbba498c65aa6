// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Supported values of [Blob.Backend].
const (
	BlobBackendFile = "file"
	BlobBackendS3   = "s3"
)

// StructuredConfig is the top-level configuration container for the
// go-absence-keeper application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level cryptographic settings.
	App App `envPrefix:"APP_"`

	// Security holds key lifetime and unlock throttling settings.
	Security Security `envPrefix:"SECURITY_"`

	// Storage holds configuration for all persistence backends: the durable
	// record database, blob storage, and the device key cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the backend-as-a-service REST API. When
	// BaseURL is empty the durable per-user record is kept in the database.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Session holds the presented identity and per-run user preferences.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded into the process
	// environment before env parsing. Env: DOTENV
	DotEnvPath string `env:"DOTENV"`

	// Args holds the positional command-line arguments left after flag
	// parsing (subcommand and its operands).
	Args []string
}

// App holds application-level cryptographic settings.
type App struct {
	// MasterKey keys the general-purpose text helper used to wrap device
	// cache entries. Optional; must be kept confidential.
	// Env: APP_MASTER_KEY
	MasterKey string `env:"MASTER_KEY"`

	// KDFIterations is the PBKDF2 iteration count. Must be at least 10000.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level written to the log file
	// ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Security holds key lifetime and unlock throttling settings.
type Security struct {
	// MaxAttempts is the number of failed unlocks before lockout.
	// Env: SECURITY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// LockoutWindow is how long unlocking stays blocked after MaxAttempts.
	// Env: SECURITY_LOCKOUT_WINDOW
	LockoutWindow time.Duration `env:"LOCKOUT_WINDOW"`

	// KeyTTL is the lifetime of a freshly cached key.
	// Env: SECURITY_KEY_TTL
	KeyTTL time.Duration `env:"KEY_TTL"`

	// SlidingWindow is the expiry extension granted on device-cache restore.
	// Env: SECURITY_SLIDING_WINDOW
	SlidingWindow time.Duration `env:"SLIDING_WINDOW"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Blob selects the blob storage backend for generated documents.
	Blob Blob `envPrefix:"BLOB_"`

	// Files holds the file-system blob storage settings.
	Files Files `envPrefix:"FILES_"`

	// S3 holds the S3-compatible blob storage settings.
	S3 S3 `envPrefix:"S3_"`

	// Cache holds the device key cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a file path for SQLite or a PostgreSQL
	// connection URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blob selects the blob storage backend.
type Blob struct {
	// Backend is "file" or "s3".
	// Env: STORAGE_BLOB_BACKEND
	Backend string `env:"BACKEND"`
}

// Files holds file-system settings for the document blob store.
type Files struct {
	// BinaryDataDir is the directory where (encrypted) documents are stored.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// S3 holds settings of an S3-compatible object store.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE"`
}

// Cache holds the device key cache settings.
type Cache struct {
	// DeviceDir is the directory of the on-disk device key cache.
	// Env: STORAGE_CACHE_DEVICE_DIR
	DeviceDir string `env:"DEVICE_DIR"`
}

// Adapter holds settings of the backend-as-a-service REST API.
type Adapter struct {
	// BaseURL is the REST endpoint root (e.g. "https://xyz.supabase.co/rest/v1").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the public (anon) API key sent with every request.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// CacheGCInterval is how often the device cache runs value-log GC.
	// Env: WORKERS_CACHE_GC_INTERVAL
	CacheGCInterval time.Duration `env:"CACHE_GC_INTERVAL"`
}

// Session holds the identity presented to the encryption core and the
// user's preferences for this run.
type Session struct {
	// Token is the identity provider access token (JWT) of the signed-in
	// user. Its "sub" and "email" claims form the identity; it is also sent
	// as bearer token to the REST backend.
	// Env: SESSION_TOKEN
	Token string `env:"TOKEN"`

	// RememberDevice keeps the unlocked key in the device cache.
	// Env: SESSION_REMEMBER_DEVICE
	RememberDevice bool `env:"REMEMBER_DEVICE"`

	// Locale selects the language of user-facing messages (e.g. "de-DE").
	// Env: SESSION_LOCALE
	Locale string `env:"LOCALE"`
}

// Defaults returns the built-in configuration every other source is merged
// onto.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFIterations: 10000,
			LogLevel:      "info",
		},
		Security: Security{
			MaxAttempts:   10,
			LockoutWindow: 5 * time.Minute,
			KeyTTL:        90 * 24 * time.Hour,
			SlidingWindow: 10 * 24 * time.Hour,
		},
		Storage: Storage{
			DB:    DB{Driver: DriverSQLite, DSN: "absence-keeper.db"},
			Blob:  Blob{Backend: BlobBackendFile},
			Files: Files{BinaryDataDir: "documents"},
			Cache: Cache{DeviceDir: "device-cache"},
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			CacheGCInterval: 10 * time.Minute,
		},
		Session: Session{
			Locale: "en",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables (after loading the optional .env file)
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
