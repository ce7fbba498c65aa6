package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses configuration flags from args (without the program name).
// Unknown flags are an error. Positional arguments after the flags are kept in
// [StructuredConfig.Args] for subcommand dispatch.
//
// Flags:
//
//	-d database DSN
//	-driver database driver (sqlite3 | pgx)
//	-f document storage directory
//	-blob blob backend (file | s3)
//	-s3-bucket / -s3-region / -s3-endpoint S3 settings
//	-cache-dir device key cache directory
//	-c/-config json file path with configs
//	-env .env file path
//	-master-key text cipher master key
//	-kdf-iterations PBKDF2 iteration count
//	-max-attempts failed unlocks before lockout
//	-lockout-window lockout duration (e.g., "5m")
//	-key-ttl cached key lifetime (e.g., "2160h")
//	-sliding-window device cache extension (e.g., "240h")
//	-api-url REST backend base URL
//	-api-key REST backend API key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-gc-interval device cache GC interval
//	-log-level minimum log level (debug|info|warn|error)
//	-token identity provider access token
//	-remember keep the unlocked key in the device cache
//	-locale language of user-facing messages
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("absence-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (sqlite3|pgx)")
	fs.StringVar(&cfg.Storage.Files.BinaryDataDir, "f", "", "Document storage directory")
	fs.StringVar(&cfg.Storage.Blob.Backend, "blob", "", "Blob backend (file|s3)")
	fs.StringVar(&cfg.Storage.S3.Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&cfg.Storage.S3.Region, "s3-region", "", "S3 region")
	fs.StringVar(&cfg.Storage.S3.Endpoint, "s3-endpoint", "", "S3 endpoint override")
	fs.StringVar(&cfg.Storage.Cache.DeviceDir, "cache-dir", "", "Device key cache directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.DotEnvPath, "env", "", ".env file path")
	fs.StringVar(&cfg.App.MasterKey, "master-key", "", "Text cipher master key")
	fs.IntVar(&cfg.App.KDFIterations, "kdf-iterations", 0, "PBKDF2 iterations")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.IntVar(&cfg.Security.MaxAttempts, "max-attempts", 0, "Failed unlocks before lockout")
	fs.DurationVar(&cfg.Security.LockoutWindow, "lockout-window", 0, "Lockout duration (e.g., 5m)")
	fs.DurationVar(&cfg.Security.KeyTTL, "key-ttl", 0, "Cached key lifetime (e.g., 2160h)")
	fs.DurationVar(&cfg.Security.SlidingWindow, "sliding-window", 0, "Device cache extension (e.g., 240h)")
	fs.StringVar(&cfg.Adapter.BaseURL, "api-url", "", "REST backend base URL")
	fs.StringVar(&cfg.Adapter.APIKey, "api-key", "", "REST backend API key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Workers.CacheGCInterval, "gc-interval", 0, "Device cache GC interval")
	fs.StringVar(&cfg.Session.Token, "token", "", "Identity provider access token")
	fs.BoolVar(&cfg.Session.RememberDevice, "remember", false, "Remember the unlocked key on this device")
	fs.StringVar(&cfg.Session.Locale, "locale", "", "Language of user-facing messages")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Args = fs.Args()

	return cfg, nil
}
