package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Args)
				cfg.Args = nil
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "storage flags",
			args: []string{"-d", "postgres://localhost/db", "-driver", "pgx", "-f", "/srv/docs", "-blob", "s3",
				"-s3-bucket", "b", "-s3-region", "eu-west-1", "-s3-endpoint", "http://minio:9000", "-cache-dir", "/tmp/c"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
				assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
				assert.Equal(t, "/srv/docs", cfg.Storage.Files.BinaryDataDir)
				assert.Equal(t, BlobBackendS3, cfg.Storage.Blob.Backend)
				assert.Equal(t, "b", cfg.Storage.S3.Bucket)
				assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
				assert.Equal(t, "http://minio:9000", cfg.Storage.S3.Endpoint)
				assert.Equal(t, "/tmp/c", cfg.Storage.Cache.DeviceDir)
			},
		},
		{
			name: "security flags",
			args: []string{"-kdf-iterations", "12000", "-max-attempts", "3", "-lockout-window", "1m",
				"-key-ttl", "24h", "-sliding-window", "2h", "-master-key", "m"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 12000, cfg.App.KDFIterations)
				assert.Equal(t, "m", cfg.App.MasterKey)
				assert.Equal(t, 3, cfg.Security.MaxAttempts)
				assert.Equal(t, time.Minute, cfg.Security.LockoutWindow)
				assert.Equal(t, 24*time.Hour, cfg.Security.KeyTTL)
				assert.Equal(t, 2*time.Hour, cfg.Security.SlidingWindow)
			},
		},
		{
			name: "adapter and workers",
			args: []string{"-api-url", "https://x.example/rest/v1", "-api-key", "k", "-request-timeout", "3s", "-gc-interval", "1m"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://x.example/rest/v1", cfg.Adapter.BaseURL)
				assert.Equal(t, "k", cfg.Adapter.APIKey)
				assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.Workers.CacheGCInterval)
			},
		},
		{
			name: "session flags",
			args: []string{"-token", "eyJ.x.y", "-remember", "-locale", "de-DE"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "eyJ.x.y", cfg.Session.Token)
				assert.True(t, cfg.Session.RememberDevice)
				assert.Equal(t, "de-DE", cfg.Session.Locale)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/ak.json", "-env", "/etc/ak.env"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/ak.json", cfg.JSONFilePath)
				assert.Equal(t, "/etc/ak.env", cfg.DotEnvPath)
			},
		},
		{
			name: "positional args kept",
			args: []string{"-d", "a.db", "unlock", "--remember"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "a.db", cfg.Storage.DB.DSN)
				assert.Equal(t, []string{"unlock", "--remember"}, cfg.Args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "bad duration", args: []string{"-key-ttl", "forever"}},
		{name: "bad int", args: []string{"-max-attempts", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
