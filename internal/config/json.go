package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are written as strings ("5m", "2160h").
type StructuredJSONConfig struct {
	App struct {
		MasterKey     string `json:"master_key"`
		KDFIterations int    `json:"kdf_iterations"`
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Security struct {
		MaxAttempts   int      `json:"max_attempts"`
		LockoutWindow Duration `json:"lockout_window"`
		KeyTTL        Duration `json:"key_ttl"`
		SlidingWindow Duration `json:"sliding_window"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Backend string `json:"backend"`
		} `json:"blob,omitempty"`

		Files struct {
			BinaryDataDir string `json:"binary_data_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`

		Cache struct {
			DeviceDir string `json:"device_dir"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CacheGCInterval Duration `json:"cache_gc_interval"`
	} `json:"workers,omitempty"`

	Session struct {
		RememberDevice bool   `json:"remember_device"`
		Locale         string `json:"locale"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			MasterKey:     jsonCfg.App.MasterKey,
			KDFIterations: jsonCfg.App.KDFIterations,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Security: Security{
			MaxAttempts:   jsonCfg.Security.MaxAttempts,
			LockoutWindow: time.Duration(jsonCfg.Security.LockoutWindow),
			KeyTTL:        time.Duration(jsonCfg.Security.KeyTTL),
			SlidingWindow: time.Duration(jsonCfg.Security.SlidingWindow),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Backend: jsonCfg.Storage.Blob.Backend,
			},
			Files: Files{
				BinaryDataDir: jsonCfg.Storage.Files.BinaryDataDir,
			},
			S3: S3{
				Bucket:          jsonCfg.Storage.S3.Bucket,
				Region:          jsonCfg.Storage.S3.Region,
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
				UsePathStyle:    jsonCfg.Storage.S3.UsePathStyle,
			},
			Cache: Cache{
				DeviceDir: jsonCfg.Storage.Cache.DeviceDir,
			},
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			APIKey:         jsonCfg.Adapter.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CacheGCInterval: time.Duration(jsonCfg.Workers.CacheGCInterval),
		},
		Session: Session{
			RememberDevice: jsonCfg.Session.RememberDevice,
			Locale:         jsonCfg.Session.Locale,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
