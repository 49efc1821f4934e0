package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full client configuration surface.
type Config struct {
	API      APIConfig
	Signals  SignalsConfig
	Snapshot SnapshotConfig
}

// APIConfig holds options for reaching the Tabulae REST API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SignalsConfig controls the same-host login/logout broadcast medium.
type SignalsConfig struct {
	Dir          string
	PollInterval time.Duration
}

// SnapshotConfig holds the periodic dashboard snapshot settings.
type SnapshotConfig struct {
	CronSchedule string
	ExportDir    string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	timeoutSeconds, err := getenvInt("TABULAE_HTTP_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}

	pollMillis, err := getenvInt("TABULAE_SIGNAL_POLL_MS", 500)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: os.Getenv("TABULAE_API_URL"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Signals: SignalsConfig{
			Dir:          getenvWithDefault("TABULAE_SIGNAL_DIR", filepath.Join(os.TempDir(), "tabulae-signals")),
			PollInterval: time.Duration(pollMillis) * time.Millisecond,
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("TABULAE_SNAPSHOT_CRON", "0 7 * * *"),
			ExportDir:    getenvWithDefault("TABULAE_EXPORT_DIR", "."),
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.API.BaseURL == "" {
		return errors.New("TABULAE_API_URL must be provided")
	}

	if c.API.Timeout <= 0 {
		return errors.New("TABULAE_HTTP_TIMEOUT_SECONDS must be positive")
	}

	if c.Signals.Dir == "" {
		return errors.New("TABULAE_SIGNAL_DIR must not be empty")
	}

	if c.Signals.PollInterval < 50*time.Millisecond {
		return errors.New("TABULAE_SIGNAL_POLL_MS must be at least 50")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("TABULAE_SNAPSHOT_CRON must be provided")
	}

	if c.Snapshot.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
