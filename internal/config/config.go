package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config aggregates runtime settings for the CLI and the TUI
type Config struct {
	DataDir    string
	Storage    string
	DBPath     string
	SeedSample bool
	Logger     LoggerConfig
	Profile    ProfileConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
	File     string
}

// ProfileConfig is the user card shown on the profile tab
type ProfileConfig struct {
	Name  string
	Role  string
	Email string
	Phone string
}

// Load reads configuration from environment variables (optionally .env)
// and fills defaults relative to the data directory.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	dataDir := os.Getenv("DIALR_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".dialr")
	}

	cfg := &Config{
		DataDir:    dataDir,
		Storage:    strings.ToLower(getString("DIALR_STORAGE", StorageSQLite)),
		DBPath:     getString("DIALR_DB_PATH", filepath.Join(dataDir, "dialr.db")),
		SeedSample: getBool("DIALR_SEED_SAMPLE", true),
		Logger: LoggerConfig{
			Level:    getString("DIALR_LOG_LEVEL", "info"),
			Encoding: getString("DIALR_LOG_ENCODING", "json"),
			File:     getString("DIALR_LOG_FILE", filepath.Join(dataDir, "dialr.log")),
		},
		Profile: ProfileConfig{
			Name:  getString("DIALR_PROFILE_NAME", "John Doe"),
			Role:  getString("DIALR_PROFILE_ROLE", "Sales Representative"),
			Email: getString("DIALR_PROFILE_EMAIL", "john.doe@company.com"),
			Phone: getString("DIALR_PROFILE_PHONE", "+1 (555) 123-4567"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("invalid DIALR_STORAGE %q, use %s or %s", c.Storage, StorageSQLite, StorageMemory)
	}
	if c.Storage == StorageSQLite && c.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
