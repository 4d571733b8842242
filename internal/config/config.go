package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Cache   CacheConfig
	MongoDB MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// APIConfig contains options for the EletroPro backend client.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig selects and configures the local key-value store.
type CacheConfig struct {
	// Backend is one of "memory", "file" or "mongo".
	Backend string
	// FilePath is the JSON file used by the file backend.
	FilePath string
	// SweepSchedule is the cron expression for the stale-entry sweeper.
	SweepSchedule string
}

// MongoDBConfig holds settings for the mongo cache backend.
type MongoDBConfig struct {
	URI    string
	DBName string
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
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	timeout, err := parseTimeout(getenvWithDefault("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		API: APIConfig{
			BaseURL: os.Getenv("API_BASE_URL"),
			Timeout: timeout,
		},
		Cache: CacheConfig{
			Backend:       getenvWithDefault("CACHE_BACKEND", "file"),
			FilePath:      getenvWithDefault("CACHE_FILE_PATH", "eletropro_cache.json"),
			SweepSchedule: getenvWithDefault("CACHE_SWEEP_SCHEDULE", "*/5 * * * *"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "eletropro"),
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

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.API.BaseURL == "" {
		return errors.New("API_BASE_URL must be provided")
	}

	switch c.Cache.Backend {
	case "memory":
	case "file":
		if c.Cache.FilePath == "" {
			return errors.New("CACHE_FILE_PATH must be provided for the file backend")
		}
	case "mongo":
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided for the mongo backend")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, file or mongo, got %q", c.Cache.Backend)
	}

	if c.Cache.SweepSchedule == "" {
		return errors.New("CACHE_SWEEP_SCHEDULE must be provided")
	}

	return nil
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("API_TIMEOUT must be a duration like 15s: %w", err)
	}
	if d <= 0 {
		return 0, errors.New("API_TIMEOUT must be positive")
	}
	return d, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
