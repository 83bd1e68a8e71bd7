package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Worker    WorkerConfig
	Ingestion IngestionConfig
	API       APIConfig
	DB        DatabaseConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type IngestionConfig struct {
	Enabled         bool
	BaseURL         string
	RefreshInterval time.Duration
}

type APIConfig struct {
	RateLimitRPS int
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 32),
		},
		Ingestion: IngestionConfig{
			Enabled:         getEnvBool("INGESTION_ENABLED", true),
			BaseURL:         getEnv("OPENMETEO_URL", "https://api.open-meteo.com/v1/forecast"),
			RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 30*time.Minute),
		},
		API: APIConfig{
			RateLimitRPS: getEnvInt("API_RATE_LIMIT_RPS", 5),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/nearest-nice-weather.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Ingestion.RefreshInterval < time.Minute {
		return fmt.Errorf("refresh interval must be at least 1 minute")
	}

	if c.API.RateLimitRPS < 1 {
		return fmt.Errorf("invalid API rate limit: %d", c.API.RateLimitRPS)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
