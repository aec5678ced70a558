package config

import (
	"os"
	"strconv"

	"github.com/yago/fileuploadd/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application.
// It is built once at startup and read-only thereafter.
type Config struct {
	Server      ServerConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	FileStorage FileStorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// FileStorageConfig holds upload validation and backend selection settings
type FileStorageConfig struct {
	// Backend selects the metadata store: "postgres" (default) or "redis".
	Backend string
	// MaxSizeMB caps a single upload; the effective byte limit is
	// MaxSizeMB * 1024 * 1024.
	MaxSizeMB int64
	// MaxRequestMB caps the whole request body at the transport level;
	// exceeding it yields 413 before validation runs.
	MaxRequestMB int64
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "fileuploadd"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		FileStorage: FileStorageConfig{
			Backend:      getEnv("FILE_STORAGE_BACKEND", "postgres"),
			MaxSizeMB:    getEnvInt64("FILE_MAX_SIZE_MB", 100000), // default 10MB
			MaxRequestMB: getEnvInt64("FILE_MAX_REQUEST_MB", 2048),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt64 reads an integer environment variable or returns a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
