// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"

	// DefaultJWTSecret is only fit for local development.
	DefaultJWTSecret = "change-me"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Admin   AdminConfig
	JWT     JWTConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Addr string
}

type StorageConfig struct {
	Backend          string
	DataDir          string
	InventoryFile    string
	TransactionsFile string
	SQLitePath       string
}

type AdminConfig struct {
	Username string
	Password string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// DefaultSecret reports whether tokens are signed with the built-in secret.
func (c JWTConfig) DefaultSecret() bool {
	return c.Secret == DefaultJWTSecret
}

type LoggerConfig struct {
	Level string
	File  string
}

// Load seeds the environment from the given .env files (default ".env"),
// ignoring missing ones, and reads the configuration.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)
	return LoadEnv()
}

// LoadEnv reads the configuration from the environment only.
func LoadEnv() *Config {
	dataDir := getEnv("DATA_DIR", "data")
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Backend:          strings.ToLower(getEnv("STORAGE_BACKEND", BackendCSV)),
			DataDir:          dataDir,
			InventoryFile:    getEnv("INVENTORY_FILE", filepath.Join(dataDir, "inventory.csv")),
			TransactionsFile: getEnv("TRANSACTIONS_FILE", filepath.Join(dataDir, "transactions.csv")),
			SQLitePath:       getEnv("SQLITE_PATH", filepath.Join(dataDir, "clevermart.db")),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "1234"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", DefaultJWTSecret),
			TTL:    getEnvDuration("JWT_TTL", 8*time.Hour),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvDuration accepts Go durations ("90m") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs > 0 {
			return time.Duration(secs) * time.Second
		}
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	return fallback
}
