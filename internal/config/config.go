package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the image archive.
// The archive is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an archive endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port          string
	Env           string
	BodyLimitMB   int
	StorageDriver string
	Database      DatabaseConfig
	MinIO         MinIOConfig
}

// ErrDatabaseURLMissing is returned by Load when the postgres driver is
// selected without a connection string.
var ErrDatabaseURLMissing = errors.New("DATABASE_URL must be set. Did you forget to provision a database?")

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// An unset APP_ENV and NODE_ENV means production, so error details stay
// hidden unless development is asked for.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("APP_ENV", getEnv("NODE_ENV", EnvProduction)),
		BodyLimitMB:   getEnvInt("BODY_LIMIT_MB", 50),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverPostgres),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV %q: want %q or %q", c.Env, EnvDevelopment, EnvProduction)
	}
	switch c.StorageDriver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return ErrDatabaseURLMissing
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: want %q or %q", c.StorageDriver, DriverPostgres, DriverMemory)
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("invalid BODY_LIMIT_MB %d: must be positive", c.BodyLimitMB)
	}
	return nil
}

// IsDevelopment reports whether verbose error details may be returned to clients.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// BodyLimitBytes is the request body cap handed to the HTTP server.
func (c *AppConfig) BodyLimitBytes() int {
	return c.BodyLimitMB * 1024 * 1024
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
