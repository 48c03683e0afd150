package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environments that run without object storage.
const (
	EnvLocal = "local"
	EnvTest  = "test"
)

// Config aggregates runtime configuration for the resource API.
type Config struct {
	Environment string
	Server      ServerConfig
	Postgres    PostgresConfig
	MinIO       MinIOConfig
	API         APIConfig
	Metrics     MetricsConfig
}

// StorageEnabled reports whether uploads should reach the object store.
// Local and test deployments keep metadata only.
func (c Config) StorageEnabled() bool {
	return c.Environment != EnvLocal && c.Environment != EnvTest
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// MinIOConfig carries object store connection and bucket information.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	Region          string
}

// APIConfig groups access-control settings.
type APIConfig struct {
	Key string
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Environment: strings.ToLower(getString("APP_ENV", "development")),
		Server: ServerConfig{
			Host:         getString("RESOURCE_API_HOST", "0.0.0.0"),
			Port:         getInt("RESOURCE_API_PORT", 8080),
			ReadTimeout:  getDuration("RESOURCE_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("RESOURCE_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("RESOURCE_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     getString("POSTGRES_HOST", "localhost"),
			Port:     getInt("POSTGRES_PORT", 5432),
			User:     getString("POSTGRES_USER", "postgres"),
			Password: getString("POSTGRES_PASSWORD", "password"),
			Database: getString("POSTGRES_DB", "pack_challenge"),
			SSLMode:  strings.ToLower(getString("POSTGRES_SSL_MODE", "disable")),
		},
		MinIO: MinIOConfig{
			Endpoint:        getString("MINIO_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getString("MINIO_ROOT_USER", "resource-api"),
			SecretAccessKey: getString("MINIO_ROOT_PASSWORD", "change-me-strong-password"),
			Bucket:          getString("MINIO_BUCKET", "pack-challenge-uploads"),
			UseSSL:          getBool("MINIO_USE_SSL", false),
			Region:          getString("MINIO_REGION", "eu-south-1"),
		},
		API: APIConfig{
			Key: getString("API_KEY", "pack-challenge-api-key"),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("RESOURCE_API_METRICS_PATH", "/metrics"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
