package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds resume storage settings. Backend selects the
// implementation: "local" keeps files on disk under LocalDir, "s3" talks to
// any S3-compatible object store (MinIO, AWS S3).
type StorageConfig struct {
	Backend   string
	LocalDir  string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds admin session settings. Secret signs the session JWT and
// must be set in production.
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
	CookieName  string
}

// SweepConfig controls the orphaned-resume sweeper. Interval is how often the
// sweep runs; Grace is how old an object must be before it is eligible for
// removal, so uploads that are mid-submission are never touched.
type SweepConfig struct {
	Interval time.Duration
	Grace    time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Sweep    SweepConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "local"),
			LocalDir:  getEnv("STORAGE_LOCAL_DIR", "uploads"),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", ""),
			UseSSL:    getEnvBool("S3_USE_SSL", false),
		},
		Auth: AuthConfig{
			Secret:      getEnv("AUTH_SECRET", ""),
			TokenExpiry: time.Duration(getEnvInt("AUTH_TOKEN_EXPIRY_MIN", 1440)) * time.Minute,
			CookieName:  getEnv("AUTH_COOKIE_NAME", "admin_token"),
		},
		Sweep: SweepConfig{
			Interval: time.Duration(getEnvInt("SWEEP_INTERVAL_MIN", 30)) * time.Minute,
			Grace:    time.Duration(getEnvInt("SWEEP_GRACE_MIN", 60)) * time.Minute,
		},
	}
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
