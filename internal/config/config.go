package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr           = ":8080"
	defaultDatabaseURL    = "snapstream.db"
	defaultSessionTTL     = "12h"
	defaultUploadDir      = "./static/uploads"
	defaultStorageBackend = "disk"
	defaultCookieSecure   = "false"
	defaultSessionSecret  = "change-me-session-secret"
)

const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	StorageBackend string
	UploadDir      string
	S3Region       string
	S3Bucket       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))

	var err error
	cfg.CookieSecure, err = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", defaultStorageBackend)))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.S3Region = strings.TrimSpace(os.Getenv("S3_REGION"))
	cfg.S3Bucket = strings.TrimSpace(os.Getenv("S3_BUCKET"))
	cfg.S3Endpoint = strings.TrimSpace(os.Getenv("S3_ENDPOINT"))
	cfg.S3AccessKey = strings.TrimSpace(os.Getenv("S3_ACCESS_KEY"))
	cfg.S3SecretKey = strings.TrimSpace(os.Getenv("S3_SECRET_KEY"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	switch cfg.StorageBackend {
	case StorageDisk:
		if cfg.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case StorageS3:
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when STORAGE_BACKEND=s3")
		}
		if cfg.S3Region == "" {
			return fmt.Errorf("S3_REGION must be set when STORAGE_BACKEND=s3")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: disk, s3")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.SessionSecret == "" || cfg.SessionSecret == defaultSessionSecret {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	switch env {
	case "prod", "production", "release":
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, raw)
	}
	return v, nil
}
