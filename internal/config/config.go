package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrMissing indicates a required configuration value is absent.
// It is fatal at startup and never retried.
var ErrMissing = errors.New("configuration error")

// MinIOConfig holds object storage settings for the S3-compatible backend.
// AccessKey/SecretKey are optional; when empty, credential resolution falls
// back to the provider chain (environment, shared credentials file, IAM).
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables exactly once at startup;
// nothing re-reads the environment mid-operation.
type AppConfig struct {
	Port  string
	Store MinIOConfig
}

// Load reads configuration from environment variables and validates the
// required values. A .env file can be auto-loaded by importing
// _ "github.com/joho/godotenv/autoload"; real environment variables take
// precedence.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port: getEnv("PORT", "8080"),
		Store: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Region:    getEnv("MINIO_REGION", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
	if cfg.Store.Endpoint == "" {
		return nil, fmt.Errorf("%w: MINIO_ENDPOINT is not set", ErrMissing)
	}
	if cfg.Store.Bucket == "" {
		return nil, fmt.Errorf("%w: MINIO_BUCKET is not set", ErrMissing)
	}
	return cfg, nil
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
