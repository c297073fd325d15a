package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// ClientID scopes persisted cart snapshots. Generated at startup when
	// empty.
	ClientID string

	// SnapshotPath is where the file-backed snapshot store writes. Ignored
	// when PostgresDSN is set.
	SnapshotPath string
	PostgresDSN  string

	// ContentURL is the base URL of the hosted content API. When empty the
	// static in-memory catalog is served instead.
	ContentURL     string
	ContentDataset string
}

func Load() Config {
	// Best effort: a missing .env just means plain env vars.
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		ClientID:       getEnv("CLIENT_ID", ""),
		SnapshotPath:   getEnv("CART_SNAPSHOT_PATH", "cart-snapshot.json"),
		PostgresDSN:    getEnv("POSTGRES_DSN", ""),
		ContentURL:     getEnv("CONTENT_URL", ""),
		ContentDataset: getEnv("CONTENT_DATASET", "production"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
