// Package config loads catalog configuration from the environment, with
// optional .env/.env.local files for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	cerrors "github.com/migratio/contentcatalog/errors"
)

// Defaults.
const (
	DefaultContentDir     = "content"
	DefaultAssetRoot      = "/images"
	DefaultCompileWorkers = 4
	DefaultCompileTimeout = 10 * time.Second
)

// Config holds process-wide catalog settings.
type Config struct {
	// ContentDir is the directory containing one subdirectory per category
	// root (e.g. content/skilled, content/corporate).
	ContentDir string

	// AssetRoot prefixes normalized hero asset references.
	AssetRoot string

	// CompileWorkers bounds the per-document section compilation fan-out.
	CompileWorkers int

	// CompileTimeout bounds a single document's compilation fan-in.
	CompileTimeout time.Duration

	LogLevel  LogLevel
	LogFormat LogFormat
}

// Load reads configuration from CATALOG_* environment variables.
// A .env or .env.local file is loaded first when present; existing process
// environment always wins.
func Load() (Config, error) {
	loadEnvFiles()

	cfg := Config{
		ContentDir:     envOr("CATALOG_CONTENT_DIR", DefaultContentDir),
		AssetRoot:      envOr("CATALOG_ASSET_ROOT", DefaultAssetRoot),
		CompileWorkers: DefaultCompileWorkers,
		CompileTimeout: DefaultCompileTimeout,
		LogLevel:       NormalizeLogLevel(os.Getenv("CATALOG_LOG_LEVEL")),
		LogFormat:      NormalizeLogFormat(os.Getenv("CATALOG_LOG_FORMAT")),
	}

	if raw := os.Getenv("CATALOG_COMPILE_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Config{}, cerrors.ConfigInvalid("CATALOG_COMPILE_WORKERS", "must be a positive integer")
		}
		cfg.CompileWorkers = n
	}
	if raw := os.Getenv("CATALOG_COMPILE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, cerrors.ConfigInvalid("CATALOG_COMPILE_TIMEOUT", "must be a positive duration")
		}
		cfg.CompileTimeout = d
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFiles loads .env then .env.local when present. godotenv never
// overrides variables already set in the process environment.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}
