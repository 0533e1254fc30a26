package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/migratio/contentcatalog/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultContentDir, cfg.ContentDir)
	assert.Equal(t, DefaultAssetRoot, cfg.AssetRoot)
	assert.Equal(t, DefaultCompileWorkers, cfg.CompileWorkers)
	assert.Equal(t, DefaultCompileTimeout, cfg.CompileTimeout)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_CONTENT_DIR", "/srv/content")
	t.Setenv("CATALOG_COMPILE_WORKERS", "8")
	t.Setenv("CATALOG_COMPILE_TIMEOUT", "30s")
	t.Setenv("CATALOG_LOG_LEVEL", "debug")
	t.Setenv("CATALOG_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/content", cfg.ContentDir)
	assert.Equal(t, 8, cfg.CompileWorkers)
	assert.Equal(t, 30*time.Second, cfg.CompileTimeout)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoad_InvalidWorkers(t *testing.T) {
	t.Setenv("CATALOG_COMPILE_WORKERS", "zero")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, cerrors.CategoryConfig, cerrors.CategoryOf(err))
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CATALOG_COMPILE_TIMEOUT", "-5s")

	_, err := Load()
	require.Error(t, err)
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel("warning"))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel(""))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("nonsense"))
}

func TestBuildLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := BuildLogger(Config{LogLevel: LogLevelInfo, LogFormat: LogFormatJSON}, &buf)
	logger.Info("hello", slog.String("k", "v"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestBuildLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := BuildLogger(Config{LogLevel: LogLevelError, LogFormat: LogFormatText}, &buf)
	logger.Info("dropped")
	assert.Empty(t, buf.String())
	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}
