package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/logging"
)

func TestNewHandler_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, config.LoggingConfig{Level: "warn", Format: "json"}))

	logger.Info("hidden")
	logger.Warn("shown", "vessel_id", "bq-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "bq-1", entry["vessel_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("bogus"))
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipfix.log")

	logger, closer, err := logging.NewLogger(config.LoggingConfig{
		Level: "info", Format: "text", Output: "file", FilePath: path,
	})
	require.NoError(t, err)
	logger.Info("written")

	assert.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
