package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, "fleet:\n  seed: true\n")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.True(t, cfg.Database.ShouldAutoMigrate())
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.Fleet.UpcomingWindow)
	assert.True(t, cfg.Fleet.ShouldSeed())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8080
  grpc_address: localhost:8081
fleet:
  seed: false
  upcoming_window: 72h
logging:
  level: debug
  format: json
metrics:
  enabled: true
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
	assert.Equal(t, "localhost:8081", cfg.Server.GRPCAddress)
	assert.False(t, cfg.Fleet.ShouldSeed())
	assert.Equal(t, 72*time.Hour, cfg.Fleet.UpcomingWindow)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_PortEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")
	t.Setenv("PORT", "5055")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 5055, cfg.Server.Port)
}

func TestLoadConfig_PrefixedEnv(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("SHIPFIX_LOGGING_LEVEL", "warn")
	t.Setenv("SHIPFIX_SERVER_PORT", "6060")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoadConfig_InvalidValuesAreReported(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoadConfig_InvalidPortEnv(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("PORT", "not-a-port")

	_, err := config.LoadConfig(path)

	assert.Error(t, err)
}

func TestValidateConfig_FileOutputNeedsPath(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Logging.Output = "file"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.file_path")
}
