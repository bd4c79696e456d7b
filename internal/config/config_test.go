package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
host = "localhost"
port = 9100
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_db_name = "gymlog_db"
redis_host = "localhost"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
session_ttl = "12h"
allowed_origins = ["http://localhost:3000"]

[production]
host = "0.0.0.0"
log_level = "info"
logs_path = "/var/log/gymlog/service"
sentry_enabled = true
postgres_host = "postgres"
postgres_port = "5433"
postgres_db_name = "gymlog_db"
redis_host = "redis"
insights_rate_limit_allowed_per_min = 30
report_cache_size_mb = 64
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL.Duration)
	assert.Equal(t, 60, cfg.InsightsRateLimitAllowedPerMin)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, "5433", cfg.PostgresPort)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL.Duration)
	assert.Equal(t, 30, cfg.InsightsRateLimitAllowedPerMin)
	assert.Equal(t, 64, cfg.ReportCacheSizeMB)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("staging", writeConfig(t))
	assert.Error(t, err)

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "only_dev.toml")
	require.NoError(t, os.WriteFile(path, []byte("[development]\nport = 1\n"), 0o600))
	_, err = Load("prod", path)
	assert.Error(t, err)
}
