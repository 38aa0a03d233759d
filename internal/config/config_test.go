package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StorageDriverPostgres, cfg.Storage.Name())
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, time.Minute, cfg.Scheduler.Interval)
	assert.Equal(t, 5*time.Second, cfg.Psql.LockTimeout)
	assert.True(t, decimal.RequireFromString("0.05").Equal(cfg.Pricing.CostPerClick))
	assert.True(t, decimal.RequireFromString("2").Equal(cfg.Pricing.CostPerImpression))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SCHEDULER_INTERVAL", "30s")
	t.Setenv("PSQL_LOCK_TIMEOUT", "250ms")
	t.Setenv("PRICING_COST_PER_CLICK", "0.07")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, configs.StorageDriverMemory, cfg.Storage.Name())
	assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 250*time.Millisecond, cfg.Psql.LockTimeout)
	assert.True(t, decimal.RequireFromString("0.07").Equal(cfg.Pricing.Domain().CostPerClick))
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "unknown driver", key: "STORAGE_DRIVER", value: "sqlite"},
		{name: "interval too short", key: "SCHEDULER_INTERVAL", value: "10ms"},
		{name: "negative price", key: "PRICING_COST_PER_VIEW", value: "-1"},
		{name: "unparsable price", key: "PRICING_COST_PER_VIEW", value: "cheap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoggerNew(t *testing.T) {
	var buf bytes.Buffer
	log := configs.Logger{Level: "warn", Format: "json"}.New(&buf, "dev")

	log.Info("dropped")
	log.Warn("kept", slog.String("brand_id", "b1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "dev", rec["env"])
	assert.Equal(t, "adspend", rec["service"])
	assert.Equal(t, "b1", rec["brand_id"])
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelError, configs.Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "loud"}.SlogLevel())
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
}
