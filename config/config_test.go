package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 300, cfg.Server.CacheTTLSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "powercost.db", cfg.Database.DSN)
	assert.Equal(t, 130.0, cfg.Estimator.UnitPrice)
	assert.Equal(t, "KRW", cfg.Estimator.Currency)
	assert.Equal(t, "원", cfg.Estimator.CurrencySymbol)
	assert.Equal(t, "power_cost", cfg.MQTT.TopicPrefix)
	assert.Equal(t, 1, cfg.WorkerPool.Size)
	assert.Equal(t, 16, cfg.WorkerPool.Queue)
}

func TestLoad_KeepsExplicitValues(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  dsn: host=localhost user=power dbname=power
estimator:
  unit_price: 155.5
  currency: USD
  currency_symbol: "$"
mqtt:
  enabled: true
  broker: localhost:1883
  topic_prefix: home/energy
worker_pool:
  size: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=power dbname=power", cfg.Database.DSN)
	assert.Equal(t, 155.5, cfg.Estimator.UnitPrice)
	assert.Equal(t, "$", cfg.Estimator.CurrencySymbol)
	assert.True(t, cfg.MQTT.Enabled)
	assert.Equal(t, "localhost:1883", cfg.MQTT.Broker)
	assert.Equal(t, "home/energy", cfg.MQTT.TopicPrefix)
	assert.Equal(t, 3, cfg.WorkerPool.Size)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
