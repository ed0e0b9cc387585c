package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "PORT", "LOG_DIR", "LOG_LEVEL", "LOG_FORMAT",
	"KAFKA_BROKERS", "KAFKA_BROKER", "KAFKA_GROUP_ID", "KAFKA_INBOUND_TOPIC", "KAFKA_OUTBOUND_TOPIC",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY_PREFIX",
	"JWT_SECRET", "JWT_PUBLIC_KEY", "BADGE_REFRESH_INTERVAL", "BADGE_LOCALE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "listings.hours", cfg.Kafka.InboundTopic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, time.Minute, cfg.Badge.RefreshInterval)
	assert.Equal(t, "es", cfg.Badge.Locale)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
kafka:
  brokers: ["kafka-1:9092", "kafka-2:9092"]
  inboundTopic: directorio.horarios
redis:
  addr: redis:6379
  db: 2
badge:
  refreshInterval: 30s
  locale: en
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "directorio.horarios", cfg.Kafka.InboundTopic)
	assert.Equal(t, "hours.updated", cfg.Kafka.OutboundTopic)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Badge.RefreshInterval)
	assert.Equal(t, "en", cfg.Badge.Locale)
	assert.Equal(t, "s3cret", cfg.Security.JWTSecret)
}

func TestLoadBrokerFallbackAndErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("KAFKA_BROKER", " kafka:9092 , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)

	t.Setenv("BADGE_REFRESH_INTERVAL", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "BADGE_REFRESH_INTERVAL")

	t.Setenv("BADGE_REFRESH_INTERVAL", "100ms")
	_, err = Load()
	assert.ErrorContains(t, err, "below 1s")

	t.Setenv("BADGE_REFRESH_INTERVAL", "")
	t.Setenv("REDIS_DB", "zero")
	_, err = Load()
	assert.ErrorContains(t, err, "REDIS_DB")

	t.Setenv("REDIS_DB", "")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load()
	assert.ErrorContains(t, err, "reading config file")
}
