package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "profileData", cfg.Storage.Key)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.GeminiModel)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  port: \"9000\"\nstorage:\n  driver: redis\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("APP_PORT", "9100")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.App.Port)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "secret", cfg.AI.GeminiAPIKey)
}
