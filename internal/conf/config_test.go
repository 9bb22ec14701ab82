package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/relaykit/mock-provider/internal/notification"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	require.NotNil(t, settings)

	assert.False(t, settings.Debug)
	assert.True(t, settings.Log.Enabled)
	assert.Equal(t, "mock-provider", settings.Provider.ID)
	assert.NotNil(t, settings.Provider.Credentials)
	assert.NotNil(t, settings.Provider.Options)
}

func TestSaveYAMLConfigRoundTrip(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	settings := defaultSettings()
	settings.Debug = true
	settings.Provider.Options = map[string]any{
		"rateLimit": map[string]any{
			"maxTokens":  200,
			"refillRate": 20,
		},
	}

	require.NoError(t, SaveYAMLConfig(configPath, settings))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	loaded := &Settings{}
	require.NoError(t, yaml.Unmarshal(data, loaded))

	assert.True(t, loaded.Debug)
	assert.Equal(t, "mock-provider", loaded.Provider.ID)
	rateLimit, ok := loaded.Provider.Options["rateLimit"].(map[string]any)
	require.True(t, ok, "rateLimit should survive the round trip as a map")
	assert.Equal(t, 200, rateLimit["maxTokens"])
}

func TestSaveYAMLConfigLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, SaveYAMLConfig(configPath, defaultSettings()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

// A rate limit written to config.yaml must survive the trip through viper
// (which lowercases keys on read) into the provider's resolution.
func TestProviderOptionsResolveRateLimitFromConfigFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`debug: false
provider:
  id: mock-provider
  options:
    rateLimit:
      maxTokens: 200
      refillRate: 25
      refillInterval: minute
`)
	require.NoError(t, os.WriteFile(configPath, content, 0o644))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	settings := &Settings{}
	require.NoError(t, v.Unmarshal(settings))

	cfg := notification.ResolveRateLimit(settings.Provider.Options)
	assert.Equal(t, 200, cfg.MaxTokens)
	assert.InDelta(t, 25, cfg.RefillRate, 0.001)
	assert.Equal(t, notification.IntervalMinute, cfg.RefillInterval)
}

func TestGetDefaultConfigPaths(t *testing.T) {
	t.Parallel()

	paths, err := GetDefaultConfigPaths()
	require.NoError(t, err)
	assert.NotEmpty(t, paths)
}
