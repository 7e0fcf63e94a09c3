package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/config"
	"github.com/alejandrodnm/cyhole/jupiter"
	solscanv2 "github.com/alejandrodnm/cyhole/solscan/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{birdeye.KeyEnv, jupiter.KeyEnv, solscanv2.KeyEnv, "CYHOLE_MOCK", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "solana", cfg.Birdeye.Chain)
	assert.Equal(t, "cyhole.db", cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Tracker.Concurrency)
	assert.Equal(t, 5.0, cfg.Tracker.RatePerSec)
	assert.False(t, cfg.Mock.Enabled)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
providers:
  birdeye:
    api_key: yaml-key
    timeout_seconds: 3
  jupiter:
    base_url: http://localhost:8080
birdeye:
  chain: ethereum
log:
  level: debug
tracker:
  concurrency: 2
  vs_token: USDC
`)
	t.Setenv(birdeye.KeyEnv, "env-key")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Providers.Birdeye.APIKey)
	assert.Equal(t, "ethereum", cfg.Birdeye.Chain)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Tracker.Concurrency)
	assert.Equal(t, "USDC", cfg.Tracker.VsToken)

	opts, err := cfg.ProviderOptions(birdeye.Name)
	require.NoError(t, err)
	assert.Equal(t, "env-key", opts.APIKey)
	assert.Equal(t, 3*time.Second, opts.Timeout)
	assert.Empty(t, opts.MockDir)

	opts, err = cfg.ProviderOptions(jupiter.Name)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", opts.BaseURL)
}

func TestLoad_MockFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CYHOLE_MOCK", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.True(t, cfg.Mock.Enabled)

	opts, err := cfg.ProviderOptions(solscanv2.Name)
	require.NoError(t, err)
	assert.Equal(t, "testdata/fixtures", opts.MockDir)
	assert.Equal(t, "mock", opts.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "providers: [not, a, map]"))
	assert.Error(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	_, err = cfg.ProviderOptions("coingecko")
	assert.Error(t, err)
}
