package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearChainEnv makes sure the host environment doesn't leak into a test.
// Viper treats empty env vars as unset, so the defaults apply.
func clearChainEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"APP_ENV", "LOG_LEVEL", "CHAIN_EVENT2_DELAY", "CHAIN_EVENT1_DELAY", "CHAIN_MAX_CYCLES"} {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearChainEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Chain.Event2Delay)
	assert.Equal(t, 500*time.Millisecond, cfg.Chain.Event1Delay)
	assert.Equal(t, 0, cfg.Chain.MaxCycles)
}

func TestLoad_Overrides(t *testing.T) {
	clearChainEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHAIN_EVENT2_DELAY", "20ms")
	t.Setenv("CHAIN_EVENT1_DELAY", "10ms")
	t.Setenv("CHAIN_MAX_CYCLES", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 20*time.Millisecond, cfg.Chain.Event2Delay)
	assert.Equal(t, 10*time.Millisecond, cfg.Chain.Event1Delay)
	assert.Equal(t, 3, cfg.Chain.MaxCycles)
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		env   string
		value string
	}{
		{name: "garbage event2 delay", env: "CHAIN_EVENT2_DELAY", value: "soon"},
		{name: "negative event1 delay", env: "CHAIN_EVENT1_DELAY", value: "-5ms"},
		{name: "unitless event2 delay", env: "CHAIN_EVENT2_DELAY", value: "1000"},
		{name: "non-numeric max cycles", env: "CHAIN_MAX_CYCLES", value: "many"},
		{name: "negative max cycles", env: "CHAIN_MAX_CYCLES", value: "-1"},
		{name: "unknown log level", env: "LOG_LEVEL", value: "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearChainEnv(t)
			t.Setenv(tc.env, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.env)
			t.Logf("Got expected config error: %v", err)
		})
	}
}
