package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv   string
	LogLevel zerolog.Level
	Chain    ChainConfig
}

// ChainConfig holds the timing of the event chain.
type ChainConfig struct {
	// Event2Delay is the minimum wait between event1 firing and event2 being emitted.
	Event2Delay time.Duration
	// Event1Delay is the minimum wait between event2 firing and event1 being emitted again.
	Event1Delay time.Duration
	// MaxCycles stops the run after event1 has fired this many times. 0 runs forever.
	MaxCycles int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {

	// 1. Load .env file into the process environment
	if err := godotenv.Load(); err != nil {
		// A missing .env is fine; we rely on OS-set env vars.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// 2. Explicitly bind viper keys to env var names
	bindings := map[string]string{
		"app.env":            "APP_ENV",
		"log.level":          "LOG_LEVEL",
		"chain.event2_delay": "CHAIN_EVENT2_DELAY",
		"chain.event1_delay": "CHAIN_EVENT1_DELAY",
		"chain.max_cycles":   "CHAIN_MAX_CYCLES",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("chain.event2_delay", 1000*time.Millisecond)
	v.SetDefault("chain.event1_delay", 500*time.Millisecond)
	v.SetDefault("chain.max_cycles", 0)

	// 4. Convert and validate
	level, err := zerolog.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	event2Delay, err := durationKey(v, "chain.event2_delay", "CHAIN_EVENT2_DELAY")
	if err != nil {
		return nil, err
	}
	event1Delay, err := durationKey(v, "chain.event1_delay", "CHAIN_EVENT1_DELAY")
	if err != nil {
		return nil, err
	}

	maxCycles, err := cast.ToIntE(v.Get("chain.max_cycles"))
	if err != nil {
		return nil, fmt.Errorf("CHAIN_MAX_CYCLES must be an integer: %w", err)
	}
	if maxCycles < 0 {
		return nil, fmt.Errorf("CHAIN_MAX_CYCLES must not be negative, but got %d", maxCycles)
	}

	return &Config{
		AppEnv:   v.GetString("app.env"),
		LogLevel: level,
		Chain: ChainConfig{
			Event2Delay: event2Delay,
			Event1Delay: event1Delay,
			MaxCycles:   maxCycles,
		},
	}, nil
}

// durationKey reads key strictly; viper.GetDuration would turn garbage into 0.
// Strings from the environment must carry a unit, so "1000" is rejected.
func durationKey(v *viper.Viper, key, env string) (time.Duration, error) {
	var d time.Duration
	var err error
	if raw, ok := v.Get(key).(string); ok {
		d, err = time.ParseDuration(strings.TrimSpace(raw))
	} else {
		d, err = cast.ToDurationE(v.Get(key))
	}
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 500ms): %w", env, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, but got %s", env, d)
	}
	return d, nil
}
