package main

import (
	"EventChain/internal/chain"
	"EventChain/internal/shared/config"
	"EventChain/internal/shared/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode, cfg.LogLevel)
	baseLogger.Info().Str("app_env", cfg.AppEnv).Msg("Logger initialized")

	// 3. Stop gracefully on Ctrl-C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run the chain; stdout only carries the event lines
	orchestrator := chain.NewOrchestrator(cfg, clockwork.NewRealClock(), os.Stdout, &baseLogger)
	if err := orchestrator.Start(ctx); err != nil {
		baseLogger.Fatal().Err(err).Msg("Event chain terminated")
	}

	baseLogger.Info().Msg("Shutdown complete")
}
