package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New initializes a new zerolog.Logger writing to stderr.
// 'devMode' enables human-readable console logging.
// Stdout is left to the chain's own output.
func New(devMode bool, level zerolog.Level) zerolog.Logger {
	return newWithWriter(os.Stderr, devMode, level)
}

func newWithWriter(w io.Writer, devMode bool, level zerolog.Level) zerolog.Logger {
	var logger zerolog.Logger

	if devMode {
		// Human-readable, colorful output for local development
		consoleWriter := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	} else {
		// Efficient JSON output for production
		logger = zerolog.New(w).With().Timestamp().Logger()
	}

	return logger.Level(level)
}
