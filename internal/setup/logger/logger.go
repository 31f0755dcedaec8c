package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger at the given level, info when the level string
// is empty or unknown. CLI entrypoints use this; the long-running services
// configure a ConsoleWriter themselves.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
