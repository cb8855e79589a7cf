package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger shared by the binaries. The level
// string comes from LOG_LEVEL; empty or unknown values fall back to
// info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
