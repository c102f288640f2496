// Package logging builds the process logger
// The terminal belongs to the game screen, so log output goes to a file
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// trace, debug, info, warn, error
	Level string

	// Append-mode log file, empty discards output
	File string

	// Write JSON lines instead of the console format
	JSON bool
}

// Setup opens the log file and returns the root logger and the closer for the file
func Setup(cfg Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: open %s: %w", cfg.File, err)
	}

	var out io.Writer = file
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log, file, nil
}
