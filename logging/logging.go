// Package logging builds the file-backed zerolog logger. The terminal
// belongs to tcell while the game runs, so logs never go to stdout.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file and returns a logger writing to it.
// The caller closes the file on shutdown.
func New(path, level string) (zerolog.Logger, *os.File, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).With().Timestamp().Logger().Level(lvl)
	return logger, file, nil
}
