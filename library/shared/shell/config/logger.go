package config

import (
	"errors"
	"io"
	"log/slog"
)

// ErrInvalidLogLevel is returned for a level slog does not know.
var ErrInvalidLogLevel = errors.New("invalid log level")

// NewLogger creates a JSON slog.Logger writing to w at the given level ("debug", "info", "warn", "error").
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Join(ErrInvalidLogLevel, err)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel})), nil
}
