package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewDefaultLogger returns a default logger that writes to os.Stderr with the
// given format and level. See NewLogger.
func NewDefaultLogger(format, level string) (Logger, error) {
	return NewLogger(os.Stderr, format, level)
}

// NewLogger returns a logger that writes to w. The format can be either
// LogFormatPlain or LogFormatJSON, and the level one of the zerolog level
// names (debug, info, warn, error). An unknown format or level is an error.
func NewLogger(w io.Writer, format, level string) (Logger, error) {
	logWriter := w
	switch strings.ToLower(format) {
	case LogFormatPlain, LogFormatText:
		logWriter = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02T15:04:05.000000Z07:00",
		}

	case LogFormatJSON:

	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	return defaultLogger{
		Logger: zerolog.New(logWriter).Level(logLevel).With().Timestamp().Logger(),
	}, nil
}
