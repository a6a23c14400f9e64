package log

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// LogFormatPlain defines a logging format used for human-readable,
	// color-coded, plain-text output.
	LogFormatPlain string = "plain"

	// LogFormatText defines an alias for the plain logging format.
	LogFormatText string = "text"

	// LogFormatJSON defines a logging format for structured JSON output.
	LogFormatJSON string = "json"

	// Supported log levels.
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Logger defines the structured logging interface used across the project:
// a message plus alternating key/value pairs.
type Logger interface {
	Debug(msg string, keyVals ...interface{})
	Info(msg string, keyVals ...interface{})
	Error(msg string, keyVals ...interface{})

	With(keyVals ...interface{}) Logger
}

// defaultLogger wraps a zerolog logger.
type defaultLogger struct {
	zerolog.Logger
}

func (l defaultLogger) Debug(msg string, keyVals ...interface{}) {
	l.Logger.Debug().Fields(getLogFields(keyVals...)).Msg(msg)
}

func (l defaultLogger) Info(msg string, keyVals ...interface{}) {
	l.Logger.Info().Fields(getLogFields(keyVals...)).Msg(msg)
}

func (l defaultLogger) Error(msg string, keyVals ...interface{}) {
	l.Logger.Error().Fields(getLogFields(keyVals...)).Msg(msg)
}

func (l defaultLogger) With(keyVals ...interface{}) Logger {
	return defaultLogger{Logger: l.Logger.With().Fields(getLogFields(keyVals...)).Logger()}
}

func getLogFields(keyVals ...interface{}) map[string]interface{} {
	if len(keyVals)%2 != 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(keyVals)/2)
	for i := 0; i < len(keyVals); i += 2 {
		fields[fmt.Sprint(keyVals[i])] = keyVals[i+1]
	}

	return fields
}
