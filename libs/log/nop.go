package log

import (
	"github.com/rs/zerolog"
)

// NewNopLogger returns a logger that discards all output. Library code uses
// it as the default when no logger is supplied.
func NewNopLogger() Logger {
	return defaultLogger{
		Logger: zerolog.Nop(),
	}
}
