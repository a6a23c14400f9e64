package log

import (
	"testing"
)

// NewTestingLogger converts a testing.T into a logging interface that writes
// through t.Log at debug level, so log lines show up attributed to the test
// that emitted them (and only with -v or on failure).
func NewTestingLogger(t *testing.T) Logger {
	return testingLogger{t: t}
}

type testingLogger struct {
	t       *testing.T
	keyVals []interface{}
}

func (l testingLogger) Debug(msg string, keyVals ...interface{}) { l.log("DEBUG", msg, keyVals) }
func (l testingLogger) Info(msg string, keyVals ...interface{})  { l.log("INFO", msg, keyVals) }
func (l testingLogger) Error(msg string, keyVals ...interface{}) { l.log("ERROR", msg, keyVals) }

func (l testingLogger) With(keyVals ...interface{}) Logger {
	return testingLogger{t: l.t, keyVals: append(l.keyVals[:len(l.keyVals):len(l.keyVals)], keyVals...)}
}

func (l testingLogger) log(level, msg string, keyVals []interface{}) {
	l.t.Helper()
	args := make([]interface{}, 0, 2+len(l.keyVals)+len(keyVals))
	args = append(args, level, msg)
	args = append(args, l.keyVals...)
	args = append(args, keyVals...)
	l.t.Log(args...)
}
