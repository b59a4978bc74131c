package timex

import (
	"errors"

	apexlog "github.com/apex/log"
)

// Sentinel errors for parsing and bounded execution.
var (
	// ErrBadStamp indicates text that does not match Layout.
	ErrBadStamp = errors.New("timex: timestamp does not match layout")

	// ErrTimeout indicates Run's budget elapsed before completion.
	ErrTimeout = errors.New("timex: operation timed out")
)

// Layout is the shared timestamp representation: calendar date plus
// wall clock at second precision, sortable and filename safe.
const Layout = "2006-01-02 15:04:05"

// Logger is the minimal sink Timeit reports through. The apex/log
// Interface satisfies it.
type Logger interface {
	Infof(format string, v ...interface{})
}

// discardLogger drops everything.
type discardLogger struct{}

// Infof implements Logger.
func (discardLogger) Infof(string, ...interface{}) {}

// DiscardLogger silences operation timing.
var DiscardLogger Logger = discardLogger{}

// ValidLoggerOrDefault returns logger when non-nil and the apex/log
// default otherwise, so call sites never nil-check.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return apexlog.Log
}
