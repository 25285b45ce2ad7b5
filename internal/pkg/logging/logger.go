// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// EnvLogLevel is the environment variable controlling the log level of the
// CLI and of the loggers handed to lower layers.
const EnvLogLevel = "IAG_CONFIG_LOG_LEVEL"

// Logger is the primary interface for logging with a consistent interface without
// creating a hard dependency between the UI layer and lower layers of the stack.
// It is inspired a subset of the functions defined by terminal.UI which are generic
// enough for lower level packages to consume. It expected that implementations
// of this interface will respect the IAG_CONFIG_LOG_LEVEL environment variable.
type Logger interface {
	// Debug logs at the DEBUG log level
	Debug(message string)

	// Error logs at the ERROR log level
	Error(message string)

	// ErrorWithContext logs at the ERROR log level including additional context so
	// users can easily identify issues.
	ErrorWithContext(err error, sub string, ctx ...string)

	// Info logs at the INFO log level
	Info(message string)

	// Trace logs at the TRACE log level
	Trace(message string)

	// Warning logs at the WARN log level
	Warning(message string)
}

// HCLogger adapts an hclog.Logger to Logger.
type HCLogger struct {
	log hclog.Logger
}

// FromHCLog wraps l. A nil l is replaced by a null logger.
func FromHCLog(l hclog.Logger) *HCLogger {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &HCLogger{log: l}
}

// Debug logs at the DEBUG log level
func (l *HCLogger) Debug(message string) { l.log.Debug(message) }

// Error logs at the ERROR log level
func (l *HCLogger) Error(message string) { l.log.Error(message) }

// ErrorWithContext logs at the ERROR log level including additional context so
// users can easily identify issues. ctx is expected to hold key/value pairs.
func (l *HCLogger) ErrorWithContext(err error, sub string, ctx ...string) {
	args := []any{"error", err}
	for i := 0; i+1 < len(ctx); i += 2 {
		args = append(args, strings.ToLower(strings.TrimSuffix(ctx[i], ":")), ctx[i+1])
	}
	l.log.Error(sub, args...)
}

// Info logs at the INFO log level
func (l *HCLogger) Info(message string) { l.log.Info(message) }

// Trace logs at the TRACE log level
func (l *HCLogger) Trace(message string) { l.log.Trace(message) }

// Warning logs at the WARN log level
func (l *HCLogger) Warning(message string) { l.log.Warn(message) }

type TestLogger struct {
	log func(args ...any)
}

// Debug logs at the DEBUG log level
func (l *TestLogger) Debug(message string) {
	l.log(message)
}

// Error logs at the ERROR log level
func (l *TestLogger) Error(message string) {
	l.log(message)
}

// ErrorWithContext logs at the ERROR log level including additional context so
// users can easily identify issues.
func (l *TestLogger) ErrorWithContext(err error, sub string, ctx ...string) {
	l.log(fmt.Sprintf("err: %s", err))
	l.log(sub)

	for _, entry := range ctx {
		l.log(entry)
	}
}

// Info logs at the INFO log level
func (l *TestLogger) Info(message string) {
	l.log(message)
}

// Trace logs at the TRACE log level
func (l *TestLogger) Trace(message string) {
	l.log(message)
}

// Warning logs at the WARN log level
func (l *TestLogger) Warning(message string) {
	l.log(message)
}

// NewTestLogger returns a test logger suitable for use with the go testing.T log function.
func NewTestLogger(log func(args ...any)) *TestLogger {
	return &TestLogger{
		log: log,
	}
}
