// Package logging provides the structured logger used across the navigation
// stack: a thin wrapper over zap that fans entries out to one or more
// Appenders (see appender.go) instead of zap's usual encoder/syncer pipeline.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface passed into every component constructor.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a named Logger that writes to stdout.
func NewLogger(name string) Logger {
	return newLoggerWithAppenders(name, zapcore.InfoLevel, NewStdoutAppender())
}

// NewDebugLogger is NewLogger at debug level, useful for CLI -debug flags.
func NewDebugLogger(name string) Logger {
	return newLoggerWithAppenders(name, zapcore.DebugLevel, NewStdoutAppender())
}

// NewTestLogger creates a Logger that forwards entries to t.Log, so failures
// surface inline with `go test -v` output instead of being lost to stdout.
func NewTestLogger(t *testing.T) Logger {
	t.Helper()
	return newLoggerWithAppenders("test", zapcore.DebugLevel, NewWriterAppender(&testWriter{t: t}))
}

type testWriter struct{ t *testing.T }

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Logf("%s", p)
	return len(p), nil
}

func newLoggerWithAppenders(name string, level zapcore.Level, appenders ...Appender) Logger {
	core := &appenderCore{level: level, appenders: appenders}
	zl := zap.New(core, zap.AddCaller())
	return Logger{sugar: zl.Sugar().Named(name)}
}

// appenderCore is a zapcore.Core that hands each entry straight to its
// Appenders, rather than running it through an Encoder/WriteSyncer.
type appenderCore struct {
	level     zapcore.Level
	appenders []Appender
	fields    []zapcore.Field
}

func (c *appenderCore) Enabled(lvl zapcore.Level) bool { return lvl >= c.level }

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &appenderCore{level: c.level, appenders: c.appenders, fields: merged}
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	for _, a := range c.appenders {
		if err := a.Write(entry, all); err != nil {
			return err
		}
	}
	return nil
}

func (c *appenderCore) Sync() error {
	for _, a := range c.appenders {
		if err := a.Sync(); err != nil {
			return err
		}
	}
	return nil
}

// Debugw logs a debug-level message with structured key/value pairs.
func (l Logger) Debugw(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }

// Infow logs an info-level message with structured key/value pairs.
func (l Logger) Infow(msg string, kv ...interface{}) { l.sugar.Infow(msg, kv...) }

// Warnw logs a warn-level message with structured key/value pairs.
func (l Logger) Warnw(msg string, kv ...interface{}) { l.sugar.Warnw(msg, kv...) }

// Errorw logs an error-level message with structured key/value pairs.
func (l Logger) Errorw(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

// Debugf logs a debug-level formatted message.
func (l Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Infof logs an info-level formatted message.
func (l Logger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warnf logs a warn-level formatted message.
func (l Logger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Errorf logs an error-level formatted message.
func (l Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Named returns a child logger scoped under the given name.
func (l Logger) Named(name string) Logger { return Logger{sugar: l.sugar.Named(name)} }

// Sync flushes any buffered log entries.
func (l Logger) Sync() error { return l.sugar.Sync() }
