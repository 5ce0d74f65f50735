// Package logging provides the narrow structured-logging interface used by
// the narrow-phase collision core for optional diagnostic output (which
// axis family won, whether the temporal-coherence shortcut fired). It is
// never required for correctness.
package logging

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the logging surface consumed by the collision package.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

type impl struct {
	name string
	zl   *zap.SugaredLogger
}

func (l *impl) Debugw(msg string, kv ...interface{}) { l.zl.Debugw(msg, kv...) }
func (l *impl) Infow(msg string, kv ...interface{})  { l.zl.Infow(msg, kv...) }
func (l *impl) Warnw(msg string, kv ...interface{})  { l.zl.Warnw(msg, kv...) }

func newLoggerConfig() zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a new logger that writes Info+ logs to stdout.
func NewLogger(name string) Logger {
	cfg := newLoggerConfig()
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &impl{name: name, zl: zl.Named(name).Sugar()}
}

// NewDebugLogger returns a new logger that writes Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	cfg := newLoggerConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &impl{name: name, zl: zl.Named(name).Sugar()}
}

// NewTestLogger returns a logger suitable for use inside a *testing.T,
// writing Debug+ logs.
func NewTestLogger(tb testing.TB) Logger {
	zl := zaptest.NewLogger(tb).Sugar()
	return &impl{name: tb.Name(), zl: zl}
}

var (
	globalMu     sync.RWMutex
	globalLogger = NewLogger("reactphysics3d")
)

// Global returns the package-level default logger.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// ReplaceGlobal replaces the package-level default logger.
func ReplaceGlobal(l Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}
