package service

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface for flexible logging. Args are alternating keys and values.
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ZapLogger implements Logger on top of a zap sugared logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. Debug output is only
// enabled when debug is true.
func NewLogger(debug bool) Logger {
	level := "info"
	if debug {
		level = "debug"
	}
	logger, err := NewLoggerWithLevel(level)
	if err != nil {
		return NewNopLogger()
	}
	return logger
}

// NewLoggerWithLevel accepts any zap level name (debug, info, warn, error).
func NewLoggerWithLevel(level string) (Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = lvl > zapcore.DebugLevel

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func NewNopLogger() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Infow(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.sugar.Warnw(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Errorw(msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugw(msg, args...)
}

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
