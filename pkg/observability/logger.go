// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides logging and metrics.
package observability

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger implements Logger over zap.
type logger struct {
	zl *zap.Logger
}

// NewLogger creates a production logger at the given level. Unknown
// levels fall back to info.
func NewLogger(level string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}
	return &logger{zl: zl}
}

// NewNopLogger creates a logger that discards everything, for tests.
func NewNopLogger() Logger {
	return &logger{zl: zap.NewNop()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, zapFields(fields)...) }
func (l *logger) Info(msg string, fields ...Field)  { l.zl.Info(msg, zapFields(fields)...) }
func (l *logger) Warn(msg string, fields ...Field)  { l.zl.Warn(msg, zapFields(fields)...) }
func (l *logger) Error(msg string, fields ...Field) { l.zl.Error(msg, zapFields(fields)...) }

func (l *logger) With(fields ...Field) Logger {
	return &logger{zl: l.zl.With(zapFields(fields)...)}
}

func (l *logger) Sync() error {
	return l.zl.Sync()
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
