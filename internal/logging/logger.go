// Package logging provides a small structured-logging façade wrapping
// zap, reduced from turtacn-KeyIP-Intelligence's logging package to what a
// CLI assembler tool needs: no dynamic level changes, no multi-sink
// configuration. Engine accepts a Logger value instead of calling a
// package-level logger, so concurrent assemble runs never share log
// state.
// coding=utf-8
// @Project : moasm
// @File    : logger.go
package logging

import "go.uber.org/zap"

// Field is a typed structured-log field, mirroring zap.Field's
// constructors so callers never import zap directly.
type Field = zap.Field

// String, Int, Int64, Float64, Bool, Err and Any are the typed field
// constructors Engine and the CLI use.
var (
	String  = zap.String
	Int     = zap.Int
	Int64   = zap.Int64
	Float64 = zap.Float64
	Bool    = zap.Bool
	Err     = zap.Error
	Any     = zap.Any
)

// Logger is the structured-logging capability Engine and the CLI depend
// on. It is satisfied by *ZapLogger and by NoOp, so tests and library
// callers that don't want zap wired in can pass NoOp{}.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// ZapLogger adapts a *zap.Logger to the Logger interface.
type ZapLogger struct {
	z *zap.Logger
}

// NewZap wraps an existing *zap.Logger.
func NewZap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{z: z}
}

// NewProduction builds a ZapLogger using zap's production configuration
// (JSON, info level), matching the default the CLI runs with.
func NewProduction() (*ZapLogger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{z: z}, nil
}

// NewDevelopment builds a ZapLogger using zap's development configuration
// (console-friendly, debug level), used when -v/--verbose is set.
func NewDevelopment() (*ZapLogger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{z: z}, nil
}

func (l *ZapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *ZapLogger) Info(msg string, fields ...Field)   { l.z.Info(msg, fields...) }
func (l *ZapLogger) Warn(msg string, fields ...Field)   { l.z.Warn(msg, fields...) }
func (l *ZapLogger) Error(msg string, fields ...Field)  { l.z.Error(msg, fields...) }

func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{z: l.z.With(fields...)}
}

// NoOp discards every log call; it is the Engine's default so library
// callers never need to provide a logger.
type NoOp struct{}

func (NoOp) Debug(string, ...Field) {}
func (NoOp) Info(string, ...Field)  {}
func (NoOp) Warn(string, ...Field)  {}
func (NoOp) Error(string, ...Field) {}
func (n NoOp) With(...Field) Logger { return n }
