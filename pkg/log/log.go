// Package log is a thin key/value wrapper over zap shared by the service and the CLI.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the fleet service.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(err error, msg string, keysAndValues ...any)

	// WithName returns a logger with the name appended to the logger path.
	WithName(name string) Logger

	// WithValues returns a logger that adds the pairs to every entry.
	WithValues(keysAndValues ...any) Logger

	// Sync flushes buffered entries.
	Sync() error
}

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	core *zap.Logger
}

// NewLogger builds a Logger from opts. Nil opts means defaults.
func NewLogger(opts *Options) Logger {
	if opts == nil {
		opts = NewOptions()
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	if opts.Format == "console" && opts.EnableColor {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	outputPaths := opts.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	cfg := &zap.Config{
		DisableCaller:    opts.DisableCaller,
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         opts.Format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	core, err := cfg.Build(zap.AddCallerSkip(opts.CallerSkip), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		panic(fmt.Sprintf("failed to build zap logger: %v", err))
	}
	if opts.Name != "" {
		core = core.Named(opts.Name)
	}

	return &zapLogger{core: core}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{core: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, keysAndValues ...any) {
	z.core.Debug(msg, toFields(keysAndValues...)...)
}

func (z *zapLogger) Info(msg string, keysAndValues ...any) {
	z.core.Info(msg, toFields(keysAndValues...)...)
}

func (z *zapLogger) Warn(msg string, keysAndValues ...any) {
	z.core.Warn(msg, toFields(keysAndValues...)...)
}

func (z *zapLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues...)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	z.core.Error(msg, fields...)
}

func (z *zapLogger) WithName(name string) Logger {
	return &zapLogger{core: z.core.Named(name)}
}

func (z *zapLogger) WithValues(keysAndValues ...any) Logger {
	return &zapLogger{core: z.core.With(toFields(keysAndValues...)...)}
}

func (z *zapLogger) Sync() error {
	return z.core.Sync()
}

var (
	once sync.Once
	std  = NewNopLogger()
)

// Init installs the global logger. Only the first call has an effect.
func Init(opts *Options) {
	once.Do(func() {
		std = NewLogger(opts)
	})
}

// Std returns the global logger.
func Std() Logger { return std }

func Debug(msg string, keysAndValues ...any)            { std.Debug(msg, keysAndValues...) }
func Info(msg string, keysAndValues ...any)             { std.Info(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)             { std.Warn(msg, keysAndValues...) }
func Error(err error, msg string, keysAndValues ...any) { std.Error(err, msg, keysAndValues...) }
func WithName(name string) Logger                       { return std.WithName(name) }
func WithValues(keysAndValues ...any) Logger            { return std.WithValues(keysAndValues...) }
func Sync() error                                       { return std.Sync() }
