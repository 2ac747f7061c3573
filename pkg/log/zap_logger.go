// Package log provides the structured logging facade used across the wallet
// SDK. It wraps zap behind a small Logger interface so packages depend on
// the interface rather than a concrete logging stack, and can mirror events
// to an OpenTelemetry span through a SpanEventRecorder.
package log

import (
	"os"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names the supported log levels.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// Config controls the output of a new logger.
type Config struct {
	// Format selects the encoder: "json", "logfmt" or "console".
	Format string `yaml:"format" env:"FORMAT" env-default:"console"`
	// Level is the minimum level that gets emitted.
	Level Level `yaml:"level" env:"LEVEL" env-default:"info"`
}

// Logger is the logging interface of the SDK. keysAndValues are treated as
// alternating key-value pairs ("key1", value1, "key2", value2).
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Fatal(msg string, keysAndValues ...any)

	// WithName returns a logger whose name gains the given suffix,
	// separated by a dot.
	WithName(name string) Logger
	// WithKV returns a logger that attaches the key-value pairs to every
	// entry.
	WithKV(keysAndValues ...any) Logger
	// WithSpanEventRecorder returns a logger that mirrors entries to the
	// recorder and stamps entries with the trace and span IDs.
	WithSpanEventRecorder(rec SpanEventRecorder) Logger
	// AddCallerSkip skips additional stack frames when resolving the
	// caller, for wrapper functions.
	AddCallerSkip(skip int) Logger

	// Name returns the accumulated logger name.
	Name() string
	// GetAllKV returns the key-value pairs attached with WithKV.
	GetAllKV() []any
}

// SpanEventRecorder records log events onto a tracing span.
type SpanEventRecorder interface {
	TraceID() string
	SpanID() string
	RecordEvent(name string, keysAndValues ...any)
	RecordError(name string, keysAndValues ...any)
}

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	lg   *zap.SugaredLogger
	name string
	kv   []any
	ser  SpanEventRecorder
}

// NewLogger creates a logger writing to stdout.
func NewLogger(cfg Config) Logger {
	return NewZapLogger(cfg, zapcore.Lock(os.Stdout))
}

// NewZapLogger creates a logger writing to the given sink.
func NewZapLogger(cfg Config, ws zapcore.WriteSyncer) Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "logfmt":
		enc = zaplogfmt.NewEncoder(encCfg)
	default:
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, ws, parseLevel(cfg.Level))
	lg := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return &zapLogger{lg: lg}
}

func parseLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(msg string, keysAndValues ...any) {
	l.lg.Debugw(msg, keysAndValues...)
	l.recordEvent(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Infow(msg, keysAndValues...)
	l.recordEvent(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...any) {
	l.lg.Warnw(msg, keysAndValues...)
	l.recordEvent(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...any) {
	l.lg.Errorw(msg, keysAndValues...)
	if l.ser != nil {
		l.ser.RecordError(msg, append(l.kvCopy(), keysAndValues...)...)
	}
}

func (l *zapLogger) Fatal(msg string, keysAndValues ...any) {
	if l.ser != nil {
		l.ser.RecordError(msg, append(l.kvCopy(), keysAndValues...)...)
	}
	l.lg.Fatalw(msg, keysAndValues...)
}

func (l *zapLogger) WithName(name string) Logger {
	newName := name
	if l.name != "" {
		newName = l.name + "." + name
	}
	return &zapLogger{lg: l.lg.Named(name), name: newName, kv: l.kv, ser: l.ser}
}

func (l *zapLogger) WithKV(keysAndValues ...any) Logger {
	return &zapLogger{
		lg:   l.lg.With(keysAndValues...),
		name: l.name,
		kv:   append(l.kvCopy(), keysAndValues...),
		ser:  l.ser,
	}
}

func (l *zapLogger) WithSpanEventRecorder(rec SpanEventRecorder) Logger {
	return &zapLogger{
		lg:   l.lg.With("trace_id", rec.TraceID(), "span_id", rec.SpanID()),
		name: l.name,
		kv:   l.kvCopy(),
		ser:  rec,
	}
}

func (l *zapLogger) AddCallerSkip(skip int) Logger {
	return &zapLogger{
		lg:   l.lg.Desugar().WithOptions(zap.AddCallerSkip(skip)).Sugar(),
		name: l.name,
		kv:   l.kv,
		ser:  l.ser,
	}
}

func (l *zapLogger) Name() string { return l.name }

func (l *zapLogger) GetAllKV() []any { return l.kvCopy() }

func (l *zapLogger) recordEvent(msg string, keysAndValues ...any) {
	if l.ser != nil {
		l.ser.RecordEvent(msg, append(l.kvCopy(), keysAndValues...)...)
	}
}

func (l *zapLogger) kvCopy() []any {
	out := make([]any, len(l.kv))
	copy(out, l.kv)
	return out
}
