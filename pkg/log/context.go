package log

import "context"

type loggerContextKey struct{}

// SetContextLogger attaches the provided logger to the context.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, lg)
}

// FromContext retrieves the logger stored in the context, or a noop logger
// when none is attached.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(Logger); ok {
		return l
	}
	return NewNoopLogger()
}

var _ Logger = (*noopLogger)(nil)

type noopLogger struct{}

// NewNoopLogger returns a logger that discards everything.
func NewNoopLogger() Logger { return &noopLogger{} }

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithName(string) Logger                         { return n }
func (n noopLogger) WithKV(...any) Logger                           { return n }
func (n noopLogger) WithSpanEventRecorder(SpanEventRecorder) Logger { return n }
func (n noopLogger) AddCallerSkip(int) Logger                       { return n }
func (noopLogger) Name() string                                     { return "" }
func (noopLogger) GetAllKV() []any                                  { return nil }
