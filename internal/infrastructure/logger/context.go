package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	// LoggerKey carries the request-scoped logger.
	LoggerKey contextKey = "logger"
	// RequestIDKey carries the correlation id assigned by the HTTP layer.
	RequestIDKey contextKey = "request_id"
	// ActorKey carries the name recorded as the author of status changes.
	ActorKey contextKey = "actor"
)

// WithContext stores a logger in the context for downstream layers.
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, log)
}

// FromContext returns the logger stored in the context, or a no-op
// logger when none was stored.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// WithRequestID stores the correlation id and tags the context logger
// with it in one step.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("request_id", requestID)))
}

// GetRequestID returns the correlation id from the context, or "".
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithActor stores the acting identity and tags the context logger with it.
func WithActor(ctx context.Context, actor string) context.Context {
	ctx = context.WithValue(ctx, ActorKey, actor)
	return WithContext(ctx, FromContext(ctx).With(zap.String("actor", actor)))
}

// GetActor returns the acting identity from the context, or "".
func GetActor(ctx context.Context) string {
	if actor, ok := ctx.Value(ActorKey).(string); ok {
		return actor
	}
	return ""
}

// ContextLogger couples a context with its logger so call sites can log
// without re-fetching. The zero value logs to a no-op logger.
type ContextLogger struct {
	ctx context.Context
	log *zap.Logger
}

// L returns a ContextLogger for the given context.
//
// Usage: logger.L(ctx).Info("message", zap.String("key", "value"))
func L(ctx context.Context) *ContextLogger {
	return &ContextLogger{ctx: ctx, log: FromContext(ctx)}
}

// WithLogger returns a ContextLogger bound to an explicit logger rather
// than the one stored in the context.
func WithLogger(ctx context.Context, log *zap.Logger) *ContextLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContextLogger{ctx: ctx, log: log}
}

// With returns a ContextLogger carrying additional fields.
func (c *ContextLogger) With(fields ...zap.Field) *ContextLogger {
	return &ContextLogger{ctx: c.ctx, log: c.logger().With(fields...)}
}

func (c *ContextLogger) Debug(msg string, fields ...zap.Field) {
	c.logger().Debug(msg, c.tagged(fields)...)
}

func (c *ContextLogger) Info(msg string, fields ...zap.Field) {
	c.logger().Info(msg, c.tagged(fields)...)
}

func (c *ContextLogger) Warn(msg string, fields ...zap.Field) {
	c.logger().Warn(msg, c.tagged(fields)...)
}

func (c *ContextLogger) Error(msg string, fields ...zap.Field) {
	c.logger().Error(msg, c.tagged(fields)...)
}

func (c *ContextLogger) Fatal(msg string, fields ...zap.Field) {
	c.logger().Fatal(msg, c.tagged(fields)...)
}

// Zap returns the underlying zap logger.
func (c *ContextLogger) Zap() *zap.Logger {
	return c.logger()
}

// Sugar returns the sugared form of the underlying logger.
func (c *ContextLogger) Sugar() *zap.SugaredLogger {
	return c.logger().Sugar()
}

func (c *ContextLogger) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// tagged appends the context's correlation id and actor, when present,
// so they show up even on loggers that were not built via WithRequestID.
func (c *ContextLogger) tagged(fields []zap.Field) []zap.Field {
	if c.ctx == nil {
		return fields
	}
	if id := GetRequestID(c.ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if actor := GetActor(c.ctx); actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	return fields
}
