// Package context carries per-request values (request ID, scoped logger and
// the authenticated principal) across echo handlers, usecases and the worker.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a caller may use to supply its own request ID.
const HeaderXRequestID = "X-Request-Id"

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	principalKey
)

// echo.Context stores values by string name.
const (
	echoRequestID = "blog.request_id"
	echoPrincipal = "blog.principal"
)

// RequestIDOrNew returns the first non-empty candidate, or a fresh UUID.
func RequestIDOrNew(candidates ...string) string {
	for _, id := range candidates {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// WithRequestScope tags ctx with requestID and a logger derived from base.
// The tagged logger is returned too so callers can log before touching ctx.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	scoped := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, scoped), scoped
}

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestID returns the request ID for c. Handlers that run without the
// request ID middleware still get a usable value.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}

	return RequestIDOrNew(GetRequestIDFromContext(c.Request().Context()))
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx has no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns nil when ctx has no scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
