package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	loggerContextKey contextKey = "logger"
	userContextKey   contextKey = "user"
)

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the request-scoped logger, falling back to slog.Default.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// UserIDFromContext returns the authenticated user, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userContextKey).(string)
	return userID
}

type AuthMethod string

const (
	AuthMethodAuth0       AuthMethod = "auth0"
	AuthMethodStaticToken AuthMethod = "static_token"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}
