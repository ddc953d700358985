package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// SetAppInContext stores the App in ctx for the commands below the root
func SetAppInContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetAppFromContext returns the App stored in ctx, or nil
func GetAppFromContext(ctx context.Context) *App {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(contextKey{}).(*App)
	return a
}

// LoggerFromContext returns the App's logger, or a discarding logger when
// ctx holds no App.
func LoggerFromContext(ctx context.Context) logrus.FieldLogger {
	if a := GetAppFromContext(ctx); a != nil && a.Log != nil {
		return a.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
