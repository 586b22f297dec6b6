package core

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys for pipeline options
type contextKey string

const loggerKey contextKey = "logger"

// WithLogger attaches a logger to the context used by pipeline stages.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// loggerFrom returns the context logger, or the standard logrus logger when none is set.
func loggerFrom(ctx context.Context) logrus.FieldLogger {
	val := ctx.Value(loggerKey)
	if val == nil {
		return logrus.StandardLogger()
	}
	logger, ok := val.(logrus.FieldLogger)
	if !ok {
		return logrus.StandardLogger()
	}
	return logger
}
