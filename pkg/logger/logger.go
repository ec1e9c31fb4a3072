package logger

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// NewLogger creates a new Logger instance with a klogr logger.
func NewLogger(ctx context.Context) (logr.Logger, context.Context) {
	log := klog.NewKlogr()
	return log, context.WithValue(ctx, logr.Logger{}, log)
}

// WithMethod returns a new Logger with method and traceID values,
// and a function to log method completion.
func WithMethod(log logr.Logger, method string) (logger logr.Logger, completionFunc func()) {
	traceID := uuid.New().String()

	logger = log.WithValues("method", method, "traceID", traceID)
	logger.V(4).Info("Starting method")
	completionFunc = func() {
		logger.V(4).Info("Method completed")
	}
	return
}

// GetLogger retrieves the Logger from the context, or creates a new one if not present.
func GetLogger(ctx context.Context) (logr.Logger, context.Context) {
	if logger, ok := ctx.Value(logr.Logger{}).(logr.Logger); ok {
		return logger, ctx
	}
	return NewLogger(ctx)
}

// IntoContext stores log in ctx so that GetLogger returns it.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, logr.Logger{}, log)
}
