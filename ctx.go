package httplog

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerContextKey contextKey = "logger"
)

func injectLoggerInContext(req *http.Request, l *LabeledLogger) *http.Request {
	ctx := context.WithValue(req.Context(), loggerContextKey, l)
	return req.WithContext(ctx)
}

// FromContext returns the request logger the interceptor stored in ctx.
func FromContext(ctx context.Context) *LabeledLogger {
	l, ok := ctx.Value(loggerContextKey).(*LabeledLogger)
	if !ok {
		// Not inside an intercepted request, fall back to the global zap logger without a label.
		l = newLabeledLogger(zap.L(), "")
		l.Debug("FromContext is used outside of an intercepted HTTP request. Make sure the handler is wrapped by an Interceptor.")
	}
	return l
}
