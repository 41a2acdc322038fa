package httplog

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type noopFormatter struct{}

// NoopFormatter adds no fields at all.
var NoopFormatter Formatter = noopFormatter{}

func (noopFormatter) TraceFields(*http.Request, trace.SpanContext) []zap.Field {
	return nil
}

func (noopFormatter) RequestFields(*http.Request, *RequestResult) []zap.Field {
	return nil
}
