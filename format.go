package httplog

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RequestResult describes how a request ended, as seen by the interceptor.
type RequestResult struct {
	StatusCode  int
	ContentType string
	Start       time.Time
	Latency     time.Duration
	// Err is the error the handler returned, nil when it completed.
	Err error
}

type TraceFormatter interface {
	TraceFields(req *http.Request, spanCtx trace.SpanContext) []zap.Field
}

type RequestFormatter interface {
	RequestFields(req *http.Request, res *RequestResult) []zap.Field
}

type Formatter interface {
	TraceFormatter
	RequestFormatter
}

var (
	// DefaultTraceFormatter is used when a request carries a valid span.
	DefaultTraceFormatter TraceFormatter = ElasticCommonSchemaFormatter
	// DefaultRequestFormatter adds nothing, keeping request records to the plain line format.
	DefaultRequestFormatter RequestFormatter = NoopFormatter
)
