package httplog

import (
	"net/http"
)

// DefaultLabel tags every record written by the interceptor.
const DefaultLabel = "HTTP"

// PerRequestLoggerFunc derives the logger used for a single request.
type PerRequestLoggerFunc func(parent *LabeledLogger, req *http.Request) *LabeledLogger

func DefaultPerRequestLoggerFunc(parent *LabeledLogger, _ *http.Request) *LabeledLogger {
	return parent
}

// RequestFilterFunc decides whether the record for req at level is written.
type RequestFilterFunc func(req *http.Request, level Level) bool

func DefaultRequestFilterFunc(*http.Request, Level) bool {
	return true
}

type interceptorOptions struct {
	label              string
	perRequestLoggerFn PerRequestLoggerFunc
	requestFilterFn    RequestFilterFunc
	traceFormatter     TraceFormatter
	requestFormatter   RequestFormatter
	errorResponder     ErrorResponder
}

func defaultInterceptorOptions() *interceptorOptions {
	return &interceptorOptions{
		label:              DefaultLabel,
		perRequestLoggerFn: DefaultPerRequestLoggerFunc,
		requestFilterFn:    DefaultRequestFilterFunc,
		traceFormatter:     DefaultTraceFormatter,
		requestFormatter:   DefaultRequestFormatter,
		errorResponder:     DefaultErrorResponder,
	}
}

type InterceptorOption func(*interceptorOptions)

func buildInterceptorOptions(opts ...InterceptorOption) *interceptorOptions {
	options := defaultInterceptorOptions()
	for _, fn := range opts {
		fn(options)
	}
	return options
}

func WithLabel(label string) InterceptorOption {
	return func(options *interceptorOptions) {
		options.label = label
	}
}

func WithPerRequestLogger(fn PerRequestLoggerFunc) InterceptorOption {
	return func(options *interceptorOptions) {
		options.perRequestLoggerFn = fn
	}
}

func WithRequestFilter(fn RequestFilterFunc) InterceptorOption {
	return func(options *interceptorOptions) {
		options.requestFilterFn = fn
	}
}

func WithTraceFormatter(f TraceFormatter) InterceptorOption {
	return func(options *interceptorOptions) {
		options.traceFormatter = f
	}
}

func WithRequestFormatter(f RequestFormatter) InterceptorOption {
	return func(options *interceptorOptions) {
		options.requestFormatter = f
	}
}

func WithErrorResponder(fn ErrorResponder) InterceptorOption {
	return func(options *interceptorOptions) {
		options.errorResponder = fn
	}
}
