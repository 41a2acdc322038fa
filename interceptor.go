package httplog

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// HandlerFunc is an HTTP handler that can fail. Return an *HTTPError for
// expected failures, any other error is treated as unhandled.
type HandlerFunc func(w http.ResponseWriter, req *http.Request) error

// Interceptor logs exactly one record for every request it wraps.
type Interceptor struct {
	logger  *LabeledLogger
	options *interceptorOptions
}

func NewInterceptor(l *Logger, opts ...InterceptorOption) *Interceptor {
	options := buildInterceptorOptions(opts...)
	return &Interceptor{
		logger:  l.WithLabel(options.label),
		options: options,
	}
}

// Wrap adapts next to an http.Handler. Errors coming out of the interceptor
// are written with the configured ErrorResponder.
func (i *Interceptor) Wrap(next HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sr := newStatusRecorder(w)

		err := i.Intercept(sr, req, next)
		if err == nil {
			return
		}
		if sr.writeHeaderCalled {
			// The handler already started the response, the status can't be changed anymore.
			return
		}
		i.options.errorResponder(sr, req, err)
	})
}

// WrapHandler wraps a handler that can not fail.
func (i *Interceptor) WrapHandler(next http.Handler) http.Handler {
	return i.Wrap(func(w http.ResponseWriter, req *http.Request) error {
		next.ServeHTTP(w, req)
		return nil
	})
}

// Intercept runs next and logs its outcome. It returns nil when next
// completed, the error unchanged when it is an *HTTPError with a valid status,
// and a generic internal server error for anything else, including panics.
func (i *Interceptor) Intercept(w http.ResponseWriter, req *http.Request, next HandlerFunc) (err error) {
	start := time.Now()

	// Build logger for this request.
	l := i.options.perRequestLoggerFn(i.logger, req)

	// Add trace information if tracing is configured.
	currentSpan := trace.SpanContextFromContext(req.Context())
	if currentSpan.IsValid() {
		l = l.With(i.options.traceFormatter.TraceFields(req, currentSpan)...)
	}

	req = injectLoggerInContext(req, l)

	// Wrap http.ResponseWriter so we can extract the status code from the response.
	sr := newStatusRecorder(w)

	var completed bool
	defer func() {
		v := recover()
		if v == nil {
			if !completed {
				// runtime.Goexit() was called, there is nothing to recover.
				err = i.failed(l, req, sr, start, errHandlerExited)
			}
			return
		}
		if abortErr, ok := v.(error); ok && errors.Is(abortErr, http.ErrAbortHandler) {
			// Deliberate abort, log it and let net/http deal with the connection.
			_ = i.failed(l, req, sr, start, abortErr)
			panic(v)
		}
		err = i.failed(l, req, sr, start, panicError(v))
	}()

	nextErr := next(sr, req)
	completed = true
	if nextErr != nil {
		return i.failed(l, req, sr, start, nextErr)
	}

	i.logRequest(l, DebugLevel, requestLine(req, sr.Status()), req, &RequestResult{
		StatusCode:  sr.Status(),
		ContentType: sr.ContentType,
		Start:       start,
		Latency:     time.Since(start),
	})
	return nil
}

func (i *Interceptor) failed(l *LabeledLogger, req *http.Request, sr *statusRecorder, start time.Time, err error) error {
	res := &RequestResult{
		ContentType: sr.ContentType,
		Start:       start,
		Latency:     time.Since(start),
		Err:         err,
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && validStatus(httpErr.Status) {
		// Expected failure, pass it on as is.
		res.StatusCode = httpErr.Status
		i.logRequest(l, DebugLevel, requestLine(req, httpErr.Status), req, res)
		return err
	}

	// Don't leak details of unknown errors to the client.
	res.StatusCode = http.StatusInternalServerError
	i.logRequest(l, WarnLevel, "Unhandled error - "+err.Error(), req, res)
	return internalServerError()
}

func (i *Interceptor) logRequest(l *LabeledLogger, level Level, msg string, req *http.Request, res *RequestResult) {
	if shouldLog := i.options.requestFilterFn(req, level); !shouldLog {
		return
	}

	if ce := l.Zap().Check(level.ZapLevel(), msg); ce != nil {
		fields := i.options.requestFormatter.RequestFields(req, res)
		ce.Write(fields...)
	}
}

var errHandlerExited = errors.New("handler exited without completing")

func requestLine(req *http.Request, status int) string {
	return fmt.Sprintf("%s %s (%d)", req.Method, req.URL.Path, status)
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
