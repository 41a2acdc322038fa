package httplog

import (
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type gcloudFormatter struct {
	projectID string
}

var _ Formatter = &gcloudFormatter{}

// NewGoogleCloudFormatter returns a formatter using the field names Google
// Cloud Logging understands. The project ID is needed to build full trace names.
// See: https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#HttpRequest
func NewGoogleCloudFormatter(projectID string) Formatter {
	return &gcloudFormatter{projectID: projectID}
}

func (f *gcloudFormatter) TraceFields(_ *http.Request, spanCtx trace.SpanContext) []zap.Field {
	return []zap.Field{
		zap.String("logging.googleapis.com/trace",
			fmt.Sprintf("projects/%s/traces/%s", f.projectID, spanCtx.TraceID().String())),
		zap.String("logging.googleapis.com/spanId", spanCtx.SpanID().String()),
		zap.Bool("logging.googleapis.com/trace_sampled", spanCtx.IsSampled()),
	}
}

func (f *gcloudFormatter) RequestFields(req *http.Request, res *RequestResult) []zap.Field {
	return []zap.Field{
		zap.Dict("httpRequest",
			zap.String("requestMethod", req.Method),
			zap.String("requestUrl", req.URL.Redacted()),
			zap.String("requestSize", strconv.FormatInt(req.ContentLength, 10)),
			zap.Int("status", res.StatusCode),
			zap.String("userAgent", req.UserAgent()),
			zap.String("remoteIp", req.RemoteAddr),
			zap.String("serverIp", serverAddress(req)),
			zap.String("referer", req.Referer()),
			zap.String("latency", strconv.FormatFloat(res.Latency.Seconds(), 'f', -1, 64)+"s"),
			zap.String("protocol", req.Proto),
		),
	}
}
