package httplog

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Field names follow the Elastic Common Schema.
// See: https://www.elastic.co/guide/en/ecs/current/ecs-field-reference.html
type elasticCommonSchemaFormatter struct{}

var ElasticCommonSchemaFormatter Formatter = elasticCommonSchemaFormatter{}

func (elasticCommonSchemaFormatter) TraceFields(_ *http.Request, spanCtx trace.SpanContext) []zap.Field {
	return []zap.Field{
		// trace.sampled is not part of ECS but it is useful when searching logs.
		zap.Dict("trace",
			zap.String("id", spanCtx.TraceID().String()),
			zap.Bool("sampled", spanCtx.IsSampled()),
		),
		zap.Dict("span",
			zap.String("id", spanCtx.SpanID().String()),
		),
	}
}

func (elasticCommonSchemaFormatter) RequestFields(req *http.Request, res *RequestResult) []zap.Field {
	fields := []zap.Field{
		zap.Dict("event",
			zap.String("start", res.Start.Format(time.RFC3339Nano)),
			zap.Int64("duration", res.Latency.Nanoseconds()),
			zap.String("end", res.Start.Add(res.Latency).Format(time.RFC3339Nano)),
		),
		zap.Dict("http",
			zap.Dict("request",
				zap.Dict("body", zap.Int64("bytes", req.ContentLength)),
				zap.String("method", req.Method),
				zap.String("mime_type", req.Header.Get("Content-Type")),
				zap.String("referrer", req.Referer()),
			),
			zap.Dict("response",
				zap.String("mime_type", res.ContentType),
				zap.Int("status_code", res.StatusCode),
			),
			zap.String("version", fmt.Sprintf("%d.%d", req.ProtoMajor, req.ProtoMinor)),
		),
		zap.Dict("url",
			zap.String("original", req.URL.Redacted()),
			zap.String("path", req.URL.Path),
			zap.String("query", req.URL.RawQuery),
		),
		zap.Dict("user_agent", zap.String("original", req.UserAgent())),
		zap.Dict("client", zap.String("address", req.RemoteAddr)),
		zap.Dict("server", zap.String("address", serverAddress(req))),
	}

	if res.Err != nil {
		fields = append(fields, zap.Dict("error", zap.String("message", res.Err.Error())))
	}
	return fields
}

func serverAddress(req *http.Request) string {
	if localAddr, ok := req.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		return localAddr.String()
	}
	return ""
}
