package httplog

import (
	"net/http"
)

// statusRecorder remembers the status and content type a handler answered with.
type statusRecorder struct {
	writer            http.ResponseWriter
	writeHeaderCalled bool

	StatusCode  int
	ContentType string
}

var _ http.ResponseWriter = &statusRecorder{}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{writer: w}
}

func (s *statusRecorder) Header() http.Header {
	return s.writer.Header()
}

func (s *statusRecorder) Write(data []byte) (int, error) {
	if !s.writeHeaderCalled {
		// net/http sends 200 OK when Write is called before WriteHeader.
		s.WriteHeader(http.StatusOK)
	}
	return s.writer.Write(data)
}

func (s *statusRecorder) WriteHeader(statusCode int) {
	if s.writeHeaderCalled {
		// Only the first status reaches the client, keep reporting that one.
		s.writer.WriteHeader(statusCode)
		return
	}
	s.writeHeaderCalled = true
	s.StatusCode = statusCode
	s.ContentType = s.writer.Header().Get("Content-Type")
	s.writer.WriteHeader(statusCode)
}

// Status is the status sent to the client. A handler that wrote nothing is
// answered with 200 OK by net/http.
func (s *statusRecorder) Status() int {
	if !s.writeHeaderCalled {
		return http.StatusOK
	}
	return s.StatusCode
}

// Unwrap is used by http.ResponseController to reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.writer
}
