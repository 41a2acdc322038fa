package httplog_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marnixbouhuis/httplog"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("Should default the message to the status text", func(t *testing.T) {
		t.Parallel()

		err := httplog.NewHTTPError(http.StatusConflict, "")
		assert.Equal(t, "Conflict", err.Message)
		assert.Equal(t, http.StatusConflict, err.StatusCode())
		assert.EqualError(t, err, "409 Conflict")
	})

	t.Run("Should keep a custom message", func(t *testing.T) {
		t.Parallel()

		err := httplog.NotFound("Cannot GET /nope")
		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "Cannot GET /nope", err.Message)
	})
}

func TestDefaultErrorResponder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "application error",
			err:  httplog.BadRequest("name is required"),
			code: http.StatusBadRequest,
			body: `{"statusCode":400,"message":"name is required"}`,
		},
		{
			name: "wrapped application error",
			err:  fmt.Errorf("validate: %w", httplog.BadRequest("")),
			code: http.StatusBadRequest,
			body: `{"statusCode":400,"message":"Bad Request"}`,
		},
		{
			name: "unknown error",
			err:  errors.New("nil pointer dereference"),
			code: http.StatusInternalServerError,
			body: `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name: "application error without a status",
			err:  &httplog.HTTPError{Message: "oops"},
			code: http.StatusInternalServerError,
			body: `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name: "application error with an out of range status",
			err:  httplog.NewHTTPError(600, "oops"),
			code: http.StatusInternalServerError,
			body: `{"statusCode":500,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httplog.DefaultErrorResponder(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
