package httplog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// HTTPError is an application error that carries the HTTP status it should
// be answered with. Returning one from a HandlerFunc is an expected outcome.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError. An empty message defaults to the status text.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message}
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func (e *HTTPError) Error() string {
	return strconv.Itoa(e.Status) + " " + e.Message
}

func (e *HTTPError) StatusCode() int {
	return e.Status
}

// validStatus reports whether status can be written as a response status.
func validStatus(status int) bool {
	return status >= 100 && status <= 599
}

// internalServerError is what callers see instead of an unrecognized error.
func internalServerError() *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

// ErrorResponder writes err, as returned by the interceptor, to the client.
type ErrorResponder func(w http.ResponseWriter, req *http.Request, err error)

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// DefaultErrorResponder answers with the error's status and a JSON body
// {"statusCode": ..., "message": ...}. Errors that are not an HTTPError, or
// carry a status outside 100-599, are answered with a generic 500.
func DefaultErrorResponder(w http.ResponseWriter, _ *http.Request, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || !validStatus(httpErr.Status) {
		httpErr = internalServerError()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Status)
	_ = json.NewEncoder(w).Encode(&errorBody{
		StatusCode: httpErr.Status,
		Message:    httpErr.Message,
	})
}
