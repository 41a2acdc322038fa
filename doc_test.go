package httplog_test

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/marnixbouhuis/httplog"
)

func Example() {
	logger := httplog.New(httplog.DebugLevel)
	defer func() {
		_ = logger.Sync()
	}()

	// Logs "Logger: Custom logger (HTTP) created" once.
	interceptor := httplog.NewInterceptor(logger)

	mux := http.NewServeMux()
	mux.Handle("GET /users/{id}", interceptor.Wrap(func(w http.ResponseWriter, req *http.Request) error {
		// Optional, log something with the request logger.
		httplog.FromContext(req.Context()).Verbose("Looking up user " + req.PathValue("id"))

		if req.PathValue("id") != "1" {
			// Logged at debug as "GET /users/2 (404)" and answered with a 404.
			return httplog.NotFound("")
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("Hello world!"))
		return err
	}))

	s := &http.Server{
		Addr:         ":1337",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		Handler:      mux,
	}

	// Do graceful shutdown of HTTP server here...

	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server: " + err.Error())
		os.Exit(1)
	}
}

func ExampleLogger_WithLabel() {
	logger := httplog.New(httplog.InfoLevel, httplog.WithOutput(os.Stdout), httplog.WithColor(false))

	db := logger.WithLabel("Database")
	db.Warn("Slow query")
	db.Debug("Not written, below info")
}
