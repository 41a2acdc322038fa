package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/marnixbouhuis/httplog"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP server with request logging and permissive CORS installed.
type Server struct {
	server *http.Server
	logger *httplog.Logger
}

func New(addr string, logger *httplog.Logger) (*Server, error) {
	// net/http reports accept and TLS errors through this logger.
	errorLog, err := logger.StdLogger("HTTPServer", httplog.ErrorLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create server error log: %w", err)
	}

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewHandler(logger),
			ErrorLog:          errorLog,
			ReadHeaderTimeout: 15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}, nil
}

// NewHandler returns the application routes wrapped in the request
// interceptor, behind a CORS handler that allows any origin.
func NewHandler(logger *httplog.Logger) http.Handler {
	interceptor := httplog.NewInterceptor(logger)

	mux := http.NewServeMux()
	mux.Handle("GET /health", interceptor.Wrap(health))
	mux.Handle("/", interceptor.Wrap(notFound))

	options := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}
	// CORS decisions are only interesting while debugging, write them at verbose.
	if corsLog, err := logger.StdLogger("CORS", httplog.VerboseLevel); err == nil && logger.Enabled(httplog.VerboseLevel) {
		options.Logger = corsLog
	}

	return cors.New(options).Handler(mux)
}

// Start listens on the configured address until the server is shut down.
// It returns nil after a clean shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info(fmt.Sprintf("Listening on %s", ln.Addr()))

	err := s.server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting at most five seconds for open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

func health(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func notFound(_ http.ResponseWriter, req *http.Request) error {
	return httplog.NotFound(fmt.Sprintf("Cannot %s %s", req.Method, req.URL.Path))
}
