// Package server exposes a TaskStore over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/josephgoksu/taskdeck/internal/auth"
	"github.com/josephgoksu/taskdeck/internal/telemetry"
	"github.com/josephgoksu/taskdeck/store"
)

// Options configures a Server.
type Options struct {
	Host           string
	Port           int
	Store          store.TaskStore
	Auth           auth.Authenticator
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	AllowedOrigins []string
}

// Server is the taskdeck HTTP server.
type Server struct {
	store      store.TaskStore
	auth       auth.Authenticator
	log        *slog.Logger
	metrics    *telemetry.Metrics
	origins    map[string]struct{}
	anyOrigin  bool
	mux        *chi.Mux
	handler    http.Handler
	httpServer *http.Server
}

// New wires the router around the given store and authenticator.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("server: store is required")
	}
	if opts.Auth == nil {
		return nil, errors.New("server: authenticator is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		store:   opts.Store,
		auth:    opts.Auth,
		log:     opts.Logger,
		metrics: opts.Metrics,
		origins: make(map[string]struct{}, len(opts.AllowedOrigins)),
	}
	for _, o := range opts.AllowedOrigins {
		if o == "*" {
			s.anyOrigin = true
			continue
		}
		s.origins[o] = struct{}{}
	}

	s.handler = s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens on the configured address. It blocks until the server is stopped.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. A graceful Shutdown is not an error.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("taskdeck server listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
