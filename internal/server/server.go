// Package server assembles the HTTP router and runs the HTTP server with
// graceful shutdown. cmd/api wires dependencies into it; tests drive it on an
// ephemeral port.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/field-notes/backend/internal/config"
	"github.com/pkordes/field-notes/backend/internal/handler"
	"github.com/pkordes/field-notes/backend/internal/handler/gen"
	"github.com/pkordes/field-notes/backend/internal/middleware"
	"github.com/pkordes/field-notes/backend/spec"
)

// NewRouter returns the full HTTP handler for the API.
//
// Middleware is applied in order: RequestID → RealIP → SlogLogger → Recoverer
// → CORS → MaxBodySize. CORS sits outside the routes so preflight OPTIONS
// requests are answered even though no route declares OPTIONS.
func NewRouter(cfg config.Config, log *slog.Logger, notes handler.NoteServicer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck
		w.Write(spec.OpenAPI)
	})

	srv := handler.NewServer(notes)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(log))
	gen.HandlerFromMux(strict, r)

	return r
}

// Server owns the *http.Server and its shutdown policy.
type Server struct {
	http            *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New constructs a Server listening on cfg.Addr() and serving h.
func New(cfg config.Config, log *slog.Logger, h http.Handler) *Server {
	return &Server{
		// Explicit timeouts prevent slowloris and resource exhaustion attacks.
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           h,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
		},
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("server.ListenAndServe: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then gives in-flight
// requests up to the shutdown timeout to complete before closing.
// It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", ln.Addr().String())
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		// Serve only returns early on a listener failure.
		return fmt.Errorf("server.Serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Serve: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Serve: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
