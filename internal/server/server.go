package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jhaveripatric/plugin-server/internal/api"
	"github.com/jhaveripatric/plugin-server/internal/config"
	"github.com/jhaveripatric/plugin-server/internal/manifest"
	"github.com/jhaveripatric/plugin-server/internal/middleware"
	"github.com/jhaveripatric/plugin-server/internal/openapi"
	"github.com/jhaveripatric/plugin-server/internal/router"
)

const (
	apiTitle   = "Plugin Server"
	apiVersion = "1.0"
)

// Server is the plugin HTTP server.
type Server struct {
	settings *config.Settings
	logger   *zap.Logger
	router   chi.Router
	http     *http.Server
}

// New wires the routes for a built manifest.
func New(settings *config.Settings, m *manifest.Manifest, logger *zap.Logger) (*Server, error) {
	a := api.New(m.NameForModel)

	doc, err := openapi.New(apiTitle, apiVersion, settings.APIURL(), a)
	if err != nil {
		return nil, err
	}

	builder, err := router.NewBuilder(m, doc, a, settings.LogoFile, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{settings: settings, logger: logger}
	s.router = s.buildRouter(builder)
	s.http = &http.Server{
		Addr:              settings.Host,
		Handler:           s.router,
		ReadHeaderTimeout: settings.ReadHeaderTimeout,
	}
	return s, nil
}

func (s *Server) buildRouter(builder *router.Builder) chi.Router {
	r := chi.NewRouter()

	// Middleware stack (order matters)
	r.Use(middleware.RequestID)
	r.Use(middleware.Security)
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.CORS(s.settings.CORS.AllowedOrigins))
	r.Use(middleware.Logger(s.logger))

	// Health endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readyHandler)

	r.Mount("/", builder.Build())

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// readyHandler always reports ready: everything it serves is built before
// the listener opens.
func (s *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

// Handler exposes the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured host and serves until ctx is cancelled, then
// shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.settings.Host)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.settings.Host, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting plugin server",
		zap.String("addr", ln.Addr().String()),
		zap.String("public_url", s.settings.PublicURL.String()),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := s.http.Close(); closeErr != nil {
			s.logger.Error("forced close failed", zap.Error(closeErr))
		}
		return err
	}
	return nil
}
