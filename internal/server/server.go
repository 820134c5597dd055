// Package server exposes the validators as a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandlint/internal/accessibility"
)

// Header constants.
const (
	CacheControlHeaderKey     = "Cache-Control"
	CacheControlHeaderNoCache = "no-cache"
	ContentTypeHeaderKey      = "Content-Type"
	ContentTypeJSON           = "application/json"
)

const (
	maxHeaderBytes  = 60000
	shutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AllowedOrigins enables CORS for the listed origins. Empty disables CORS.
	AllowedOrigins []string
	// PresetWorkers bounds concurrency for the preset preview endpoint.
	PresetWorkers int
	Validator     *accessibility.Validator
	Logger        hclog.Logger
}

// Server serves the brandlint API.
type Server struct {
	opts      Options
	validator *accessibility.Validator
	logger    hclog.Logger
	handler   http.Handler
}

// New creates a server and builds its routes.
func New(opts Options) *Server {
	s := &Server{
		opts:      opts,
		validator: opts.Validator,
		logger:    opts.Logger,
	}
	if s.validator == nil {
		s.validator = accessibility.New()
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	s.logger = s.logger.Named("server")
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/validate/theme", s.wrap(s.handleValidateTheme)).Methods(http.MethodPost)
	api.HandleFunc("/validate/colors", s.wrap(s.handleValidateColors)).Methods(http.MethodPost)
	api.HandleFunc("/validate/typography", s.wrap(s.handleValidateTypography)).Methods(http.MethodPost)
	api.HandleFunc("/contrast", s.wrap(s.handleContrast)).Methods(http.MethodGet)
	api.HandleFunc("/suggest", s.wrap(s.handleSuggest)).Methods(http.MethodGet)
	api.HandleFunc("/presets/preview", s.wrap(s.handlePresetPreview)).Methods(http.MethodPost)

	r.HandleFunc("/healthz", s.wrap(s.handleHealth)).Methods(http.MethodGet)
	r.HandleFunc("/version", s.wrap(s.handleVersion)).Methods(http.MethodGet)

	// Subrouters do not inherit these, so each router gets its own.
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = http.HandlerFunc(notFound)
		router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	}

	if len(s.opts.AllowedOrigins) == 0 {
		return r
	}
	return handlers.CORS(
		handlers.AllowedOrigins(s.opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{ContentTypeHeaderKey}),
	)(r)
}

// ListenAndServe serves on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("error creating listener at %v: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:        s.handler,
		ReadTimeout:    s.opts.ReadTimeout,
		WriteTimeout:   s.opts.WriteTimeout,
		MaxHeaderBytes: maxHeaderBytes,
		BaseContext:    func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}
