// Package restapi is an HTTP remote control for running dialogs, meant for
// automated UI tests. Every request is executed on the UI goroutine through
// UI.Invoke, so it is served only while some dialog pumps events.
package restapi

import (
	"context"
	stdliberrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/yui"
)

// DefaultInvokeTimeout bounds how long a request waits for the UI goroutine.
const DefaultInvokeTimeout = 5 * time.Second

// Server serves the remote-control API for one UI.
type Server struct {
	ui      *yui.UI
	log     *logging.Logger
	timeout time.Duration
	router  *chi.Mux

	httpServer *http.Server
	listener   net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithInvokeTimeout overrides DefaultInvokeTimeout.
func WithInvokeTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// WithLogger overrides the UI's logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New builds a server for ui.
func New(ui *yui.UI, opts ...Option) *Server {
	s := &Server{ui: ui, log: ui.Logger(), timeout: DefaultInvokeTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Default()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(s.logRequests)
	router.Get("/healthz", s.handleHealthz)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/dialog", s.handleDialog)
		r.Get("/widgets", s.handleFindWidgets)
		r.Post("/widgets", s.handleWidgetAction)
	})
	return router
}

// Handler returns the API as an http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on addr and serves in the background until ctx ends or
// Stop is called.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return yerrors.Wrap(err, yerrors.ErrCodeInternal, "listening for remote control").WithContext("addr", addr)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           h2c.NewHandler(s.router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}
	go func() {
		s.log.Info(logging.CategoryRemote, "listen", "serving remote control", map[string]any{"addr": ln.Addr().String()})
		if err := s.httpServer.Serve(ln); err != nil && !stdliberrors.Is(err, http.ErrServerClosed) {
			s.log.Error(logging.CategoryRemote, "serve_failed", err.Error(), nil)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Stop(shutdownCtx)
	}()
	return nil
}

// Addr returns the listening address once Start succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug(logging.CategoryRemote, "request", r.Method+" "+r.URL.Path, map[string]any{
			"query":    r.URL.RawQuery,
			"duration": time.Since(start).String(),
		})
	})
}

// onUI runs fn on the UI goroutine within the invoke timeout.
func (s *Server) onUI(ctx context.Context, fn func()) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.ui.Invoke(ctx, fn); err != nil {
		return yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "UI did not service the request; is a dialog waiting for events?")
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}
