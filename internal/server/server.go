package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-palette/internal/metrics"
	"github.com/goliatone/go-palette/pkg/orchestrator"
	rendertemplate "github.com/goliatone/go-palette/pkg/render/template"
	gotemplate "github.com/goliatone/go-palette/pkg/render/template/gotemplate"
	"github.com/goliatone/go-palette/pkg/renderers/vanilla"
	"github.com/goliatone/go-palette/pkg/schema"
)

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContract serves contract instead of the built-in one.
func WithContract(contract schema.Contract) Option {
	return func(s *Server) {
		s.contract = contract.Clone()
	}
}

// WithTheme sets the theme variant requested for every page. The name comes
// from the orchestrator unless set here.
func WithTheme(name, variant string) Option {
	return func(s *Server) {
		s.themeName = name
		s.themeVariant = variant
	}
}

// WithMetrics toggles the /metrics route and request counters.
func WithMetrics(enabled bool) Option {
	return func(s *Server) {
		s.metricsEnabled = enabled
	}
}

// WithStylesheetEngine overrides the template engine used for /theme.css.
func WithStylesheetEngine(engine rendertemplate.TemplateRenderer) Option {
	return func(s *Server) {
		if engine != nil {
			s.stylesheets = engine
		}
	}
}

// Server serves the colour form over HTTP.
type Server struct {
	orch           *orchestrator.Orchestrator
	contract       schema.Contract
	themeName      string
	themeVariant   string
	metricsEnabled bool
	stylesheets    rendertemplate.TemplateRenderer
	logger         *zap.Logger
	mux            *http.ServeMux
}

// New builds a server around orch.
func New(orch *orchestrator.Orchestrator, options ...Option) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	s := &Server{
		orch:           orch,
		contract:       schema.DefaultContract(),
		metricsEnabled: true,
		logger:         zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.stylesheets == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(vanilla.TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("server: stylesheet engine: %w", err)
		}
		s.stylesheets = engine
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux = http.NewServeMux()
	s.handle("GET /{$}", "/", s.handleForm)
	s.handle("POST /{$}", "/", s.handleSubmit)
	s.handle("GET /theme.css", "/theme.css", s.handleThemeCSS)
	s.handle("GET /assets/", "/assets",
		http.StripPrefix("/assets/", http.FileServerFS(vanilla.AssetsFS())).ServeHTTP)
	if s.metricsEnabled {
		s.mux.Handle("GET /metrics", metrics.Handler())
	}
}

func (s *Server) handle(pattern, route string, fn http.HandlerFunc) {
	s.mux.Handle(pattern, s.instrument(route, fn))
}

// Handler exposes the routes for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("palette server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("palette server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}
