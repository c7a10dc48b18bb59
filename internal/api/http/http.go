// Package httpapi serves archived report documents to the dashboard.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jekabolt/grbpwr-pnl/internal/dependency"
	"github.com/jekabolt/grbpwr-pnl/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	reports dependency.Reports
	jobs    map[string]struct{}
	health  func(ctx context.Context) error
	limiter *ratelimit.Limiter
	done    chan struct{}
}

// New creates a new server. jobs lists the report names that may be requested;
// an empty list allows any name.
func New(config *Config, reports dependency.Reports, jobs []string) *Server {
	s := &Server{
		c:       config,
		reports: reports,
		jobs:    make(map[string]struct{}, len(jobs)),
		done:    make(chan struct{}),
	}
	for _, j := range jobs {
		s.jobs[j] = struct{}{}
	}
	if config.RateLimit.Enabled() {
		s.limiter = ratelimit.NewLimiter(config.RateLimit.Window, config.RateLimit.Requests)
	}
	return s
}

// WithHealthCheck adds a dependency probe to /healthz.
func (s *Server) WithHealthCheck(f func(ctx context.Context) error) *Server {
	s.health = f
	return s
}

// Done returns a channel that is closed when the server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router returns the API handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.limiter != nil {
		r.Use(s.limiter.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Route("/api/reports/{job}", func(r chi.Router) {
		r.Use(s.jobCtx)
		r.Get("/", s.listReports)
		r.Get("/latest", s.getLatestReport)
		r.Get("/{period}", s.getReport)
	})
	return r
}

// Start starts listening in the background.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "report api listening",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Close()
	}
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
