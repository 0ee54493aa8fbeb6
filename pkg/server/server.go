// Package server serves stats cards over HTTP.
//
// GET /api?username=<name>&<options> responds with an image/svg+xml card.
// Failures are rendered as error cards with status 200 so that image embeds
// always display something. Rendered cards are cached, and concurrent
// requests for the same card share one render.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/statcard/pkg/buildinfo"
	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/source"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// Defaults for [Options].
const (
	DefaultTTL            = 4 * time.Hour
	DefaultRequestTimeout = 10 * time.Second
)

// Options configures a [Server].
type Options struct {
	Source         source.Source // required
	Cache          cache.Cache   // nil disables caching
	Keyer          cache.Keyer   // nil uses cache.NewDefaultKeyer
	TTL            time.Duration // card cache lifetime
	RequestTimeout time.Duration
	CORSOrigins    []string
	Logger         *log.Logger
	Clock          statscard.Clock // nil uses the system clock
}

// Server is the card HTTP server.
type Server struct {
	router  chi.Router
	source  source.Source
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	timeout time.Duration
	origins []string
	logger  *log.Logger
	clock   statscard.Clock
	group   singleflight.Group
}

// New creates a server with all routes and middleware.
func New(opts Options) *Server {
	s := &Server{
		source:  opts.Source,
		cache:   opts.Cache,
		keyer:   opts.Keyer,
		ttl:     opts.TTL,
		timeout: opts.RequestTimeout,
		origins: opts.CORSOrigins,
		logger:  opts.Logger,
		clock:   opts.Clock,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.timeout <= 0 {
		s.timeout = DefaultRequestTimeout
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.clock == nil {
		s.clock = statscard.ClockFunc(time.Now)
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/api", s.handleCard)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"source":  s.source.Name(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
