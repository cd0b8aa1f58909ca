// Package web serves the catalog as an HTML page and a JSON API. The
// catalog is loaded once when the server starts; every request derives its
// own view from the request's filter criteria.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/storefront"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTML presenter.
type Server struct {
	loader *storefront.Loader
	logger *logging.Logger
	router *chi.Mux

	mu    sync.RWMutex
	state storefront.State
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle and request logs.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a Server that loads the catalog through loader.
func NewServer(loader *storefront.Loader, opts ...Option) *Server {
	s := &Server{
		loader: loader,
		logger: logging.NopLogger(),
		state:  storefront.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handlePage)
	r.Get("/api/products", s.handleProducts)
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// State returns a snapshot of the shared catalog state.
func (s *Server) State() storefront.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Load runs the catalog fetch and applies its outcome. It blocks until the
// fetch completes and is a no-op once the loader is closed.
func (s *Server) Load() {
	ev, ok := s.loader.Load()
	if !ok {
		return
	}
	s.mu.Lock()
	s.state = storefront.Reduce(s.state, ev)
	phase, products := s.state.Phase, len(s.state.Catalog)
	s.mu.Unlock()

	s.logger.Info("catalog state changed", "phase", phase.String(), "products", products)
}

// view derives the state for one request from the shared catalog. A missing
// category parameter selects All; an empty one selects uncategorized
// products.
func (s *Server) view(r *http.Request) storefront.State {
	q := r.URL.Query()
	category := catalog.AllCategories
	if q.Has("category") {
		category = q.Get("category")
	}

	st := s.State()
	st = storefront.Reduce(st, storefront.QueryChanged{Query: q.Get("q")})
	st = storefront.Reduce(st, storefront.CategoryChanged{Category: category})
	return st
}

// errorLog routes errors reported by net/http itself through the server
// logger.
func (s *Server) errorLog() *log.Logger {
	return slog.NewLogLogger(s.logger.Slog().Handler(), slog.LevelError)
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln, loads the catalog in the background and
// shuts down gracefully when ctx is cancelled. The loader is closed on
// return so a pending fetch never outlives the server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.loader.Close()

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          s.errorLog(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.Load()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")
		s.loader.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// requestLogger logs one line per request with the chi request id.
func requestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.WithRequest(middleware.GetReqID(r.Context())).Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
