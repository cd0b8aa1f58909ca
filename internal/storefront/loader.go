package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/productapi"
)

// Loader issues the catalog fetch exactly once per lifetime and converts
// the outcome into a load Event. Close cancels an in-flight request; any
// result that arrives afterwards is discarded.
type Loader struct {
	fetcher productapi.Fetcher
	logger  *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	once   sync.Once
	result Event
	ok     bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to record fetch outcomes.
func WithLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader whose lifetime is bounded by parent.
func NewLoader(parent context.Context, fetcher productapi.Fetcher, opts ...LoaderOption) *Loader {
	ctx, cancel := context.WithCancel(parent)
	l := &Loader{
		fetcher: fetcher,
		logger:  logging.NopLogger(),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load performs the fetch on first call and returns the resulting event.
// Subsequent calls return the same event without another request. ok is
// false when the loader was closed before the result arrived, in which case
// the event must not be applied.
func (l *Loader) Load() (ev Event, ok bool) {
	l.once.Do(func() {
		start := time.Now()
		products, err := l.fetcher.FetchProducts(l.ctx)

		if l.ctx.Err() != nil {
			l.logger.Debug("catalog load discarded after close",
				"duration_ms", time.Since(start).Milliseconds())
			return
		}

		if err != nil {
			l.logger.Warn("catalog load failed",
				"error", err.Error(),
				"duration_ms", time.Since(start).Milliseconds())
			l.result, l.ok = LoadFailed{Err: err}, true
			return
		}

		l.logger.Info("catalog loaded",
			"products", len(products),
			"duration_ms", time.Since(start).Milliseconds())
		l.result, l.ok = LoadSucceeded{Products: products}, true
	})

	if l.ctx.Err() != nil {
		return nil, false
	}
	return l.result, l.ok
}

// Close cancels any in-flight request. It is safe to call more than once.
func (l *Loader) Close() {
	l.cancel()
}

// Closed reports whether Close has been called or the parent context ended.
func (l *Loader) Closed() bool {
	return l.ctx.Err() != nil
}
