// Package ui provides an embeddable, read-only JSON API over a job record store.
package ui

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the UI handler.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

type config struct {
	middleware func(http.Handler) http.Handler
	logger     *slog.Logger
	clock      func() time.Time
	registry   *prometheus.Registry
}

// WithMiddleware wraps the handler with middleware (auth, logging, etc.).
func WithMiddleware(mw func(http.Handler) http.Handler) Option {
	return optionFunc(func(c *config) {
		c.middleware = mw
	})
}

// WithLogger sets the logger for request errors and filter debug output.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithClock sets the time source used for each request's filter.
func WithClock(clock func() time.Time) Option {
	return optionFunc(func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	})
}

// WithRegistry registers the handler's metrics on reg and serves reg at /metrics.
// By default each handler gets its own registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return optionFunc(func(c *config) {
		c.registry = reg
	})
}
