package filter

import (
	"log/slog"
	"time"
)

// Option configures a JobsFilter.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

type config struct {
	clock  func() time.Time
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{
		clock:  time.Now,
		logger: slog.Default(),
	}
}

// WithClock sets the time source. It is read once, when the filter is built.
func WithClock(clock func() time.Time) Option {
	return optionFunc(func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	})
}

// WithNow fixes the filter's current time.
func WithNow(now time.Time) Option {
	return WithClock(func() time.Time { return now })
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}
