package tree

import (
	"io"
	"log/slog"
)

type config struct {
	logger *slog.Logger
}

// Option configures a tree at construction time.
type Option func(*config) *config

func defaultConfig() *config {
	return &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger makes the tree report mutations to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) *config {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}

func applyOptions(opts []Option) *config {
	c := defaultConfig()
	for _, opt := range opts {
		c = opt(c)
	}
	return c
}
