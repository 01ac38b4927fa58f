package database

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring repositories
type Option func(*repoConfig)

// repoConfig holds the configuration shared by the repositories
type repoConfig struct {
	logger *slog.Logger
	now    func() time.Time
}

func newRepoConfig(opts []Option) repoConfig {
	cfg := repoConfig{
		logger: slog.Default(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used for business outcome traces
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *repoConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock sets the time source for Created and StateUpdated stamps
func WithClock(now func() time.Time) Option {
	return func(cfg *repoConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}
