package cli

import (
	"context"

	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/database"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	storeKey  contextKey = "workboardStore"
	configKey contextKey = "workboardConfig"
)

// WithStore returns a context carrying an already open store.
// Commands run under it use the store instead of opening their own.
func WithStore(ctx context.Context, store database.DataStore) context.Context {
	return context.WithValue(ctx, storeKey, store)
}

// WithConfig returns a context carrying the resolved configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, if any
func ConfigFromContext(ctx context.Context) (*config.Config, bool) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	return cfg, ok && cfg != nil
}

// GetCLIFromContext returns a CLI over the injected store, or opens the
// configured one when none was injected
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if store, ok := ctx.Value(storeKey).(database.DataStore); ok && store != nil {
		return &CLI{Store: store}, nil
	}

	cfg, ok := ConfigFromContext(ctx)
	if !ok {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	return NewCLI(ctx, cfg)
}
