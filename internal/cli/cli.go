// Package cli holds the shared plumbing for workboard's commands: the store
// handle, output formatting, validation and exit codes
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/database"
	"github.com/thenoetrevino/workboard/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	Store database.DataStore
	owned bool
}

// NewCLI opens the store described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	repo, err := database.Open(ctx, cfg.Database, logging.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{Store: repo, owned: true}, nil
}

// Close releases the store when this CLI opened it.
// An injected store belongs to whoever injected it.
func (c *CLI) Close() error {
	if !c.owned || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
