package database

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/workboard/internal/config"
)

// DataStore defines the unified interface for all data operations needed by the CLI.
// Consumers that only touch one entity can depend on the smaller repository
// interfaces instead.
type DataStore interface {
	Tags() TagRepository
	Users() UserRepository
	WorkItems() WorkItemRepository
	Health(ctx context.Context) error
	Close() error
}

var _ DataStore = (*Repository)(nil)

// Open connects to the configured store and returns a ready Repository
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, opts ...Option) (*Repository, error) {
	db, err := InitDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewRepository(db, append([]Option{WithLogger(logger)}, opts...)...), nil
}
