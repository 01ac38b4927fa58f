package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository provides a unified interface to all data operations.
// It composes the domain-specific repositories over one gorm handle.
type Repository struct {
	db        *gorm.DB
	tags      *TagRepo
	users     *UserRepo
	workItems *WorkItemRepo
}

// NewRepository creates a new Repository wrapping the given connection.
// The options are shared by every repository it composes.
func NewRepository(db *gorm.DB, opts ...Option) *Repository {
	return &Repository{
		db:        db,
		tags:      NewTagRepo(db, opts...),
		users:     NewUserRepo(db, opts...),
		workItems: NewWorkItemRepo(db, opts...),
	}
}

// Tags returns the tag repository
func (r *Repository) Tags() TagRepository {
	return r.tags
}

// Users returns the user repository
func (r *Repository) Users() UserRepository {
	return r.users
}

// WorkItems returns the work item repository
func (r *Repository) WorkItems() WorkItemRepository {
	return r.workItems
}

// DB exposes the underlying gorm handle
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Health pings the store
func (r *Repository) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}
