package database

import (
	"context"

	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// runMigrations creates or updates the schema.
// The unique indexes on tags.name, users.name, users.email and work_items.title
// come from the model tags and back every uniqueness rule in the repositories.
func runMigrations(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.WorkItem{},
	)
}
