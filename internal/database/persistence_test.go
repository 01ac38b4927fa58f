package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/models"
)

// TestPersistenceAcrossReopen simulates a restart against a file-backed store
func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	db, cfg := setupTestDBFile(t)
	repo := NewRepository(db, WithLogger(discardLogger))

	userID := createTestUser(t, repo, "alice", "alice@example.com")
	itemID := createTestItem(t, repo, "Persisted", "keep")
	moveItem(t, repo, itemID, userID, models.StateActive)

	if err := repo.Close(); err != nil {
		t.Fatalf("Failed to close repository: %v", err)
	}

	reopened, err := Open(ctx, cfg, discardLogger)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer reopened.Close()

	if err := reopened.Health(ctx); err != nil {
		t.Fatalf("Health check failed: %v", err)
	}

	item, err := reopened.WorkItems().Find(ctx, itemID)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if item == nil {
		t.Fatal("Expected the work item to survive a reopen")
	}
	if item.AssignedToName != "alice" || item.State != models.StateActive {
		t.Errorf("Unexpected item after reopen: %+v", item)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "keep" {
		t.Errorf("Expected tags [keep], got %v", item.Tags)
	}
}

func TestInitDBUnsupportedDriver(t *testing.T) {
	_, err := InitDB(context.Background(), config.DatabaseConfig{Driver: "oracle"}, discardLogger)
	if err == nil {
		t.Fatal("Expected an error for an unsupported driver")
	}
}

func TestInitDBEmptyPath(t *testing.T) {
	_, err := InitDB(context.Background(), config.DatabaseConfig{Driver: config.DriverSQLite}, discardLogger)
	if err == nil {
		t.Fatal("Expected an error for an empty sqlite path")
	}
}
