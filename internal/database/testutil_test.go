package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   memoryPath,
	}, discardLogger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { closeDB(db) })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*gorm.DB, config.DatabaseConfig) {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "board", "workboard.db"),
	}
	db, err := InitDB(context.Background(), cfg, discardLogger)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, cfg
}

// newTestRepo builds a Repository over a fresh in-memory database
func newTestRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), append([]Option{WithLogger(discardLogger)}, opts...)...)
}

// stepClock returns a fixed instant that moves forward by one minute per call
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func newStepClock() *stepClock {
	return &stepClock{next: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Minute)
	return now
}

// ============================================================================
// SEED HELPERS
// ============================================================================

func createTestTag(t *testing.T, repo *Repository, name string) int {
	t.Helper()
	resp, id, err := repo.Tags().Create(context.Background(), models.TagCreateDTO{Name: name})
	if err != nil {
		t.Fatalf("Failed to create tag %q: %v", name, err)
	}
	if resp != models.Created {
		t.Fatalf("Expected Created for tag %q, got %s", name, resp)
	}
	return id
}

func createTestUser(t *testing.T, repo *Repository, name, email string) int {
	t.Helper()
	resp, id, err := repo.Users().Create(context.Background(), models.UserCreateDTO{Name: name, Email: email})
	if err != nil {
		t.Fatalf("Failed to create user %q: %v", name, err)
	}
	if resp != models.Created {
		t.Fatalf("Expected Created for user %q, got %s", name, resp)
	}
	return id
}

func createTestItem(t *testing.T, repo *Repository, title string, tags ...string) int {
	t.Helper()
	resp, id, err := repo.WorkItems().Create(context.Background(), models.WorkItemCreateDTO{Title: title, Tags: tags})
	if err != nil {
		t.Fatalf("Failed to create work item %q: %v", title, err)
	}
	if resp != models.Created {
		t.Fatalf("Expected Created for work item %q, got %s", title, resp)
	}
	return id
}

// moveItem walks an item into state through a full update, keeping its other fields
func moveItem(t *testing.T, repo *Repository, id, assignee int, state models.State) {
	t.Helper()
	ctx := context.Background()
	item, err := repo.WorkItems().Find(ctx, id)
	if err != nil || item == nil {
		t.Fatalf("Failed to find work item %d: %v", id, err)
	}
	resp, err := repo.WorkItems().Update(ctx, models.WorkItemUpdateDTO{
		ID:           id,
		Title:        item.Title,
		AssignedToID: &assignee,
		Description:  &item.Description,
		Tags:         item.Tags,
		State:        state,
	})
	if err != nil {
		t.Fatalf("Failed to move work item %d to %s: %v", id, state, err)
	}
	if resp != models.Updated {
		t.Fatalf("Expected Updated moving work item %d to %s, got %s", id, state, resp)
	}
}

// countRows counts rows in a table without going through a repository
func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
