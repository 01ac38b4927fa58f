package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/database"
	"github.com/thenoetrevino/workboard/internal/models"
)

// SetupTestStore creates an in-memory store with the full schema.
// The store is closed when the test ends.
func SetupTestStore(t *testing.T, opts ...database.Option) *database.Repository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, logger, opts...)
	require.NoError(t, err, "failed to create test store")

	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// CreateTestTag creates a tag and returns its ID
func CreateTestTag(t *testing.T, store database.DataStore, name string) int {
	t.Helper()
	resp, id, err := store.Tags().Create(context.Background(), models.TagCreateDTO{Name: name})
	require.NoError(t, err)
	require.Equal(t, models.Created, resp, "tag %q", name)
	return id
}

// CreateTestUser creates a user and returns its ID
func CreateTestUser(t *testing.T, store database.DataStore, name, email string) int {
	t.Helper()
	resp, id, err := store.Users().Create(context.Background(), models.UserCreateDTO{Name: name, Email: email})
	require.NoError(t, err)
	require.Equal(t, models.Created, resp, "user %q", name)
	return id
}

// CreateTestItem creates a work item in the New state and returns its ID
func CreateTestItem(t *testing.T, store database.DataStore, title string, tags ...string) int {
	t.Helper()
	resp, id, err := store.WorkItems().Create(context.Background(), models.WorkItemCreateDTO{Title: title, Tags: tags})
	require.NoError(t, err)
	require.Equal(t, models.Created, resp, "work item %q", title)
	return id
}

// SetItemState assigns a work item to userID and moves it into state
func SetItemState(t *testing.T, store database.DataStore, itemID, userID int, state models.State) {
	t.Helper()
	ctx := context.Background()

	item, err := store.WorkItems().Find(ctx, itemID)
	require.NoError(t, err)
	require.NotNil(t, item, "work item %d", itemID)

	resp, err := store.WorkItems().Update(ctx, models.WorkItemUpdateDTO{
		ID:           itemID,
		Title:        item.Title,
		AssignedToID: &userID,
		Description:  &item.Description,
		Tags:         item.Tags,
		State:        state,
	})
	require.NoError(t, err)
	require.Equal(t, models.Updated, resp)
}
