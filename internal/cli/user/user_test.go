package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/models"
	"github.com/thenoetrevino/workboard/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	alice := testutil.CreateTestUser(t, store, "alice", "alice@example.com")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantID   float64
	}{
		{"new user", []string{"--name", "bob", "--email", "bob@example.com"}, cli.ExitSuccess, 2},
		{"taken name", []string{"--name", "alice", "--email", "a2@example.com"}, cli.ExitConflict, float64(alice)},
		{"taken email", []string{"--name", "carol", "--email", "alice@example.com"}, cli.ExitConflict, float64(alice)},
		{"bad email", []string{"--name", "dave", "--email", "not-an-email"}, cli.ExitValidation, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutil.ExecuteCLICommand(t, store, CreateCmd(), append(tt.args, "--json"))
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			result := testutil.ParseJSON(t, output)
			if tt.wantCode == cli.ExitSuccess {
				data := result["data"].(map[string]any)
				assert.Equal(t, tt.wantID, data["id"])
				return
			}
			errData := result["error"].(map[string]any)
			if tt.wantID > 0 {
				assert.Equal(t, tt.wantID, errData["id"])
			} else {
				assert.Equal(t, "INVALID_INPUT", errData["code"])
				assert.Contains(t, errData["message"], "--email must be a valid email address")
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.CreateTestUser(t, store, "bob", "bob@example.com")
	testutil.CreateTestUser(t, store, "alice", "alice@example.com")

	output, err := testutil.ExecuteCLICommand(t, store, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "alice", data[0].(map[string]any)["name"])
	assert.Equal(t, "bob", data[1].(map[string]any)["name"])
}

func TestShowUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	id := testutil.CreateTestUser(t, store, "alice", "alice@example.com")

	output, err := testutil.ExecuteCLICommand(t, store, ShowCmd(), []string{"--id", fmt.Sprint(id)})
	require.NoError(t, err)
	assert.Contains(t, output, "alice@example.com")

	_, err = testutil.ExecuteCLICommand(t, store, ShowCmd(), []string{"--id", "42"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestUpdateUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	alice := testutil.CreateTestUser(t, store, "alice", "alice@example.com")
	testutil.CreateTestUser(t, store, "bob", "bob@example.com")

	_, err := testutil.ExecuteCLICommand(t, store, UpdateCmd(), []string{
		"--id", fmt.Sprint(alice), "--name", "alicia", "--email", "bob@example.com",
	})
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))

	_, err = testutil.ExecuteCLICommand(t, store, UpdateCmd(), []string{
		"--id", "99", "--name", "ghost", "--email", "ghost@example.com",
	})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	output, err := testutil.ExecuteCLICommand(t, store, UpdateCmd(), []string{
		"--id", fmt.Sprint(alice), "--name", "alicia", "--email", "alicia@example.com", "--quiet",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", alice), output)
}

func TestDeleteUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	alice := testutil.CreateTestUser(t, store, "alice", "alice@example.com")
	item := testutil.CreateTestItem(t, store, "Write docs")
	testutil.SetItemState(t, store, item, alice, models.StateActive)

	_, err := testutil.ExecuteCLICommand(t, store, DeleteCmd(), []string{"--id", fmt.Sprint(alice)})
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))

	_, err = testutil.ExecuteCLICommand(t, store, DeleteCmd(), []string{"--id", fmt.Sprint(alice), "--force"})
	require.NoError(t, err)

	detail, err := store.WorkItems().Find(context.Background(), item)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "", detail.AssignedToName)
}
