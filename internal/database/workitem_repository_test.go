package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/workboard/internal/models"
)

func strPtr(s string) *string { return &s }

func TestWorkItemCreate(t *testing.T) {
	clock := newStepClock()
	repo := newTestRepo(t, WithClock(clock.Now))
	ctx := context.Background()

	resp, id, err := repo.WorkItems().Create(ctx, models.WorkItemCreateDTO{
		Title:       "Login page",
		Description: strPtr("Build the **login** form"),
		Tags:        []string{"frontend", "urgent", "frontend"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp != models.Created || id == 0 {
		t.Fatalf("Expected Created with an id, got (%s, %d)", resp, id)
	}

	item, err := repo.WorkItems().Find(ctx, id)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if item == nil {
		t.Fatal("Expected the created item to be found")
	}
	if item.State != models.StateNew {
		t.Errorf("Expected state New, got %s", item.State)
	}
	if item.Description != "Build the **login** form" {
		t.Errorf("Unexpected description %q", item.Description)
	}
	want := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if !item.Created.Equal(want) || !item.StateUpdated.Equal(want) {
		t.Errorf("Expected Created and StateUpdated %v, got %v and %v", want, item.Created, item.StateUpdated)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "frontend" || item.Tags[1] != "urgent" {
		t.Errorf("Expected tags [frontend urgent], got %v", item.Tags)
	}
	if item.AssignedToName != "" {
		t.Errorf("Expected unassigned item, got %q", item.AssignedToName)
	}
}

func TestWorkItemCreateDuplicateTitle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	existing := createTestItem(t, repo, "Login page")

	resp, id, err := repo.WorkItems().Create(ctx, models.WorkItemCreateDTO{Title: "Login page", Tags: []string{"new-tag"}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp != models.Conflict || id != existing {
		t.Errorf("Expected (Conflict, %d), got (%s, %d)", existing, resp, id)
	}
	if n := countRows(t, repo.DB(), "tags"); n != 0 {
		t.Errorf("Expected a rejected create to add no tags, got %d", n)
	}
}

// TestWorkItemTagReconciliation tests that existing tags are reused and only new names are inserted
func TestWorkItemTagReconciliation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	bugID := createTestTag(t, repo, "bug")
	createTestItem(t, repo, "First", "bug", "backend")
	createTestItem(t, repo, "Second", "backend", "  bug  ", "")

	tags, err := repo.Tags().Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags after reconciliation, got %+v", tags)
	}
	if tags[0].Name != "backend" || tags[1].Name != "bug" || tags[1].ID != bugID {
		t.Errorf("Expected backend and the original bug tag, got %+v", tags)
	}
	if n := countRows(t, repo.DB(), "work_item_tags"); n != 4 {
		t.Errorf("Expected 4 join rows, got %d", n)
	}
}

// TestWorkItemDeleteStateMatrix tests the deletion policy for every state
func TestWorkItemDeleteStateMatrix(t *testing.T) {
	tests := []struct {
		state     models.State
		want      models.Response
		wantState models.State
		removed   bool
	}{
		{models.StateNew, models.Deleted, "", true},
		{models.StateActive, models.Updated, models.StateRemoved, false},
		{models.StateResolved, models.Conflict, models.StateResolved, false},
		{models.StateClosed, models.Conflict, models.StateClosed, false},
		{models.StateRemoved, models.Conflict, models.StateRemoved, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			clock := newStepClock()
			repo := newTestRepo(t, WithClock(clock.Now))
			ctx := context.Background()

			userID := createTestUser(t, repo, "alice", "alice@example.com")
			id := createTestItem(t, repo, "Card", "ops")
			if tt.state != models.StateNew {
				moveItem(t, repo, id, userID, tt.state)
			}
			before, err := repo.WorkItems().Find(ctx, id)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}

			resp, err := repo.WorkItems().Delete(ctx, id)
			if err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if resp != tt.want {
				t.Fatalf("Expected %s, got %s", tt.want, resp)
			}

			after, err := repo.WorkItems().Find(ctx, id)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if tt.removed {
				if after != nil {
					t.Errorf("Expected row to be gone, got %+v", after)
				}
				if n := countRows(t, repo.DB(), "work_item_tags"); n != 0 {
					t.Errorf("Expected join rows to be gone, got %d", n)
				}
				return
			}
			if after.State != tt.wantState {
				t.Errorf("Expected state %s, got %s", tt.wantState, after.State)
			}
			advanced := after.StateUpdated.After(before.StateUpdated)
			if advanced != (tt.want == models.Updated) {
				t.Errorf("StateUpdated moved from %v to %v on %s", before.StateUpdated, after.StateUpdated, resp)
			}
		})
	}
}

func TestWorkItemDeleteMissing(t *testing.T) {
	repo := newTestRepo(t)

	resp, err := repo.WorkItems().Delete(context.Background(), 7)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if resp != models.Conflict {
		t.Errorf("Expected Conflict deleting a missing item, got %s", resp)
	}
}

func TestWorkItemUpdate(t *testing.T) {
	clock := newStepClock()
	repo := newTestRepo(t, WithClock(clock.Now))
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice", "alice@example.com")
	id := createTestItem(t, repo, "Login page", "frontend", "urgent")

	resp, err := repo.WorkItems().Update(ctx, models.WorkItemUpdateDTO{
		ID:           id,
		Title:        "Login and signup",
		AssignedToID: &userID,
		Description:  strPtr("Both forms"),
		Tags:         []string{"frontend", "auth"},
		State:        models.StateActive,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp != models.Updated {
		t.Fatalf("Expected Updated, got %s", resp)
	}

	item, err := repo.WorkItems().Find(ctx, id)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if item.Title != "Login and signup" || item.Description != "Both forms" {
		t.Errorf("Fields not overwritten: %+v", item)
	}
	if item.AssignedToName != "alice" {
		t.Errorf("Expected assignee alice, got %q", item.AssignedToName)
	}
	if item.State != models.StateActive {
		t.Errorf("Expected Active, got %s", item.State)
	}
	if !item.StateUpdated.After(item.Created) {
		t.Errorf("Expected StateUpdated %v to advance past Created %v", item.StateUpdated, item.Created)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "auth" || item.Tags[1] != "frontend" {
		t.Errorf("Expected tags [auth frontend], got %v", item.Tags)
	}

	// An empty tag list detaches every tag but keeps the tag rows
	resp, err = repo.WorkItems().Update(ctx, models.WorkItemUpdateDTO{
		ID:           id,
		Title:        item.Title,
		AssignedToID: &userID,
		State:        models.StateResolved,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp != models.Updated {
		t.Fatalf("Expected Updated, got %s", resp)
	}
	item, err = repo.WorkItems().Find(ctx, id)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(item.Tags) != 0 || item.Description != "" {
		t.Errorf("Expected no tags and no description, got %+v", item)
	}
	if n := countRows(t, repo.DB(), "tags"); n != 3 {
		t.Errorf("Expected 3 tag rows to remain, got %d", n)
	}
}

// TestWorkItemUpdateRejected tests that rejected updates leave the row untouched
func TestWorkItemUpdateRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	userID := createTestUser(t, repo, "alice", "alice@example.com")
	missingUser := 404
	id := createTestItem(t, repo, "Login page", "frontend")
	createTestItem(t, repo, "Signup page")

	tests := []struct {
		name string
		dto  models.WorkItemUpdateDTO
		want models.Response
	}{
		{"missing item", models.WorkItemUpdateDTO{ID: 999, Title: "x", AssignedToID: &userID, State: models.StateActive}, models.BadRequest},
		{"missing assignee", models.WorkItemUpdateDTO{ID: id, Title: "x", AssignedToID: &missingUser, State: models.StateActive}, models.BadRequest},
		{"no assignee", models.WorkItemUpdateDTO{ID: id, Title: "x", State: models.StateActive}, models.BadRequest},
		{"invalid state", models.WorkItemUpdateDTO{ID: id, Title: "x", AssignedToID: &userID, State: "Done"}, models.BadRequest},
		{"duplicate title", models.WorkItemUpdateDTO{ID: id, Title: "Signup page", AssignedToID: &userID, Tags: []string{"other"}, State: models.StateActive}, models.Conflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := repo.WorkItems().Update(ctx, tt.dto)
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if resp != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, resp)
			}
		})
	}

	item, err := repo.WorkItems().Find(ctx, id)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if item.Title != "Login page" || item.State != models.StateNew || item.AssignedToName != "" {
		t.Errorf("Expected the item to be unchanged, got %+v", item)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "frontend" {
		t.Errorf("Expected tags [frontend], got %v", item.Tags)
	}
	if n := countRows(t, repo.DB(), "tags"); n != 1 {
		t.Errorf("Expected the rolled back update to leave 1 tag, got %d", n)
	}
}

func TestWorkItemReadFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice", "alice@example.com")
	bob := createTestUser(t, repo, "bob", "bob@example.com")

	charlie := createTestItem(t, repo, "Charlie", "backend")
	alpha := createTestItem(t, repo, "Alpha", "frontend", "backend")
	bravo := createTestItem(t, repo, "Bravo", "frontend")
	delta := createTestItem(t, repo, "Delta")

	moveItem(t, repo, charlie, alice, models.StateActive)
	moveItem(t, repo, alpha, bob, models.StateActive)
	moveItem(t, repo, delta, alice, models.StateActive)
	if resp, err := repo.WorkItems().Delete(ctx, delta); err != nil || resp != models.Updated {
		t.Fatalf("Expected Delta to be marked removed, got %s, %v", resp, err)
	}

	titles := func(items []models.WorkItemDTO) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Title
		}
		return out
	}

	tests := []struct {
		name string
		read func() ([]models.WorkItemDTO, error)
		want []string
	}{
		{"all", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().Read(ctx) }, []string{"Alpha", "Bravo", "Charlie", "Delta"}},
		{"by state", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().ReadByState(ctx, models.StateActive) }, []string{"Alpha", "Charlie"}},
		{"by tag", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().ReadByTag(ctx, "backend") }, []string{"Alpha", "Charlie"}},
		{"by unknown tag", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().ReadByTag(ctx, "nope") }, []string{}},
		{"by user", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().ReadByUser(ctx, alice) }, []string{"Charlie", "Delta"}},
		{"removed", func() ([]models.WorkItemDTO, error) { return repo.WorkItems().ReadRemoved(ctx) }, []string{"Delta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := tt.read()
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			got := titles(items)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}

	// Filtering by tag still projects every tag of the matching items
	byTag, err := repo.WorkItems().ReadByTag(ctx, "frontend")
	if err != nil {
		t.Fatalf("ReadByTag failed: %v", err)
	}
	if len(byTag) != 2 || len(byTag[0].Tags) != 2 {
		t.Fatalf("Expected Alpha with both tags first, got %+v", byTag)
	}
	if byTag[0].AssignedToName != "bob" || byTag[1].ID != bravo {
		t.Errorf("Unexpected projection %+v", byTag)
	}
}

func TestWorkItemConcurrentCreate(t *testing.T) {
	db, _ := setupTestDBFile(t)
	t.Cleanup(func() { closeDB(db) })
	repo := NewRepository(db, WithLogger(discardLogger))

	titles := []string{"Login page", "Signup page"}
	const workers = 20

	type outcome struct {
		title string
		resp  models.Response
		id    int
		err   error
	}

	var wg sync.WaitGroup
	results := make(chan outcome, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		title := titles[i%len(titles)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			resp, id, err := repo.WorkItems().Create(context.Background(), models.WorkItemCreateDTO{
				Title: title,
				Tags:  []string{"shared", "b"},
			})
			results <- outcome{title: title, resp: resp, id: id, err: err}
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	created := make(map[string]int)
	var conflicts []outcome
	for r := range results {
		if r.err != nil {
			t.Fatalf("Create(%q) failed: %v", r.title, r.err)
		}
		switch r.resp {
		case models.Created:
			if _, dup := created[r.title]; dup {
				t.Fatalf("Title %q was created twice", r.title)
			}
			created[r.title] = r.id
		case models.Conflict:
			conflicts = append(conflicts, r)
		default:
			t.Fatalf("Unexpected response %s for %q", r.resp, r.title)
		}
	}

	if len(created) != len(titles) {
		t.Fatalf("Expected one Created per title, got %v", created)
	}
	if len(conflicts) != workers-len(titles) {
		t.Errorf("Expected %d conflicts, got %d", workers-len(titles), len(conflicts))
	}
	for _, c := range conflicts {
		if c.id != created[c.title] {
			t.Errorf("Conflict for %q returned id %d, want %d", c.title, c.id, created[c.title])
		}
	}

	if n := countRows(t, db, "work_items"); n != int64(len(titles)) {
		t.Errorf("Expected %d work items, got %d", len(titles), n)
	}
	if n := countRows(t, db, "tags"); n != 2 {
		t.Errorf("Expected 2 tags, got %d", n)
	}
	if n := countRows(t, db, "work_item_tags"); n != 4 {
		t.Errorf("Expected 4 join rows, got %d", n)
	}
}

func TestWorkItemTagNamesKeptAsGiven(t *testing.T) {
	repo := newTestRepo(t)

	id := createTestItem(t, repo, "Login page", " a", "a", "a")

	item, err := repo.WorkItems().Find(context.Background(), id)
	if err != nil || item == nil {
		t.Fatalf("Find(%d) failed: %v", id, err)
	}
	if len(item.Tags) != 2 || item.Tags[0] != " a" || item.Tags[1] != "a" {
		t.Errorf("Expected tags [\" a\" \"a\"], got %q", item.Tags)
	}
	if n := countRows(t, repo.DB(), "tags"); n != 2 {
		t.Errorf("Expected 2 tags, got %d", n)
	}
}
