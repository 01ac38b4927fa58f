package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// State Tests
// ============================================================================

func TestParseState(t *testing.T) {
	tests := []struct {
		input    string
		expected State
		wantErr  bool
	}{
		{"New", StateNew, false},
		{"active", StateActive, false},
		{" RESOLVED ", StateResolved, false},
		{"closed", StateClosed, false},
		{"Removed", StateRemoved, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseState(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownState) {
				t.Errorf("ParseState(%q): expected ErrUnknownState, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseState(%q): unexpected error %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseState(%q): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestStateValid(t *testing.T) {
	for _, s := range States {
		if !s.Valid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if State("Archived").Valid() {
		t.Error("Expected Archived to be invalid")
	}
}

// ============================================================================
// Response Tests
// ============================================================================

func TestResponseString(t *testing.T) {
	tests := []struct {
		response Response
		expected string
	}{
		{Created, "Created"},
		{Updated, "Updated"},
		{Deleted, "Deleted"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{BadRequest, "BadRequest"},
		{Response(0), "Unknown"},
	}

	for _, tt := range tests {
		if tt.response.String() != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, tt.response.String())
		}
	}
}

func TestResponseSuccess(t *testing.T) {
	for _, r := range []Response{Created, Updated, Deleted} {
		if !r.Success() {
			t.Errorf("Expected %s to be a success", r)
		}
	}
	for _, r := range []Response{Conflict, NotFound, BadRequest} {
		if r.Success() {
			t.Errorf("Expected %s not to be a success", r)
		}
	}
}

// ============================================================================
// WorkItem Tests
// ============================================================================

func TestNewWorkItem(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	item := NewWorkItem("Write docs", now)

	if item.State != StateNew {
		t.Errorf("Expected state New, got %s", item.State)
	}
	if !item.Created.Equal(now) || !item.StateUpdated.Equal(now) {
		t.Error("Expected Created and StateUpdated to equal now")
	}
}

func TestWorkItemSetState(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	item := NewWorkItem("Write docs", created)

	item.SetState(StateActive, later)

	if item.State != StateActive {
		t.Errorf("Expected state Active, got %s", item.State)
	}
	if !item.StateUpdated.Equal(later) {
		t.Errorf("Expected StateUpdated %v, got %v", later, item.StateUpdated)
	}
	if !item.Created.Equal(created) {
		t.Error("Created must not change on state writes")
	}
}

func TestWorkItemProjections(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	desc := "some text"
	item := &WorkItem{
		ID:           7,
		Title:        "Fix login",
		Description:  &desc,
		AssignedTo:   &User{ID: 1, Name: "Alice"},
		State:        StateActive,
		Created:      now,
		StateUpdated: now,
		Tags:         []*Tag{{ID: 2, Name: "ui"}, {ID: 1, Name: "bug"}},
	}

	summary := item.ToDTO()
	if summary.AssignedToName != "Alice" {
		t.Errorf("Expected assignee Alice, got %q", summary.AssignedToName)
	}
	if len(summary.Tags) != 2 || summary.Tags[0] != "bug" || summary.Tags[1] != "ui" {
		t.Errorf("Expected sorted tags [bug ui], got %v", summary.Tags)
	}

	details := item.ToDetailsDTO()
	if details.Description != desc {
		t.Errorf("Expected description %q, got %q", desc, details.Description)
	}

	// Unassigned items project an empty name rather than failing
	item.AssignedTo = nil
	item.Description = nil
	details = item.ToDetailsDTO()
	if details.AssignedToName != "" {
		t.Errorf("Expected empty assignee, got %q", details.AssignedToName)
	}
	if details.Description != "" {
		t.Errorf("Expected empty description, got %q", details.Description)
	}
}

func TestUniqueTagNames(t *testing.T) {
	got := UniqueTagNames([]string{"b", " a", "b", "a", "c", "a"})
	expected := []string{"b", " a", "a", "c"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Index %d: expected %q, got %q", i, expected[i], got[i])
		}
	}

	sorted := NormalizeTagNames([]string{"b", "a", "b"})
	if len(sorted) != 2 || sorted[0] != "a" || sorted[1] != "b" {
		t.Errorf("Expected [a b], got %v", sorted)
	}
}
