package models

import "time"

// WorkItem represents a single card on the board
type WorkItem struct {
	ID           int    `gorm:"primaryKey"`
	Title        string `gorm:"not null;uniqueIndex"`
	Description  *string
	AssignedToID *int      `gorm:"index"`
	AssignedTo   *User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	State        State     `gorm:"not null;type:varchar(16);default:'New';index"`
	Created      time.Time `gorm:"not null"`
	StateUpdated time.Time `gorm:"not null"`
	Tags         []*Tag    `gorm:"many2many:work_item_tags"`
}

// NewWorkItem returns an unsaved work item in the New state stamped with now
func NewWorkItem(title string, now time.Time) *WorkItem {
	return &WorkItem{
		Title:        title,
		State:        StateNew,
		Created:      now,
		StateUpdated: now,
	}
}

// SetState changes the state and stamps StateUpdated in one step.
// Every state write goes through here so the two fields never drift apart.
func (w *WorkItem) SetState(state State, now time.Time) {
	w.State = state
	w.StateUpdated = now
}

// AssignedToName returns the assignee's name, or "" when the item is unassigned
// or the assignee was not loaded
func (w *WorkItem) AssignedToName() string {
	if w.AssignedTo == nil {
		return ""
	}
	return w.AssignedTo.Name
}

// TagNames returns the names of the loaded tags as a sorted set
func (w *WorkItem) TagNames() []string {
	names := make([]string, 0, len(w.Tags))
	for _, t := range w.Tags {
		names = append(names, t.Name)
	}
	return NormalizeTagNames(names)
}

// WorkItemCreateDTO carries the data needed to create a work item
type WorkItemCreateDTO struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

// WorkItemUpdateDTO replaces every mutable field of a work item
type WorkItemUpdateDTO struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	AssignedToID *int     `json:"assigned_to_id"`
	Description  *string  `json:"description,omitempty"`
	Tags         []string `json:"tags"`
	State        State    `json:"state"`
}

// WorkItemDTO is the summary projection used by list queries
type WorkItemDTO struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	AssignedToName string   `json:"assigned_to_name"`
	Tags           []string `json:"tags"`
	State          State    `json:"state"`
}

// WorkItemDetailsDTO is the full projection for a single work item
type WorkItemDetailsDTO struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Created        time.Time `json:"created"`
	AssignedToName string    `json:"assigned_to_name"`
	Tags           []string  `json:"tags"`
	State          State     `json:"state"`
	StateUpdated   time.Time `json:"state_updated"`
}

// ToDTO projects the item into its summary shape
func (w *WorkItem) ToDTO() WorkItemDTO {
	return WorkItemDTO{
		ID:             w.ID,
		Title:          w.Title,
		AssignedToName: w.AssignedToName(),
		Tags:           w.TagNames(),
		State:          w.State,
	}
}

// ToDetailsDTO projects the item into its detail shape
func (w *WorkItem) ToDetailsDTO() *WorkItemDetailsDTO {
	var description string
	if w.Description != nil {
		description = *w.Description
	}
	return &WorkItemDetailsDTO{
		ID:             w.ID,
		Title:          w.Title,
		Description:    description,
		Created:        w.Created,
		AssignedToName: w.AssignedToName(),
		Tags:           w.TagNames(),
		State:          w.State,
		StateUpdated:   w.StateUpdated,
	}
}
