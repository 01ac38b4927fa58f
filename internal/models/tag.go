package models

// Tag is a board-wide label that can be attached to any number of work items.
// Tags are created on first use by name.
type Tag struct {
	ID        int         `gorm:"primaryKey"`
	Name      string      `gorm:"not null;uniqueIndex"`
	WorkItems []*WorkItem `gorm:"many2many:work_item_tags"`
}

// TagCreateDTO carries the data needed to create a tag
type TagCreateDTO struct {
	Name string `json:"name"`
}

// TagUpdateDTO carries a tag rename
type TagUpdateDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TagDTO is the read projection of a tag
type TagDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
