package models

// User is a board member that work items can be assigned to
type User struct {
	ID    int         `gorm:"primaryKey"`
	Name  string      `gorm:"not null;uniqueIndex"`
	Email string      `gorm:"not null;uniqueIndex"`
	Items []*WorkItem `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

// UserCreateDTO carries the data needed to create a user
type UserCreateDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdateDTO carries the replacement name and email for a user
type UserUpdateDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDTO is the read projection of a user
type UserDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
