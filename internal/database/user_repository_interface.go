package database

import (
	"context"

	"github.com/thenoetrevino/workboard/internal/models"
)

// UserReader defines read operations for users.
type UserReader interface {
	Find(ctx context.Context, id int) (*models.UserDTO, error)
	Read(ctx context.Context) ([]models.UserDTO, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.UserCreateDTO) (models.Response, int, error)
	Update(ctx context.Context, user models.UserUpdateDTO) (models.Response, error)
	Delete(ctx context.Context, id int, force bool) (models.Response, error)
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserReader
	UserWriter
}
