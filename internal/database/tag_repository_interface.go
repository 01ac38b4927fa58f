package database

import (
	"context"

	"github.com/thenoetrevino/workboard/internal/models"
)

// TagReader defines read operations for tags.
type TagReader interface {
	Find(ctx context.Context, id int) (*models.TagDTO, error)
	Read(ctx context.Context) ([]models.TagDTO, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	Create(ctx context.Context, tag models.TagCreateDTO) (models.Response, int, error)
	Update(ctx context.Context, tag models.TagUpdateDTO) (models.Response, error)
	Delete(ctx context.Context, id int, force bool) (models.Response, error)
}

// TagRepository combines all tag-related operations.
type TagRepository interface {
	TagReader
	TagWriter
}
