package database

import (
	"context"

	"github.com/thenoetrevino/workboard/internal/models"
)

// WorkItemReader defines read operations for work items.
// Every list is ordered by title.
type WorkItemReader interface {
	Find(ctx context.Context, id int) (*models.WorkItemDetailsDTO, error)
	Read(ctx context.Context) ([]models.WorkItemDTO, error)
	ReadByState(ctx context.Context, state models.State) ([]models.WorkItemDTO, error)
	ReadByTag(ctx context.Context, tagName string) ([]models.WorkItemDTO, error)
	ReadByUser(ctx context.Context, userID int) ([]models.WorkItemDTO, error)
	ReadRemoved(ctx context.Context) ([]models.WorkItemDTO, error)
}

// WorkItemWriter defines write operations for work items.
type WorkItemWriter interface {
	Create(ctx context.Context, item models.WorkItemCreateDTO) (models.Response, int, error)
	Update(ctx context.Context, item models.WorkItemUpdateDTO) (models.Response, error)
	Delete(ctx context.Context, id int) (models.Response, error)
}

// WorkItemRepository combines all work item operations.
type WorkItemRepository interface {
	WorkItemReader
	WorkItemWriter
}
