package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// TagRepo implements TagRepository on gorm
type TagRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTagRepo creates a tag repository over db
func NewTagRepo(db *gorm.DB, opts ...Option) *TagRepo {
	cfg := newRepoConfig(opts)
	return &TagRepo{db: db, logger: cfg.logger}
}

// Create inserts a tag unless one with the same name exists.
// On conflict the returned id is the existing tag's id.
func (r *TagRepo) Create(ctx context.Context, dto models.TagCreateDTO) (models.Response, int, error) {
	var (
		response models.Response
		id       int
	)

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		existing, err := findOne[models.Tag](tx, "name = ?", dto.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			response, id = models.Conflict, existing.ID
			return nil
		}

		tag := &models.Tag{Name: dto.Name}
		if err := tx.Create(tag).Error; err != nil {
			return err
		}
		response, id = models.Created, tag.ID
		return nil
	})

	if isUniqueViolation(err) {
		// Another writer inserted the name between our check and insert
		existing, lookupErr := findOne[models.Tag](r.db.WithContext(ctx), "name = ?", dto.Name)
		if lookupErr != nil {
			return 0, 0, fmt.Errorf("failed to look up tag %q: %w", dto.Name, lookupErr)
		}
		r.logger.Debug("tag create lost race on unique name", "name", dto.Name)
		if existing == nil {
			return models.Conflict, 0, nil
		}
		return models.Conflict, existing.ID, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create tag %q: %w", dto.Name, err)
	}

	if response == models.Conflict {
		r.logger.Debug("tag already exists", "name", dto.Name, "id", id)
	}
	return response, id, nil
}

// Delete removes a tag that no work item uses, or any tag when force is set.
// A missing tag is reported as Conflict.
func (r *TagRepo) Delete(ctx context.Context, id int, force bool) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		tag, err := findOne[models.Tag](tx, "id = ?", id)
		if err != nil {
			return err
		}
		if tag == nil {
			response = models.Conflict
			return nil
		}

		association := tx.Model(tag).Association("WorkItems")
		inUse := association.Count()
		if association.Error != nil {
			return association.Error
		}

		if inUse > 0 && !force {
			r.logger.Debug("tag delete blocked, tag in use", "id", id, "work_items", inUse)
			response = models.Conflict
			return nil
		}

		if inUse > 0 {
			if err := tx.Model(tag).Association("WorkItems").Clear(); err != nil {
				return err
			}
			r.logger.Debug("forced tag delete detached work items", "id", id, "work_items", inUse)
		}

		if err := tx.Delete(tag).Error; err != nil {
			return err
		}
		response = models.Deleted
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tag %d: %w", id, err)
	}

	return response, nil
}

// Find returns the tag with the given id, or nil when there is none
func (r *TagRepo) Find(ctx context.Context, id int) (*models.TagDTO, error) {
	tag, err := findOne[models.Tag](r.db.WithContext(ctx), "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find tag %d: %w", id, err)
	}
	if tag == nil {
		return nil, nil
	}
	return toTagDTO(tag), nil
}

// Read returns every tag ordered by name
func (r *TagRepo) Read(ctx context.Context) ([]models.TagDTO, error) {
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	dtos := make([]models.TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = *toTagDTO(tag)
	}
	return dtos, nil
}

// Update renames a tag. A name taken by another tag yields Conflict.
func (r *TagRepo) Update(ctx context.Context, dto models.TagUpdateDTO) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		tag, err := findOne[models.Tag](tx, "id = ?", dto.ID)
		if err != nil {
			return err
		}
		if tag == nil {
			response = models.NotFound
			return nil
		}

		if err := tx.Model(tag).Update("name", dto.Name).Error; err != nil {
			return err
		}
		response = models.Updated
		return nil
	})

	if isUniqueViolation(err) {
		r.logger.Debug("tag rename rejected by unique index", "id", dto.ID, "name", dto.Name)
		return models.Conflict, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update tag %d: %w", dto.ID, err)
	}

	return response, nil
}

func toTagDTO(tag *models.Tag) *models.TagDTO {
	return &models.TagDTO{ID: tag.ID, Name: tag.Name}
}
