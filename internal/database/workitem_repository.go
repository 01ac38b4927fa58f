package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// WorkItemRepo implements WorkItemRepository on gorm
type WorkItemRepo struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewWorkItemRepo creates a work item repository over db
func NewWorkItemRepo(db *gorm.DB, opts ...Option) *WorkItemRepo {
	cfg := newRepoConfig(opts)
	return &WorkItemRepo{db: db, logger: cfg.logger, now: cfg.now}
}

// Create inserts a New work item with its tags reconciled.
// On a title conflict the returned id is the existing item's id.
func (r *WorkItemRepo) Create(ctx context.Context, dto models.WorkItemCreateDTO) (models.Response, int, error) {
	var (
		response models.Response
		id       int
	)

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		existing, err := findOne[models.WorkItem](tx, "title = ?", dto.Title)
		if err != nil {
			return err
		}
		if existing != nil {
			response, id = models.Conflict, existing.ID
			return nil
		}

		tags, err := reconcileTags(tx, dto.Tags)
		if err != nil {
			return err
		}

		item := models.NewWorkItem(dto.Title, r.now())
		item.Description = dto.Description
		item.Tags = tags

		// Tags are already persisted, only the join rows are written here
		if err := tx.Omit("Tags.*").Create(item).Error; err != nil {
			return err
		}
		response, id = models.Created, item.ID
		return nil
	})

	if isUniqueViolation(err) {
		existing, lookupErr := findOne[models.WorkItem](r.db.WithContext(ctx), "title = ?", dto.Title)
		if lookupErr != nil {
			return 0, 0, fmt.Errorf("failed to look up work item %q: %w", dto.Title, lookupErr)
		}
		r.logger.Debug("work item create rejected by unique index", "title", dto.Title)
		if existing == nil {
			return models.Conflict, 0, nil
		}
		return models.Conflict, existing.ID, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create work item %q: %w", dto.Title, err)
	}

	return response, id, nil
}

// Delete applies the state-dependent deletion policy:
// New items are removed, Active items become Removed, anything else is a Conflict.
// A missing item is reported as Conflict.
func (r *WorkItemRepo) Delete(ctx context.Context, id int) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		item, err := findOne[models.WorkItem](tx, "id = ?", id)
		if err != nil {
			return err
		}
		if item == nil {
			response = models.Conflict
			return nil
		}

		switch item.State {
		case models.StateNew:
			if err := tx.Model(item).Association("Tags").Clear(); err != nil {
				return err
			}
			if err := tx.Delete(item).Error; err != nil {
				return err
			}
			response = models.Deleted

		case models.StateActive:
			item.SetState(models.StateRemoved, r.now())
			if err := tx.Model(item).Updates(map[string]any{
				"state":         item.State,
				"state_updated": item.StateUpdated,
			}).Error; err != nil {
				return err
			}
			r.logger.Debug("active work item marked removed", "id", id)
			response = models.Updated

		default:
			r.logger.Debug("work item delete refused", "id", id, "state", item.State)
			response = models.Conflict
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete work item %d: %w", id, err)
	}

	return response, nil
}

// Find returns the detail projection of an item, or nil when there is none
func (r *WorkItemRepo) Find(ctx context.Context, id int) (*models.WorkItemDetailsDTO, error) {
	item, err := findOne[models.WorkItem](r.withRelations(ctx), "work_items.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find work item %d: %w", id, err)
	}
	if item == nil {
		return nil, nil
	}
	return item.ToDetailsDTO(), nil
}

// Read returns every work item
func (r *WorkItemRepo) Read(ctx context.Context) ([]models.WorkItemDTO, error) {
	return r.read(ctx)
}

// ReadByState returns the work items in state
func (r *WorkItemRepo) ReadByState(ctx context.Context, state models.State) ([]models.WorkItemDTO, error) {
	return r.read(ctx, inState(state))
}

// ReadByTag returns the work items carrying tagName, each with all of its tags
func (r *WorkItemRepo) ReadByTag(ctx context.Context, tagName string) ([]models.WorkItemDTO, error) {
	return r.read(ctx, taggedWith(tagName))
}

// ReadByUser returns the work items assigned to userID
func (r *WorkItemRepo) ReadByUser(ctx context.Context, userID int) ([]models.WorkItemDTO, error) {
	return r.read(ctx, assignedTo(userID))
}

// ReadRemoved returns the work items in the Removed state
func (r *WorkItemRepo) ReadRemoved(ctx context.Context) ([]models.WorkItemDTO, error) {
	return r.ReadByState(ctx, models.StateRemoved)
}

// Update overwrites every mutable field of an item and replaces its tags.
// A missing item or assignee is a BadRequest; a duplicate title is a Conflict.
func (r *WorkItemRepo) Update(ctx context.Context, dto models.WorkItemUpdateDTO) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		item, err := findOne[models.WorkItem](tx, "id = ?", dto.ID)
		if err != nil {
			return err
		}
		if item == nil {
			response = models.BadRequest
			return nil
		}

		if dto.AssignedToID == nil || !dto.State.Valid() {
			response = models.BadRequest
			return nil
		}
		user, err := findOne[models.User](tx, "id = ?", *dto.AssignedToID)
		if err != nil {
			return err
		}
		if user == nil {
			r.logger.Debug("work item update names unknown assignee", "id", dto.ID, "assigned_to_id", *dto.AssignedToID)
			response = models.BadRequest
			return nil
		}

		tags, err := reconcileTags(tx, dto.Tags)
		if err != nil {
			return err
		}

		item.SetState(dto.State, r.now())
		if err := tx.Model(item).Updates(map[string]any{
			"title":          dto.Title,
			"description":    dto.Description,
			"assigned_to_id": user.ID,
			"state":          item.State,
			"state_updated":  item.StateUpdated,
		}).Error; err != nil {
			return err
		}

		association := tx.Model(item).Association("Tags")
		if len(tags) == 0 {
			err = association.Clear()
		} else {
			err = association.Replace(tags)
		}
		if err != nil {
			return err
		}

		response = models.Updated
		return nil
	})

	if isUniqueViolation(err) {
		r.logger.Debug("work item update rejected by unique index", "id", dto.ID, "title", dto.Title)
		return models.Conflict, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update work item %d: %w", dto.ID, err)
	}

	return response, nil
}

// withRelations starts a query that loads tags and assignee alongside items
func (r *WorkItemRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Tags").Preload("AssignedTo")
}

// read runs a title-ordered list query narrowed by scopes
func (r *WorkItemRepo) read(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]models.WorkItemDTO, error) {
	var items []*models.WorkItem
	if err := r.withRelations(ctx).Scopes(scopes...).Order("work_items.title").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to read work items: %w", err)
	}

	dtos := make([]models.WorkItemDTO, len(items))
	for i, item := range items {
		dtos[i] = item.ToDTO()
	}
	return dtos, nil
}

func inState(state models.State) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("work_items.state = ?", state)
	}
}

func assignedTo(userID int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("work_items.assigned_to_id = ?", userID)
	}
}

func taggedWith(tagName string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		tagged := db.Session(&gorm.Session{NewDB: true}).
			Table("work_item_tags").
			Select("work_item_tags.work_item_id").
			Joins("JOIN tags ON tags.id = work_item_tags.tag_id").
			Where("tags.name = ?", tagName)
		return db.Where("work_items.id IN (?)", tagged)
	}
}
