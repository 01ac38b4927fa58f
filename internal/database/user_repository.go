package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// UserRepo implements UserRepository on gorm
type UserRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserRepo creates a user repository over db
func NewUserRepo(db *gorm.DB, opts ...Option) *UserRepo {
	cfg := newRepoConfig(opts)
	return &UserRepo{db: db, logger: cfg.logger}
}

// Create inserts a user. A taken name is caught before the insert; a taken
// email is caught by the unique index, and the returned id is the owner of
// that email.
func (r *UserRepo) Create(ctx context.Context, dto models.UserCreateDTO) (models.Response, int, error) {
	var (
		response models.Response
		id       int
	)

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		existing, err := findOne[models.User](tx, "name = ?", dto.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			response, id = models.Conflict, existing.ID
			return nil
		}

		user := &models.User{Name: dto.Name, Email: dto.Email}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		response, id = models.Created, user.ID
		return nil
	})

	if isUniqueViolation(err) {
		existingID, lookupErr := r.conflictingUserID(ctx, dto)
		if lookupErr != nil {
			return 0, 0, lookupErr
		}
		r.logger.Debug("user create rejected by unique index", "name", dto.Name, "email", dto.Email, "id", existingID)
		return models.Conflict, existingID, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create user %q: %w", dto.Name, err)
	}

	return response, id, nil
}

// conflictingUserID finds the row that made an insert fail, by email first and
// then by name for an insert that raced the name pre-check
func (r *UserRepo) conflictingUserID(ctx context.Context, dto models.UserCreateDTO) (int, error) {
	db := r.db.WithContext(ctx)

	byEmail, err := findOne[models.User](db, "email = ?", dto.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if byEmail != nil {
		return byEmail.ID, nil
	}

	byName, err := findOne[models.User](db, "name = ?", dto.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up user by name: %w", err)
	}
	if byName != nil {
		return byName.ID, nil
	}

	return 0, nil
}

// Delete removes a user with no assigned work items, or any user when force
// is set. Forced deletes unassign the user's items in the same transaction.
// A missing user is reported as Conflict.
func (r *UserRepo) Delete(ctx context.Context, id int, force bool) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		user, err := findOne[models.User](tx, "id = ?", id)
		if err != nil {
			return err
		}
		if user == nil {
			response = models.Conflict
			return nil
		}

		var assigned int64
		if err := tx.Model(&models.WorkItem{}).Where("assigned_to_id = ?", id).Count(&assigned).Error; err != nil {
			return err
		}

		if assigned > 0 && !force {
			r.logger.Debug("user delete blocked, user has assigned work items", "id", id, "work_items", assigned)
			response = models.Conflict
			return nil
		}

		if assigned > 0 {
			if err := tx.Model(&models.WorkItem{}).
				Where("assigned_to_id = ?", id).
				Update("assigned_to_id", nil).Error; err != nil {
				return err
			}
			r.logger.Debug("forced user delete unassigned work items", "id", id, "work_items", assigned)
		}

		if err := tx.Delete(user).Error; err != nil {
			return err
		}
		response = models.Deleted
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	return response, nil
}

// Find returns the user with the given id, or nil when there is none
func (r *UserRepo) Find(ctx context.Context, id int) (*models.UserDTO, error) {
	user, err := findOne[models.User](r.db.WithContext(ctx), "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	if user == nil {
		return nil, nil
	}
	return toUserDTO(user), nil
}

// Read returns every user ordered by name
func (r *UserRepo) Read(ctx context.Context) ([]models.UserDTO, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	dtos := make([]models.UserDTO, len(users))
	for i, user := range users {
		dtos[i] = *toUserDTO(user)
	}
	return dtos, nil
}

// Update replaces a user's name and email. Values taken by another user yield Conflict.
func (r *UserRepo) Update(ctx context.Context, dto models.UserUpdateDTO) (models.Response, error) {
	var response models.Response

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		user, err := findOne[models.User](tx, "id = ?", dto.ID)
		if err != nil {
			return err
		}
		if user == nil {
			response = models.NotFound
			return nil
		}

		if err := tx.Model(user).Updates(map[string]any{
			"name":  dto.Name,
			"email": dto.Email,
		}).Error; err != nil {
			return err
		}
		response = models.Updated
		return nil
	})

	if isUniqueViolation(err) {
		r.logger.Debug("user update rejected by unique index", "id", dto.ID)
		return models.Conflict, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update user %d: %w", dto.ID, err)
	}

	return response, nil
}

func toUserDTO(user *models.User) *models.UserDTO {
	return &models.UserDTO{ID: user.ID, Name: user.Name, Email: user.Email}
}
