// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/BaltasisKos/Task-Manager-Server/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *userModel.User) (*userModel.User, error)

	// GetByID finds a user by ID.
	GetByID(ctx context.Context, id string) (*userModel.User, error)

	// GetByIDs finds all users whose IDs are in the given set.
	GetByIDs(ctx context.Context, ids []string) ([]userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)

	// Update re-persists an existing user record.
	Update(ctx context.Context, user *userModel.User) (*userModel.User, error)

	// UpdateIsActive sets the is_active flag for a user.
	UpdateIsActive(ctx context.Context, id string, isActive bool) (*userModel.User, error)

	// Delete physically removes a user record.
	Delete(ctx context.Context, id string) error

	// List returns all users.
	List(ctx context.Context) ([]userModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *userModel.User) (*userModel.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, userModel.ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// GetByID finds a user by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByIDs finds all users whose IDs are in the given set.
func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]userModel.User, error) {
	if len(ids) == 0 {
		return []userModel.User{}, nil
	}

	var users []userModel.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Update re-persists an existing user record.
func (r *repository) Update(ctx context.Context, user *userModel.User) (*userModel.User, error) {
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateIsActive sets the is_active flag for a user.
func (r *repository) UpdateIsActive(ctx context.Context, id string, isActive bool) (*userModel.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = isActive
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// Delete physically removes a user record.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&userModel.User{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return userModel.ErrUserNotFound
	}

	return nil
}

// List returns all users.
func (r *repository) List(ctx context.Context) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []userModel.User{}
	}
	return users, nil
}
