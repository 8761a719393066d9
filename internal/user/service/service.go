// Package service provides business logic layer for the user module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BaltasisKos/Task-Manager-Server/internal/user/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/user/repository"
)

// tempPassword is assigned to accounts created by an administrator.
const tempPassword = "Temp1234!"

// Service defines the interface for user business logic operations.
type Service interface {
	// Register creates a new user account from self-registration.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)

	// Login verifies credentials and returns the matching user.
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error)

	// UpdateProfile updates name/title (and role, for admins) of a user.
	UpdateProfile(ctx context.Context, actorID string, isAdmin bool, req *model.UpdateProfileRequest) (*model.UserResponse, error)

	// SetActive activates or deactivates a user account.
	SetActive(ctx context.Context, id string, isActive bool) (*model.UserResponse, error)

	// ChangePassword replaces the actor's password.
	ChangePassword(ctx context.Context, actorID, password string) error

	// Delete permanently removes a user account.
	Delete(ctx context.Context, id string) error

	// CreateByAdmin creates a user with a temporary password.
	CreateByAdmin(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error)

	// List returns all users as API projections.
	List(ctx context.Context) ([]model.UserResponse, error)

	// FindByID is the identity lookup consumed by other modules.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByIDs is the batch identity lookup consumed by other modules.
	FindByIDs(ctx context.Context, ids []string) ([]model.User, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Register creates a new user account from self-registration.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return nil, model.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Title:    req.Title,
		Role:     req.Role,
		Email:    req.Email,
		Password: string(hash),
		IsAdmin:  req.Role == "admin",
		IsActive: true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", created.ID, "role", created.Role)
	resp := model.NewUserResponse(created)
	return &resp, nil
}

// Login verifies credentials and returns the matching user. Unknown accounts,
// wrong passwords and deactivated accounts are all rejected.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, model.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	resp := model.NewUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates name/title (and role, for admins) of a user. Admins may
// target another user via req.ID; everyone else updates themselves.
func (s *service) UpdateProfile(ctx context.Context, actorID string, isAdmin bool, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	targetID := actorID
	if isAdmin && req.ID != "" {
		targetID = req.ID
	}

	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Title != "" {
		user.Title = req.Title
	}
	if req.Role != "" && isAdmin {
		user.Role = req.Role
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := model.NewUserResponse(updated)
	return &resp, nil
}

// SetActive activates or deactivates a user account.
func (s *service) SetActive(ctx context.Context, id string, isActive bool) (*model.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.UpdateIsActive(ctx, id, isActive)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user activity changed", "user_id", id, "is_active", isActive)
	resp := model.NewUserResponse(user)
	return &resp, nil
}

// ChangePassword replaces the actor's password.
func (s *service) ChangePassword(ctx context.Context, actorID, password string) error {
	user, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hash)
	_, err = s.repo.Update(ctx, user)
	return err
}

// Delete permanently removes a user account.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrInvalidUserID
	}
	return s.repo.Delete(ctx, id)
}

// CreateByAdmin creates a user with a temporary password.
func (s *service) CreateByAdmin(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error) {
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return nil, model.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Title:    req.Title,
		Role:     req.Role,
		Email:    req.Email,
		Password: string(hash),
		IsAdmin:  req.Role == "admin",
		IsActive: req.IsActive,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user created by admin", "user_id", created.ID)
	return &model.CreateUserResponse{
		User:    model.NewUserResponse(created),
		Message: "User created with temporary password: " + tempPassword,
	}, nil
}

// List returns all users as API projections.
func (s *service) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, model.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// FindByID is the identity lookup consumed by other modules.
func (s *service) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByIDs is the batch identity lookup consumed by other modules.
func (s *service) FindByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	return s.repo.GetByIDs(ctx, ids)
}
