// Package model provides domain models and DTOs for the user module.
package model

// RegisterRequest represents the self-registration request.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Title    string `json:"title"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses, without credentials.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive bool   `json:"is_active"`
}

// NewUserResponse projects a User into its API shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Title:    u.Title,
		Role:     u.Role,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}
}

// UpdateProfileRequest represents a profile update. An admin may supply a
// target user ID; non-admins always update their own profile.
type UpdateProfileRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Role  string `json:"role"`
}

// SetActiveRequest represents the activate/deactivate request.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ChangePasswordRequest represents the password change request.
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest represents the admin user-creation request. The created
// account receives a temporary password.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

// CreateUserResponse wraps the created user with the temporary password notice.
type CreateUserResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}
