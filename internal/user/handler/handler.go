// Package handler provides HTTP handlers for user and auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	userModel "github.com/BaltasisKos/Task-Manager-Server/internal/user/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	tokens  *auth.Manager
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, tokens *auth.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, tokens: tokens, logger: logger}
}

// setAuthCookie issues a token for the user and attaches it as an httpOnly cookie.
func (h *Handler) setAuthCookie(c *gin.Context, user *userModel.UserResponse) {
	token, err := h.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		h.logger.Errorw("error issuing token", "user_id", user.ID, "error", err)
		return
	}
	c.SetCookie(h.tokens.CookieName(), token, int(h.tokens.TokenTTL().Seconds()), "/", "", h.tokens.CookieSecure(), true)
}

// Register handles POST /api/users/register request.
func (h *Handler) Register(c *gin.Context) {
	var req userModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrEmailExists) {
			errorResponse(c, "EMAIL_EXISTS", "email address already exists", http.StatusBadRequest)
			return
		}
		if errors.Is(err, userModel.ErrMissingFields) {
			errorResponse(c, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error registering user", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	h.setAuthCookie(c, resp)
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/users/login request.
func (h *Handler) Login(c *gin.Context) {
	var req userModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrInvalidCredentials) {
			errorResponse(c, "UNAUTHORIZED", "invalid email or password", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, userModel.ErrAccountDisabled) {
			errorResponse(c, "UNAUTHORIZED", "user account has been deactivated, contact the administrator", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	h.setAuthCookie(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/users/logout request.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.tokens.CookieName(), "", -1, "/", "", h.tokens.CookieSecure(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// List handles GET /api/users request.
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing users", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateProfile handles PUT /api/users/profile request.
func (h *Handler) UpdateProfile(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req userModel.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), actor.UserID, actor.IsAdmin, &req)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error updating profile", "user_id", actor.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": resp})
}

// ChangePassword handles PUT /api/users/change-password request.
func (h *Handler) ChangePassword(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req userModel.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor.UserID, req.Password); err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error changing password", "user_id", actor.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// SetActive handles PUT /api/users/:id/activate request (admin only).
func (h *Handler) SetActive(c *gin.Context) {
	var req userModel.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		errorResponse(c, "INVALID_REQUEST", "is_active field is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		if errors.Is(err, userModel.ErrInvalidUserID) {
			errorResponse(c, "INVALID_ID", "invalid user ID", http.StatusBadRequest)
			return
		}
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error setting user activity", "user_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}

// CreateByAdmin handles POST /api/users request (admin only).
func (h *Handler) CreateByAdmin(c *gin.Context) {
	var req userModel.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateByAdmin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrMissingFields) {
			errorResponse(c, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, userModel.ErrEmailExists) {
			errorResponse(c, "EMAIL_EXISTS", "user already exists", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating user", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Delete handles DELETE /api/users/:id request (admin only).
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, userModel.ErrInvalidUserID) {
			errorResponse(c, "INVALID_ID", "invalid user ID", http.StatusBadRequest)
			return
		}
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error deleting user", "user_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
