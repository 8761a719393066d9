// Package handler provides HTTP handlers for task endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	taskModel "github.com/BaltasisKos/Task-Manager-Server/internal/task/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/service"
)

// Handler handles HTTP requests for task endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new task handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// handleError maps service errors to the standard envelope.
func (h *Handler) handleError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, taskModel.ErrTaskNameRequired):
		errorResponse(c, "VALIDATION_ERROR", "task name is required", http.StatusBadRequest)
	case errors.Is(err, taskModel.ErrInvalidStatus):
		errorResponse(c, "VALIDATION_ERROR", "invalid task status", http.StatusBadRequest)
	case errors.Is(err, taskModel.ErrInvalidTaskID):
		errorResponse(c, "INVALID_ID", "invalid task ID", http.StatusBadRequest)
	case errors.Is(err, taskModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_ID", "invalid team ID", http.StatusBadRequest)
	case errors.Is(err, taskModel.ErrTaskNotFound):
		notFoundResponse(c, "task not found")
	case errors.Is(err, taskModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	default:
		h.logger.Errorw("task operation failed", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// Create handles POST /api/tasks request.
func (h *Handler) Create(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req taskModel.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor.UserID, &req)
	if err != nil {
		h.handleError(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/tasks request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "list")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListArchived handles GET /api/tasks/archived request.
func (h *Handler) ListArchived(c *gin.Context) {
	resp, err := h.service.ListArchived(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "list_archived")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/tasks/:id request.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "get")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/tasks/:id request.
func (h *Handler) Update(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req taskModel.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actor.UserID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SoftDelete handles PATCH /api/tasks/:id request.
func (h *Handler) SoftDelete(c *gin.Context) {
	resp, err := h.service.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "soft_delete")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Restore handles PATCH /api/tasks/:id/restore request.
func (h *Handler) Restore(c *gin.Context) {
	resp, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "restore")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HardDelete handles DELETE /api/tasks/:id request.
func (h *Handler) HardDelete(c *gin.Context) {
	if err := h.service.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "hard_delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
