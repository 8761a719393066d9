// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/BaltasisKos/Task-Manager-Server/internal/team/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// handleError maps service errors to the standard envelope.
func (h *Handler) handleError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_ID", "invalid team ID", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		errorResponse(c, "VALIDATION_ERROR", "team name is required", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	default:
		h.logger.Errorw("team operation failed", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// Create handles POST /api/teams request.
func (h *Handler) Create(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/teams request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "list")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListArchived handles GET /api/teams/archived request.
func (h *Handler) ListArchived(c *gin.Context) {
	resp, err := h.service.ListArchived(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "list_archived")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/teams/:id request.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "get")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/teams/:id request.
func (h *Handler) Update(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Archive handles PATCH /api/teams/:id/archive request.
func (h *Handler) Archive(c *gin.Context) {
	resp, err := h.service.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "archive")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Restore handles PATCH /api/teams/:id/restore request.
func (h *Handler) Restore(c *gin.Context) {
	resp, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "restore")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/teams/:id request.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team permanently deleted"})
}
