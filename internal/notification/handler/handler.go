// Package handler provides HTTP handlers for notification endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	notificationModel "github.com/BaltasisKos/Task-Manager-Server/internal/notification/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/service"
)

// Handler handles HTTP requests for notification endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new notification handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/users/notifications request.
func (h *Handler) List(c *gin.Context) {
	actor := middleware.GetActor(c)

	resp, err := h.service.List(c.Request.Context(), actor.UserID)
	if err != nil {
		h.logger.Errorw("error listing notifications", "user_id", actor.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead handles PUT /api/users/read-noti request. Mode selection comes from
// query parameters: id, type, or neither (mark everything unread).
func (h *Handler) MarkRead(c *gin.Context) {
	actor := middleware.GetActor(c)

	req := notificationModel.MarkReadRequest{
		ID:   c.Query("id"),
		Type: c.Query("type"),
	}

	if err := h.service.MarkRead(c.Request.Context(), actor.UserID, &req); err != nil {
		if errors.Is(err, notificationModel.ErrNotificationNotFound) {
			errorResponse(c, "NOT_FOUND", "notification not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error marking notifications read", "user_id", actor.UserID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification(s) marked as read"})
}
