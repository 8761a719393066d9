// Package handler provides the HTTP handler for cross-entity search.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	searchModel "github.com/BaltasisKos/Task-Manager-Server/internal/search/model"
	"github.com/BaltasisKos/Task-Manager-Server/internal/search/service"
)

// Handler handles HTTP requests for search endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new search handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Search handles GET /api/search request.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	resp, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, searchModel.ErrQueryTooShort) {
			errorResponse(c, "INVALID_QUERY", "search query must be at least 2 characters", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("search failed", "query", query, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
