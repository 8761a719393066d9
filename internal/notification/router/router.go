// Package router provides notification module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/handler"
	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/repository"
	"github.com/BaltasisKos/Task-Manager-Server/internal/notification/service"
)

// RegisterRoutes registers notification module routes. The paths live under
// /api/users because the feed is always scoped to the authenticated user.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	protected := r.Group("/api/users", middleware.Protect(tokens, logger))
	protected.GET("/notifications", h.List)
	protected.PUT("/read-noti", h.MarkRead)
}
