// Package router provides task module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	notificationRepository "github.com/BaltasisKos/Task-Manager-Server/internal/notification/repository"
	notificationService "github.com/BaltasisKos/Task-Manager-Server/internal/notification/service"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/handler"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/repository"
	"github.com/BaltasisKos/Task-Manager-Server/internal/task/service"
)

// RegisterRoutes registers task module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	notifier := notificationService.New(notificationRepository.New(db), logger)

	repo := repository.New(db)
	svc := service.New(repo, notifier, logger)
	h := handler.New(svc, logger)

	tasks := r.Group("/api/tasks", middleware.Protect(tokens, logger))

	tasks.POST("", h.Create)
	tasks.GET("", h.List)
	tasks.GET("/archived", h.ListArchived)
	tasks.GET("/:id", h.Get)
	tasks.PUT("/:id", h.Update)
	tasks.PATCH("/:id", h.SoftDelete)
	tasks.PATCH("/:id/restore", h.Restore)
	tasks.DELETE("/:id", h.HardDelete)
}
