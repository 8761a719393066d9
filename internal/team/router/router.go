// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	"github.com/BaltasisKos/Task-Manager-Server/internal/team/handler"
	"github.com/BaltasisKos/Task-Manager-Server/internal/team/repository"
	"github.com/BaltasisKos/Task-Manager-Server/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/api/teams", middleware.Protect(tokens, logger))

	teams.POST("", h.Create)
	teams.GET("", h.List)
	teams.GET("/archived", h.ListArchived)
	teams.GET("/:id", h.Get)
	teams.PUT("/:id", h.Update)
	teams.PATCH("/:id/archive", h.Archive)
	teams.PATCH("/:id/restore", h.Restore)
	teams.DELETE("/:id", h.Delete)
}
