// Package router provides search module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	"github.com/BaltasisKos/Task-Manager-Server/internal/search/handler"
	"github.com/BaltasisKos/Task-Manager-Server/internal/search/repository"
	"github.com/BaltasisKos/Task-Manager-Server/internal/search/service"
)

// RegisterRoutes registers search module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	protected := r.Group("/api/search", middleware.Protect(tokens, logger))
	protected.GET("", h.Search)
}
