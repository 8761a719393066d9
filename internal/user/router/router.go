// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	"github.com/BaltasisKos/Task-Manager-Server/internal/user/handler"
	"github.com/BaltasisKos/Task-Manager-Server/internal/user/repository"
	"github.com/BaltasisKos/Task-Manager-Server/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, tokens, logger)

	users := r.Group("/api/users")

	users.POST("/register", h.Register)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout)

	protected := users.Group("", middleware.Protect(tokens, logger))
	protected.GET("", h.List)
	protected.PUT("/profile", h.UpdateProfile)
	protected.PUT("/change-password", h.ChangePassword)

	admin := protected.Group("", middleware.AdminOnly())
	admin.POST("", h.CreateByAdmin)
	admin.PUT("/:id/activate", h.SetActive)
	admin.DELETE("/:id", h.Delete)
}
