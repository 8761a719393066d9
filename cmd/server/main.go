// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/config"
	"github.com/BaltasisKos/Task-Manager-Server/internal/database"
	"github.com/BaltasisKos/Task-Manager-Server/internal/database/migrate"
	"github.com/BaltasisKos/Task-Manager-Server/internal/health"
	"github.com/BaltasisKos/Task-Manager-Server/internal/middleware"
	notificationRouter "github.com/BaltasisKos/Task-Manager-Server/internal/notification/router"
	searchRouter "github.com/BaltasisKos/Task-Manager-Server/internal/search/router"
	taskRouter "github.com/BaltasisKos/Task-Manager-Server/internal/task/router"
	teamRouter "github.com/BaltasisKos/Task-Manager-Server/internal/team/router"
	userRouter "github.com/BaltasisKos/Task-Manager-Server/internal/user/router"
	"github.com/BaltasisKos/Task-Manager-Server/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, zapLogger)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	tokens := auth.NewManager(cfg.Auth)

	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	r.GET("/health", health.New(db, zapLogger).Check)

	userRouter.RegisterRoutes(r, db, tokens, zapLogger)
	teamRouter.RegisterRoutes(r, db, tokens, zapLogger)
	taskRouter.RegisterRoutes(r, db, tokens, zapLogger)
	notificationRouter.RegisterRoutes(r, db, tokens, zapLogger)
	searchRouter.RegisterRoutes(r, db, tokens, zapLogger)

	address := cfg.Server.GetAddress()
	zapLogger.Infow("starting server", "address", address)
	if err := r.Run(address); err != nil {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
