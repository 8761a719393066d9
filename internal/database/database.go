// Package database provides PostgreSQL connection management.
package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbconfig "github.com/BaltasisKos/Task-Manager-Server/internal/database/config"
	"github.com/BaltasisKos/Task-Manager-Server/internal/database/pool"
	"github.com/BaltasisKos/Task-Manager-Server/pkg/retry"
)

// New connects to the database using environment configuration.
func New() (*gorm.DB, error) {
	cfg := dbconfig.LoadConfigFromEnv()
	return NewWithConfig(cfg)
}

// NewWithConfig connects to the database with the given configuration.
func NewWithConfig(cfg dbconfig.Config) (*gorm.DB, error) {
	dsn := dbconfig.BuildDSN(cfg)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, dbconfig.SanitizeError(err, cfg)
	}
	return db, nil
}

// Connect establishes a database connection with retry and configures the
// connection pool. Used at startup where the database may not be ready yet.
func Connect(ctx context.Context, logger *zap.SugaredLogger) (*gorm.DB, error) {
	cfg := dbconfig.LoadConfigFromEnv()
	retryCfg := dbconfig.LoadRetryConfigFromEnv()

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		conn, connErr := NewWithConfig(cfg)
		if connErr != nil {
			logger.Warnw("database connection attempt failed", "error", connErr)
			return nil, connErr
		}
		return conn, nil
	})
	if err != nil {
		return nil, err
	}

	if err := pool.SetupConnectionPool(db, pool.LoadConfigFromEnv()); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
