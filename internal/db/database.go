package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blueberries/blueberries-backend/config"
	appLogger "github.com/blueberries/blueberries-backend/pkg/logger"
)

var DB *gorm.DB

// Initialize opens the SQLite database file and enables foreign key
// enforcement (SQLite keeps it off unless asked).
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Connecting to database", map[string]interface{}{
		"path": cfg.Path,
	})

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Use silent mode, we'll use our own logger
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite serializes writes anyway; a single connection avoids
	// "database is locked" errors under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	appLogger.Info("Database connection established successfully", map[string]interface{}{
		"path": cfg.Path,
	})
	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
