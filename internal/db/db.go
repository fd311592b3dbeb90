package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/dialr/internal/models"
)

var DB *gorm.DB

// Initialize opens the database at dbPath, creating its directory, and runs migrations.
// It reports whether the database file was created by this call.
func Initialize(dbPath string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create data directory: %w", err)
	}

	_, statErr := os.Stat(dbPath)
	created := errors.Is(statErr, os.ErrNotExist)

	db, err := Open(dbPath)
	if err != nil {
		return false, err
	}
	DB = db
	return created, nil
}

// Open connects to the sqlite database at dsn and migrates the schema
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tag{},
		&models.CallRecord{},
		&models.FollowUp{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
