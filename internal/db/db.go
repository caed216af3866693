package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/wellbeing/internal/models"
)

// memoryDSN keeps every database private to the connection that opened it
const memoryDSN = ":memory:"

// Open creates a private in-memory database for one session and runs migrations.
// Nothing survives Close.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// An in-memory database lives exactly as long as its connection,
	// so pin the pool to one connection that never expires.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access session database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// runMigrations creates the session schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CheckIn{},
	)
}

// Close closes the database connection, discarding its contents
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
