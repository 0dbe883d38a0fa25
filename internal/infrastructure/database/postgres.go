package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jd6186/interview-assignments/internal/infrastructure/repositories"
)

// Open creates a new database connection shared by the services
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Translate driver unique-violations into gorm.ErrDuplicatedKey so
		// the repositories can map them to domain errors.
		TranslateError: true,
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the user, audit-log and post tables. The unique index
// on login_email is the authority for register conflicts under concurrency.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBUserUpdateLog{},
		&repositories.DBUserDeleteLog{},
		&repositories.DBPost{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
