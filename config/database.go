package config

import (
	"fmt"
	"time"

	"TimeTrackGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Unique-key violations must surface as gorm.ErrDuplicatedKey so the
		// timer service can report them as conflicts.
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrateDB(DB); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	return nil
}

// MigrateDB creates or updates all tables. The unique index over
// (user_id, open) on time_entries is what enforces the one-open-timer rule.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TimeEntry{},
		&models.Task{},
		&models.Project{},
		&models.Campaign{},
		&models.Company{},
		&models.Employee{},
	)
}
