package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hrms-lite/internal/config"
	"hrms-lite/internal/models"
)

// Connect opens the PostgreSQL database named by cfg.DatabaseURL and logs
// slow queries and errors through out.
func Connect(cfg config.Config, out *log.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		out,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
}

// Migrate creates or updates the employees and attendance tables.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.Employee{}, &models.Attendance{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
