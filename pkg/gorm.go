package pkg

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ld-screen/screening-service/internal/config"
	"github.com/ld-screen/screening-service/internal/models"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Error
	if cfg.Environment != "production" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate applies the schema for all screening tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ScreeningSession{},
		&models.ScreeningResponse{},
		&models.QuestionEvent{},
		&models.RiskAssessment{},
	)
}
