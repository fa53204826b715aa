package migration

import (
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema directly from the model
// structs. Development only; versioned scripts run everywhere else.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		logger.Warn("no models provided for auto migration")
		return nil
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("auto migration completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
