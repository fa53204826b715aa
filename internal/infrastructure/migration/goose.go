package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"stayops/internal/shared/logger"
)

//go:embed scripts/*.sql
var migrationScripts embed.FS

// GooseStrategy runs the embedded versioned SQL migration scripts.
type GooseStrategy struct{}

func NewGooseStrategy() *GooseStrategy {
	return &GooseStrategy{}
}

func (s *GooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("versioned migrations applied", "version", version)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
