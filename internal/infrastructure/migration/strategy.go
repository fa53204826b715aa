package migration

import "gorm.io/gorm"

// Strategy defines how database schema migrations are executed.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}
