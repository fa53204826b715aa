package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestGormConfig_TranslatesDriverErrors(t *testing.T) {
	cfg := gormConfig(logger.Discard)

	// Without translation a MySQL 1062 arrives as *mysql.MySQLError and the
	// repositories' errors.Is(err, gorm.ErrDuplicatedKey) checks never match.
	assert.True(t, cfg.TranslateError)
	assert.True(t, cfg.PrepareStmt)
}
