package models

import "time"

// UserModel is the GORM model for back-office users.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string `gorm:"column:full_name;type:varchar(255)"`
	Role         string `gorm:"type:varchar(20);not null;default:'agent'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
