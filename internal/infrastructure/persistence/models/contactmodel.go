package models

import "time"

// ContactModel is the GORM model for contacts.
type ContactModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(100)"`
	Email     string `gorm:"type:varchar(255);index:idx_contacts_email"`
	Phone     string `gorm:"type:varchar(50)"`
	Company   string `gorm:"type:varchar(255)"`
	Position  string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for ContactModel
func (ContactModel) TableName() string {
	return "contacts"
}
