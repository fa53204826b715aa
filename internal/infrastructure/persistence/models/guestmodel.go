package models

import "time"

// GuestModel is the GORM model for guests.
type GuestModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(100)"`
	Email     string `gorm:"type:varchar(255);index:idx_guests_email"`
	Phone     string `gorm:"type:varchar(50)"`
	HotelID   *uint  `gorm:"column:hotel_id;index:idx_guests_hotel_id"`
	ContactID *uint  `gorm:"column:contact_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GuestModel
func (GuestModel) TableName() string {
	return "guests"
}
