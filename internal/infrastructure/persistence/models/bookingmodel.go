package models

import "time"

// BookingModel is the GORM model for bookings.
type BookingModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	GuestName string    `gorm:"column:guest_name;type:varchar(255);not null"`
	CheckIn   time.Time `gorm:"column:check_in;not null"`
	CheckOut  time.Time `gorm:"column:check_out;not null"`
	RoomType  string    `gorm:"column:room_type;type:varchar(100)"`
	HotelID   *uint     `gorm:"column:hotel_id;index:idx_bookings_hotel_id"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_bookings_user_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for BookingModel
func (BookingModel) TableName() string {
	return "bookings"
}
