package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketModel is the GORM model for support tickets.
type TicketModel struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"`
	MessageID     *string        `gorm:"column:message_id;type:varchar(255);uniqueIndex:idx_tickets_message_id"`
	UID           uint32         `gorm:"column:uid;index:idx_tickets_uid"`
	Subject       string         `gorm:"type:varchar(500);not null"`
	Message       string         `gorm:"type:text"`
	HTMLBody      string         `gorm:"column:html_body;type:mediumtext"`
	FromEmail     string         `gorm:"column:from_email;type:varchar(255);not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'open';index:idx_tickets_status"`
	Category      string         `gorm:"type:varchar(100);not null;default:'uncategorized'"`
	Priority      string         `gorm:"type:varchar(20);not null;default:'normal'"`
	Sentiment     float64        `gorm:"type:double;not null;default:0.5"`
	ExtractedInfo datatypes.JSON `gorm:"column:extracted_info"`
	Processed     bool           `gorm:"not null;default:false"`
	HotelID       *uint          `gorm:"column:hotel_id;index:idx_tickets_hotel_id"`
	ContactID     *uint          `gorm:"column:contact_id"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for TicketModel
func (TicketModel) TableName() string {
	return "tickets"
}
