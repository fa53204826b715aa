package models

import "time"

// HotelModel is the GORM model for hotels.
type HotelModel struct {
	ID                    uint    `gorm:"primaryKey;autoIncrement"`
	Name                  string  `gorm:"type:varchar(255);not null;index:idx_hotels_name"`
	Location              string  `gorm:"type:varchar(255)"`
	SubLocation           string  `gorm:"column:sub_location;type:varchar(255)"`
	Address               string  `gorm:"type:varchar(500)"`
	BcomID                string  `gorm:"column:bcom_id;type:varchar(100)"`
	URL                   string  `gorm:"column:url;type:varchar(500)"`
	ReviewScore           float64 `gorm:"column:review_score"`
	NumberOfReviews       int     `gorm:"column:number_of_reviews"`
	GoogleReviewScore     float64 `gorm:"column:google_review_score"`
	GoogleNumberOfReviews int     `gorm:"column:google_number_of_reviews"`
	Market                string  `gorm:"type:varchar(100)"`
	Segment               string  `gorm:"type:varchar(100)"`
	Agreement             string  `gorm:"type:varchar(100)"`
	SalesProcess          string  `gorm:"column:sales_process;type:varchar(100)"`
	BcomStatus            string  `gorm:"column:bcom_status;type:varchar(100)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for HotelModel
func (HotelModel) TableName() string {
	return "hotels"
}
