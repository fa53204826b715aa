package ticket

// BookingInfo holds reservation details the analysis service extracts from an
// email body. All fields are optional; absent values stay nil so the stored
// JSON only carries what was actually extracted.
type BookingInfo struct {
	BookingNumber *string  `json:"booking_number,omitempty"`
	Channel       *string  `json:"channel,omitempty"`
	CheckIn       *string  `json:"check_in,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	GuestEmail    *string  `json:"guest_email,omitempty"`
	GuestName     *string  `json:"guest_name,omitempty"`
	GuestPhone    *string  `json:"guest_phone,omitempty"`
	HotelName     *string  `json:"hotel_name,omitempty"`
	NumAdults     *int     `json:"num_adults,omitempty"`
	NumChildren   *int     `json:"num_children,omitempty"`
	NumNights     *int     `json:"num_nights,omitempty"`
	PaymentStatus *string  `json:"payment_status,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	RateType      *string  `json:"rate_type,omitempty"`
	RoomType      *string  `json:"room_type,omitempty"`
}

// IsEmpty reports whether no field was extracted.
func (b *BookingInfo) IsEmpty() bool {
	if b == nil {
		return true
	}
	return b.BookingNumber == nil && b.Channel == nil && b.CheckIn == nil &&
		b.CheckOut == nil && b.GuestEmail == nil && b.GuestName == nil &&
		b.GuestPhone == nil && b.HotelName == nil && b.NumAdults == nil &&
		b.NumChildren == nil && b.NumNights == nil && b.PaymentStatus == nil &&
		b.Price == nil && b.RateType == nil && b.RoomType == nil
}
