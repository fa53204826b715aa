// Package dto defines the request and response shapes of the booking usecases.
package dto

import (
	"time"

	"stayops/internal/domain/booking"
)

type CreateBookingRequest struct {
	GuestName string    `json:"guest_name" binding:"required"`
	CheckIn   time.Time `json:"check_in" binding:"required"`
	CheckOut  time.Time `json:"check_out" binding:"required"`
	RoomType  string    `json:"room_type"`
	HotelID   *uint     `json:"hotel_id"`
}

type BookingResponse struct {
	ID        uint      `json:"id"`
	GuestName string    `json:"guest_name"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Nights    int       `json:"nights"`
	RoomType  string    `json:"room_type,omitempty"`
	HotelID   *uint     `json:"hotel_id,omitempty"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		GuestName: b.GuestName(),
		CheckIn:   b.CheckIn(),
		CheckOut:  b.CheckOut(),
		Nights:    b.Nights(),
		RoomType:  b.RoomType(),
		HotelID:   b.HotelID(),
		UserID:    b.UserID(),
		CreatedAt: b.CreatedAt(),
	}
}

func NewBookingResponses(bookings []*booking.Booking) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, NewBookingResponse(b))
	}
	return responses
}
