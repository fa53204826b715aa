// Package dto defines the request and response shapes of the guest usecases.
package dto

import (
	"time"

	"stayops/internal/domain/guest"
)

type GuestPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	HotelID   *uint  `json:"hotel_id"`
	ContactID *uint  `json:"contact_id"`
}

type GuestResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	HotelID   *uint     `json:"hotel_id,omitempty"`
	HotelName string    `json:"hotel_name,omitempty"`
	ContactID *uint     `json:"contact_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGuestResponse(g *guest.Guest) *GuestResponse {
	return &GuestResponse{
		ID:        g.ID(),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email(),
		Phone:     g.Phone(),
		HotelID:   g.HotelID(),
		ContactID: g.ContactID(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}

// NewGuestListResponses carries the joined hotel name from the list read
// model into each response.
func NewGuestListResponses(items []guest.ListItem) []*GuestResponse {
	responses := make([]*GuestResponse, 0, len(items))
	for _, item := range items {
		resp := NewGuestResponse(item.Guest)
		resp.HotelName = item.HotelName
		responses = append(responses, resp)
	}
	return responses
}
