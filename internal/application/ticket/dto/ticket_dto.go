// Package dto defines the request and response shapes of the ticket usecases.
package dto

import (
	"time"

	"stayops/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
	FromEmail string `json:"from_email"`
}

type ListTicketsRequest struct {
	Status    string
	Category  string
	Priority  string
	FromEmail string
	Search    string
	Page      int
	PageSize  int
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReplyTicketRequest struct {
	Message string `json:"message" binding:"required"`
}

type TicketResponse struct {
	ID          uint                `json:"id"`
	MessageID   string              `json:"message_id,omitempty"`
	UID         uint32              `json:"uid,omitempty"`
	Subject     string              `json:"subject"`
	Message     string              `json:"message"`
	HTMLBody    string              `json:"html_body,omitempty"`
	FromEmail   string              `json:"from_email"`
	Status      string              `json:"status"`
	Category    string              `json:"category"`
	Priority    string              `json:"priority"`
	Sentiment   float64             `json:"sentiment"`
	BookingInfo *ticket.BookingInfo `json:"booking_info,omitempty"`
	Processed   bool                `json:"processed"`
	HotelID     *uint               `json:"hotel_id,omitempty"`
	ContactID   *uint               `json:"contact_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewTicketResponse maps a ticket entity to its API shape.
func NewTicketResponse(t *ticket.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:          t.ID(),
		MessageID:   t.MessageID(),
		UID:         t.UID(),
		Subject:     t.Subject(),
		Message:     t.Message(),
		HTMLBody:    t.HTMLBody(),
		FromEmail:   t.FromEmail(),
		Status:      t.Status().String(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Sentiment:   t.Sentiment(),
		BookingInfo: t.BookingInfo(),
		Processed:   t.Processed(),
		HotelID:     t.HotelID(),
		ContactID:   t.ContactID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketResponses(tickets []*ticket.Ticket) []*TicketResponse {
	responses := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, NewTicketResponse(t))
	}
	return responses
}
