// Package dto defines the request and response shapes of the contact usecases.
package dto

import (
	"time"

	"stayops/internal/domain/contact"
)

type ContactPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Position  string `json:"position"`
}

type ContactResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContactResponse(c *contact.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Company:   c.Company(),
		Position:  c.Position(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func NewContactResponses(contacts []*contact.Contact) []*ContactResponse {
	responses := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, NewContactResponse(c))
	}
	return responses
}
