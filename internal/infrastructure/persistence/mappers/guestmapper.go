package mappers

import (
	"stayops/internal/domain/guest"
	"stayops/internal/infrastructure/persistence/models"
)

// GuestMapper converts between guest entities and GORM models.
type GuestMapper struct{}

func NewGuestMapper() *GuestMapper {
	return &GuestMapper{}
}

func (m *GuestMapper) ToModel(g *guest.Guest) *models.GuestModel {
	return &models.GuestModel{
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

func (m *GuestMapper) ToEntity(model *models.GuestModel) (*guest.Guest, error) {
	return guest.ReconstructGuest(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.HotelID,
		model.ContactID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
