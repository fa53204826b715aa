package mappers

import (
	"stayops/internal/domain/booking"
	"stayops/internal/infrastructure/persistence/models"
)

// BookingMapper converts between booking entities and GORM models.
type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToModel(b *booking.Booking) *models.BookingModel {
	return &models.BookingModel{
		ID:        b.ID(),
		GuestName: b.GuestName(),
		CheckIn:   b.CheckIn(),
		CheckOut:  b.CheckOut(),
		RoomType:  b.RoomType(),
		HotelID:   b.HotelID(),
		UserID:    b.UserID(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func (m *BookingMapper) ToEntity(model *models.BookingModel) (*booking.Booking, error) {
	return booking.ReconstructBooking(
		model.ID,
		model.GuestName,
		model.CheckIn,
		model.CheckOut,
		model.RoomType,
		model.HotelID,
		model.UserID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BookingMapper) ToEntities(modelList []*models.BookingModel) ([]*booking.Booking, error) {
	entities := make([]*booking.Booking, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
