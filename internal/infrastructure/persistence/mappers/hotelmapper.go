package mappers

import (
	"stayops/internal/domain/hotel"
	"stayops/internal/infrastructure/persistence/models"
)

// HotelMapper converts between hotel entities and GORM models.
type HotelMapper struct{}

func NewHotelMapper() *HotelMapper {
	return &HotelMapper{}
}

func (m *HotelMapper) ToModel(h *hotel.Hotel) *models.HotelModel {
	attrs := h.Attrs()
	return &models.HotelModel{
		ID:                    h.ID(),
		Name:                  h.Name(),
		Location:              attrs.Location,
		SubLocation:           attrs.SubLocation,
		Address:               attrs.Address,
		BcomID:                attrs.BcomID,
		URL:                   attrs.URL,
		ReviewScore:           attrs.ReviewScore,
		NumberOfReviews:       attrs.NumberOfReviews,
		GoogleReviewScore:     attrs.GoogleReviewScore,
		GoogleNumberOfReviews: attrs.GoogleNumberOfReviews,
		Market:                attrs.Market,
		Segment:               attrs.Segment,
		Agreement:             attrs.Agreement,
		SalesProcess:          attrs.SalesProcess,
		BcomStatus:            attrs.BcomStatus,
		CreatedAt:             h.CreatedAt(),
		UpdatedAt:             h.UpdatedAt(),
	}
}

func (m *HotelMapper) ToEntity(model *models.HotelModel) (*hotel.Hotel, error) {
	attrs := hotel.Attrs{
		Location:              model.Location,
		SubLocation:           model.SubLocation,
		Address:               model.Address,
		BcomID:                model.BcomID,
		URL:                   model.URL,
		ReviewScore:           model.ReviewScore,
		NumberOfReviews:       model.NumberOfReviews,
		GoogleReviewScore:     model.GoogleReviewScore,
		GoogleNumberOfReviews: model.GoogleNumberOfReviews,
		Market:                model.Market,
		Segment:               model.Segment,
		Agreement:             model.Agreement,
		SalesProcess:          model.SalesProcess,
		BcomStatus:            model.BcomStatus,
	}
	return hotel.ReconstructHotel(model.ID, model.Name, attrs, model.CreatedAt, model.UpdatedAt)
}

func (m *HotelMapper) ToEntities(modelList []*models.HotelModel) ([]*hotel.Hotel, error) {
	entities := make([]*hotel.Hotel, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
