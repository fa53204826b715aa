package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/hotel"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	apperrors "stayops/internal/shared/errors"
)

type hotelRepository struct {
	db     *gorm.DB
	mapper *mappers.HotelMapper
}

func NewHotelRepository(db *gorm.DB) hotel.Repository {
	return &hotelRepository{
		db:     db,
		mapper: mappers.NewHotelMapper(),
	}
}

func (r *hotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	model := r.mapper.ToModel(h)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return h.SetID(model.ID)
}

func (r *hotelRepository) GetByID(ctx context.Context, id uint) (*hotel.Hotel, error) {
	var model models.HotelModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *hotelRepository) Search(ctx context.Context, query string, offset, limit int) ([]*hotel.Hotel, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.HotelModel{})

	if query != "" {
		pattern := "%" + query + "%"
		dbQuery = dbQuery.Where(
			"name LIKE ? OR location LIKE ? OR address LIKE ? OR market LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count hotels: %w", err)
	}

	var modelList []*models.HotelModel
	if err := dbQuery.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search hotels: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *hotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	model := r.mapper.ToModel(h)

	result := r.db.WithContext(ctx).
		Model(&models.HotelModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                     model.Name,
			"location":                 model.Location,
			"sub_location":             model.SubLocation,
			"address":                  model.Address,
			"bcom_id":                  model.BcomID,
			"url":                      model.URL,
			"review_score":             model.ReviewScore,
			"number_of_reviews":        model.NumberOfReviews,
			"google_review_score":      model.GoogleReviewScore,
			"google_number_of_reviews": model.GoogleNumberOfReviews,
			"market":                   model.Market,
			"segment":                  model.Segment,
			"agreement":                model.Agreement,
			"sales_process":            model.SalesProcess,
			"bcom_status":              model.BcomStatus,
			"updated_at":               model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hotel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("hotel not found")
	}
	return nil
}
