package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/booking"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	apperrors "stayops/internal/shared/errors"
)

type bookingRepository struct {
	db     *gorm.DB
	mapper *mappers.BookingMapper
}

func NewBookingRepository(db *gorm.DB) booking.Repository {
	return &bookingRepository{
		db:     db,
		mapper: mappers.NewBookingMapper(),
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return b.SetID(model.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*booking.Booking, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var modelList []*models.BookingModel
	if err := query.
		Order("check_in DESC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
