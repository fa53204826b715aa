package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/guest"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	apperrors "stayops/internal/shared/errors"
)

type guestRepository struct {
	db     *gorm.DB
	mapper *mappers.GuestMapper
}

func NewGuestRepository(db *gorm.DB) guest.Repository {
	return &guestRepository{
		db:     db,
		mapper: mappers.NewGuestMapper(),
	}
}

func (r *guestRepository) Create(ctx context.Context, g *guest.Guest) error {
	model := r.mapper.ToModel(g)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return g.SetID(model.ID)
}

func (r *guestRepository) GetByID(ctx context.Context, id uint) (*guest.Guest, error) {
	var model models.GuestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guest not found")
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

type guestRow struct {
	models.GuestModel
	HotelName string `gorm:"column:hotel_name"`
}

func (r *guestRepository) List(ctx context.Context, offset, limit int) ([]guest.ListItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.GuestModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guests: %w", err)
	}

	var rows []guestRow
	if err := r.db.WithContext(ctx).
		Model(&models.GuestModel{}).
		Select("guests.*, hotels.name AS hotel_name").
		Joins("LEFT JOIN hotels ON hotels.id = guests.hotel_id").
		Order("guests.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list guests: %w", err)
	}

	items := make([]guest.ListItem, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToEntity(&rows[i].GuestModel)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, guest.ListItem{
			Guest:     entity,
			HotelName: rows[i].HotelName,
		})
	}
	return items, total, nil
}

func (r *guestRepository) Update(ctx context.Context, g *guest.Guest) error {
	model := r.mapper.ToModel(g)

	result := r.db.WithContext(ctx).
		Model(&models.GuestModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"phone":      model.Phone,
			"hotel_id":   model.HotelID,
			"contact_id": model.ContactID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("guest not found")
	}
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.GuestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("guest not found")
	}
	return nil
}
