package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stayops/internal/domain/contact"
	"stayops/internal/infrastructure/persistence/mappers"
	"stayops/internal/infrastructure/persistence/models"
	apperrors "stayops/internal/shared/errors"
)

type contactRepository struct {
	db     *gorm.DB
	mapper *mappers.ContactMapper
}

func NewContactRepository(db *gorm.DB) contact.Repository {
	return &contactRepository{
		db:     db,
		mapper: mappers.NewContactMapper(),
	}
}

func (r *contactRepository) Create(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*contact.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("contact not found")
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *contactRepository) List(ctx context.Context, offset, limit int) ([]*contact.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var modelList []*models.ContactModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *contactRepository) Update(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"phone":      model.Phone,
			"company":    model.Company,
			"position":   model.Position,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contact not found")
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contact not found")
	}
	return nil
}
