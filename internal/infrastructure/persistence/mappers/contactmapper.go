package mappers

import (
	"stayops/internal/domain/contact"
	"stayops/internal/infrastructure/persistence/models"
)

// ContactMapper converts between contact entities and GORM models.
type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToModel(c *contact.Contact) *models.ContactModel {
	return &models.ContactModel{
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

func (m *ContactMapper) ToEntity(model *models.ContactModel) (*contact.Contact, error) {
	return contact.ReconstructContact(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.Company,
		model.Position,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ContactMapper) ToEntities(modelList []*models.ContactModel) ([]*contact.Contact, error) {
	entities := make([]*contact.Contact, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
