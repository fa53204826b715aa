package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"stayops/internal/domain/ticket"
	vo "stayops/internal/domain/ticket/valueobjects"
	"stayops/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and GORM models.
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	var messageID *string
	if id := t.MessageID(); id != "" {
		messageID = &id
	}

	// Always persist a JSON object so readers never deal with NULL here.
	info := t.BookingInfo()
	if info == nil {
		info = &ticket.BookingInfo{}
	}
	extracted, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking info: %w", err)
	}

	return &models.TicketModel{
		ID:            t.ID(),
		MessageID:     messageID,
		UID:           t.UID(),
		Subject:       t.Subject(),
		Message:       t.Message(),
		HTMLBody:      t.HTMLBody(),
		FromEmail:     t.FromEmail(),
		Status:        t.Status().String(),
		Category:      t.Category(),
		Priority:      t.Priority().String(),
		Sentiment:     t.Sentiment(),
		ExtractedInfo: datatypes.JSON(extracted),
		Processed:     t.Processed(),
		HotelID:       t.HotelID(),
		ContactID:     t.ContactID(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}, nil
}

func (m *TicketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse status: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to parse priority: %w", err)
	}

	var info *ticket.BookingInfo
	if len(model.ExtractedInfo) > 0 {
		parsed := &ticket.BookingInfo{}
		if err := json.Unmarshal(model.ExtractedInfo, parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking info: %w", err)
		}
		if !parsed.IsEmpty() {
			info = parsed
		}
	}

	messageID := ""
	if model.MessageID != nil {
		messageID = *model.MessageID
	}

	return ticket.ReconstructTicket(
		model.ID,
		messageID,
		model.UID,
		model.Subject,
		model.Message,
		model.HTMLBody,
		model.FromEmail,
		status,
		model.Category,
		priority,
		model.Sentiment,
		info,
		model.Processed,
		model.HotelID,
		model.ContactID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapper) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
