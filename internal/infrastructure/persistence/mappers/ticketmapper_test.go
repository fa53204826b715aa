package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/ticket"
	vo "stayops/internal/domain/ticket/valueobjects"
)

func TestTicketMapper_RoundTrip(t *testing.T) {
	mapper := NewTicketMapper()

	entity := ticket.NewTicketFromEmail("<msg-1@mail>", 120, "Booking change", "Please move my stay", "<p>Please move my stay</p>", "guest@example.com")
	name := "Jane Doe"
	nights := 3
	entity.ApplyAnalysis("booking_modification", 0.73, &ticket.BookingInfo{
		GuestName: &name,
		NumNights: &nights,
	})
	require.NoError(t, entity.SetID(5))

	model, err := mapper.ToModel(entity)
	require.NoError(t, err)
	require.NotNil(t, model.MessageID)
	assert.Equal(t, "<msg-1@mail>", *model.MessageID)
	assert.Equal(t, uint32(120), model.UID)
	assert.Equal(t, "booking_modification", model.Category)
	assert.Equal(t, "medium", model.Priority)
	assert.True(t, model.Processed)
	assert.Contains(t, string(model.ExtractedInfo), "Jane Doe")

	back, err := mapper.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageID(), back.MessageID())
	assert.Equal(t, entity.UID(), back.UID())
	assert.Equal(t, entity.Category(), back.Category())
	assert.Equal(t, entity.Priority(), back.Priority())
	require.NotNil(t, back.BookingInfo())
	assert.Equal(t, "Jane Doe", *back.BookingInfo().GuestName)
	assert.Equal(t, 3, *back.BookingInfo().NumNights)
}

func TestTicketMapper_EmptyBookingInfoStoredAsObject(t *testing.T) {
	mapper := NewTicketMapper()

	entity := ticket.NewTicketFromEmail("<msg-2@mail>", 121, "s", "m", "", "a@b.c")
	require.NoError(t, entity.SetID(6))

	model, err := mapper.ToModel(entity)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(model.ExtractedInfo))

	back, err := mapper.ToEntity(model)
	require.NoError(t, err)
	assert.Nil(t, back.BookingInfo())
}

func TestTicketMapper_ManualTicketHasNullMessageID(t *testing.T) {
	mapper := NewTicketMapper()

	entity, err := ticket.NewTicket("Subject", "Message", "ops@example.com")
	require.NoError(t, err)
	require.NoError(t, entity.SetID(7))

	model, err := mapper.ToModel(entity)
	require.NoError(t, err)
	assert.Nil(t, model.MessageID)
}

func TestTicketMapper_InvalidStatusRejected(t *testing.T) {
	mapper := NewTicketMapper()

	entity := ticket.NewTicketFromEmail("<msg-3@mail>", 122, "s", "m", "", "a@b.c")
	require.NoError(t, entity.SetID(8))
	model, err := mapper.ToModel(entity)
	require.NoError(t, err)

	model.Status = "escalated"
	_, err = mapper.ToEntity(model)
	assert.Error(t, err)

	model.Status = vo.StatusOpen.String()
	model.Priority = "critical"
	_, err = mapper.ToEntity(model)
	assert.Error(t, err)
}
