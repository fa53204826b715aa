package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	repo := &mockTicketRepository{
		createFunc: func(_ context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}
	uc := NewCreateTicketUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateTicketRequest{
		Subject:   "Invoice mismatch",
		Message:   "The March invoice doubles the city tax.",
		FromEmail: "finance@hotel.example",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "uncategorized", resp.Category)
	assert.Equal(t, "normal", resp.Priority)
	assert.Empty(t, resp.MessageID)
}

func TestCreateTicketUseCase_Execute_ValidationError(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateTicketRequest{
		Subject: "",
		Message: "body",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockTicketRepository{
		createFunc: func(_ context.Context, _ *ticket.Ticket) error {
			return apperrors.NewInternalError("db down")
		},
	}
	uc := NewCreateTicketUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateTicketRequest{
		Subject: "s",
		Message: "m",
	})
	assert.Error(t, err)
}
