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

func storedTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk := ticket.NewTicketFromEmail("<m@test>", 50, "subject", "message", "", "guest@example.com")
	require.NoError(t, tk.SetID(id))
	return tk
}

func TestChangeTicketStatusUseCase_Execute(t *testing.T) {
	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		getByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, id), nil
		},
		updateFunc: func(_ context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	uc := NewChangeTicketStatusUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3, dto.ChangeTicketStatusRequest{Status: "in_progress"})
	require.NoError(t, err)

	assert.Equal(t, "in_progress", resp.Status)
	require.NotNil(t, updated)
	assert.Equal(t, "in_progress", updated.Status().String())
}

func TestChangeTicketStatusUseCase_Execute_UnknownStatus(t *testing.T) {
	uc := NewChangeTicketStatusUseCase(&mockTicketRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, dto.ChangeTicketStatusRequest{Status: "archived"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestChangeTicketStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	repo := &mockTicketRepository{
		getByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			tk := storedTicket(t, id)
			require.NoError(t, tk.ChangeStatus("resolved"))
			return tk, nil
		},
	}
	uc := NewChangeTicketStatusUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, dto.ChangeTicketStatusRequest{Status: "in_progress"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestChangeTicketStatusUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}
	uc := NewChangeTicketStatusUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 99, dto.ChangeTicketStatusRequest{Status: "resolved"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
