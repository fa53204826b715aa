package usecases

import (
	"context"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// CreateTicketUseCase creates a ticket entered manually through the API,
// as opposed to one ingested from the mailbox.
type CreateTicketUseCase struct {
	repo   ticket.Repository
	logger logger.Interface
}

func NewCreateTicketUseCase(repo ticket.Repository, log logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		repo:   repo,
		logger: log.Named("usecase.create_ticket"),
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	t, err := ticket.NewTicket(req.Subject, req.Message, req.FromEmail)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "subject", t.Subject())
	return dto.NewTicketResponse(t), nil
}
