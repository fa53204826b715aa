package usecases

import (
	"context"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	vo "stayops/internal/domain/ticket/valueobjects"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type ChangeTicketStatusUseCase struct {
	repo   ticket.Repository
	logger logger.Interface
}

func NewChangeTicketStatusUseCase(repo ticket.Repository, log logger.Interface) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		repo:   repo,
		logger: log.Named("usecase.change_ticket_status"),
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, id uint, req dto.ChangeTicketStatusRequest) (*dto.TicketResponse, error) {
	status, err := vo.NewTicketStatus(req.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", id, "status", status.String())
	return dto.NewTicketResponse(t), nil
}
