package usecases

import (
	"context"

	"stayops/internal/domain/ticket"
	"stayops/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	repo   ticket.Repository
	logger logger.Interface
}

func NewDeleteTicketUseCase(repo ticket.Repository, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		repo:   repo,
		logger: log.Named("usecase.delete_ticket"),
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("ticket deleted", "ticket_id", id)
	return nil
}
