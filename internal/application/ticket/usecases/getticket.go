package usecases

import (
	"context"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	"stayops/internal/shared/logger"
)

type GetTicketUseCase struct {
	repo   ticket.Repository
	logger logger.Interface
}

func NewGetTicketUseCase(repo ticket.Repository, log logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		repo:   repo,
		logger: log.Named("usecase.get_ticket"),
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id uint) (*dto.TicketResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTicketResponse(t), nil
}
