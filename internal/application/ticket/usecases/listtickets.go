package usecases

import (
	"context"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	"stayops/internal/shared/logger"
)

type ListTicketsUseCase struct {
	repo   ticket.Repository
	logger logger.Interface
}

func NewListTicketsUseCase(repo ticket.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		repo:   repo,
		logger: log.Named("usecase.list_tickets"),
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, req dto.ListTicketsRequest) ([]*dto.TicketResponse, int64, error) {
	filter := ticket.ListFilter{
		Status:    req.Status,
		Category:  req.Category,
		Priority:  req.Priority,
		FromEmail: req.FromEmail,
		Search:    req.Search,
	}

	offset := (req.Page - 1) * req.PageSize
	tickets, total, err := uc.repo.List(ctx, filter, offset, req.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, err
	}

	return dto.NewTicketResponses(tickets), total, nil
}
