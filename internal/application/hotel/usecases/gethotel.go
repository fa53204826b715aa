package usecases

import (
	"context"

	"stayops/internal/application/hotel/dto"
	"stayops/internal/domain/hotel"
	"stayops/internal/shared/logger"
)

type GetHotelUseCase struct {
	repo   hotel.Repository
	logger logger.Interface
}

func NewGetHotelUseCase(repo hotel.Repository, log logger.Interface) *GetHotelUseCase {
	return &GetHotelUseCase{
		repo:   repo,
		logger: log.Named("usecase.get_hotel"),
	}
}

func (uc *GetHotelUseCase) Execute(ctx context.Context, id uint) (*dto.HotelResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewHotelResponse(h), nil
}
