package usecases

import (
	"context"

	"stayops/internal/application/hotel/dto"
	"stayops/internal/domain/hotel"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CreateHotelUseCase struct {
	repo   hotel.Repository
	logger logger.Interface
}

func NewCreateHotelUseCase(repo hotel.Repository, log logger.Interface) *CreateHotelUseCase {
	return &CreateHotelUseCase{
		repo:   repo,
		logger: log.Named("usecase.create_hotel"),
	}
}

func (uc *CreateHotelUseCase) Execute(ctx context.Context, req dto.HotelPayload) (*dto.HotelResponse, error) {
	h, err := hotel.NewHotel(req.Name, req.Attrs())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, h); err != nil {
		uc.logger.Errorw("failed to create hotel", "error", err)
		return nil, err
	}

	uc.logger.Infow("hotel created", "hotel_id", h.ID(), "name", h.Name())
	return dto.NewHotelResponse(h), nil
}
