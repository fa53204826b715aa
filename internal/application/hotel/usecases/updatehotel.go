package usecases

import (
	"context"

	"stayops/internal/application/hotel/dto"
	"stayops/internal/domain/hotel"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type UpdateHotelUseCase struct {
	repo   hotel.Repository
	logger logger.Interface
}

func NewUpdateHotelUseCase(repo hotel.Repository, log logger.Interface) *UpdateHotelUseCase {
	return &UpdateHotelUseCase{
		repo:   repo,
		logger: log.Named("usecase.update_hotel"),
	}
}

func (uc *UpdateHotelUseCase) Execute(ctx context.Context, id uint, req dto.HotelPayload) (*dto.HotelResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := h.Update(req.Name, req.Attrs()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update hotel", "hotel_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("hotel updated", "hotel_id", id)
	return dto.NewHotelResponse(h), nil
}
