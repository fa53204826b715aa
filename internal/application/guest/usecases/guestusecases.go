// Package usecases implements the guest registry operations.
package usecases

import (
	"context"

	"stayops/internal/application/guest/dto"
	"stayops/internal/domain/guest"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CreateGuestUseCase struct {
	repo   guest.Repository
	logger logger.Interface
}

func NewCreateGuestUseCase(repo guest.Repository, log logger.Interface) *CreateGuestUseCase {
	return &CreateGuestUseCase{repo: repo, logger: log.Named("usecase.create_guest")}
}

func (uc *CreateGuestUseCase) Execute(ctx context.Context, req dto.GuestPayload) (*dto.GuestResponse, error) {
	g, err := guest.NewGuest(req.FirstName, req.LastName, req.Email, req.Phone, req.HotelID, req.ContactID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, g); err != nil {
		uc.logger.Errorw("failed to create guest", "error", err)
		return nil, err
	}

	uc.logger.Infow("guest created", "guest_id", g.ID())
	return dto.NewGuestResponse(g), nil
}

type GetGuestUseCase struct {
	repo   guest.Repository
	logger logger.Interface
}

func NewGetGuestUseCase(repo guest.Repository, log logger.Interface) *GetGuestUseCase {
	return &GetGuestUseCase{repo: repo, logger: log.Named("usecase.get_guest")}
}

func (uc *GetGuestUseCase) Execute(ctx context.Context, id uint) (*dto.GuestResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewGuestResponse(g), nil
}

type ListGuestsUseCase struct {
	repo   guest.Repository
	logger logger.Interface
}

func NewListGuestsUseCase(repo guest.Repository, log logger.Interface) *ListGuestsUseCase {
	return &ListGuestsUseCase{repo: repo, logger: log.Named("usecase.list_guests")}
}

func (uc *ListGuestsUseCase) Execute(ctx context.Context, offset, limit int) ([]*dto.GuestResponse, int64, error) {
	items, total, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		uc.logger.Errorw("failed to list guests", "error", err)
		return nil, 0, err
	}
	return dto.NewGuestListResponses(items), total, nil
}

type UpdateGuestUseCase struct {
	repo   guest.Repository
	logger logger.Interface
}

func NewUpdateGuestUseCase(repo guest.Repository, log logger.Interface) *UpdateGuestUseCase {
	return &UpdateGuestUseCase{repo: repo, logger: log.Named("usecase.update_guest")}
}

func (uc *UpdateGuestUseCase) Execute(ctx context.Context, id uint, req dto.GuestPayload) (*dto.GuestResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := g.Update(req.FirstName, req.LastName, req.Email, req.Phone, req.HotelID, req.ContactID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, g); err != nil {
		uc.logger.Errorw("failed to update guest", "guest_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("guest updated", "guest_id", id)
	return dto.NewGuestResponse(g), nil
}

type DeleteGuestUseCase struct {
	repo   guest.Repository
	logger logger.Interface
}

func NewDeleteGuestUseCase(repo guest.Repository, log logger.Interface) *DeleteGuestUseCase {
	return &DeleteGuestUseCase{repo: repo, logger: log.Named("usecase.delete_guest")}
}

func (uc *DeleteGuestUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("guest deleted", "guest_id", id)
	return nil
}
