// Package usecases implements the manual booking log operations. Bookings
// are scoped to the user who recorded them.
package usecases

import (
	"context"

	"stayops/internal/application/booking/dto"
	"stayops/internal/domain/booking"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CreateBookingUseCase struct {
	repo   booking.Repository
	logger logger.Interface
}

func NewCreateBookingUseCase(repo booking.Repository, log logger.Interface) *CreateBookingUseCase {
	return &CreateBookingUseCase{repo: repo, logger: log.Named("usecase.create_booking")}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, userID uint, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	b, err := booking.NewBooking(req.GuestName, req.CheckIn, req.CheckOut, req.RoomType, req.HotelID, userID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create booking", "error", err)
		return nil, err
	}

	uc.logger.Infow("booking created", "booking_id", b.ID(), "user_id", userID)
	return dto.NewBookingResponse(b), nil
}

type GetBookingUseCase struct {
	repo   booking.Repository
	logger logger.Interface
}

func NewGetBookingUseCase(repo booking.Repository, log logger.Interface) *GetBookingUseCase {
	return &GetBookingUseCase{repo: repo, logger: log.Named("usecase.get_booking")}
}

// Execute returns the booking only to its owner. Someone else's booking
// reads as not found rather than forbidden.
func (uc *GetBookingUseCase) Execute(ctx context.Context, userID, id uint) (*dto.BookingResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID() != userID {
		return nil, apperrors.NewNotFoundError("booking not found")
	}
	return dto.NewBookingResponse(b), nil
}

type ListBookingsUseCase struct {
	repo   booking.Repository
	logger logger.Interface
}

func NewListBookingsUseCase(repo booking.Repository, log logger.Interface) *ListBookingsUseCase {
	return &ListBookingsUseCase{repo: repo, logger: log.Named("usecase.list_bookings")}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, userID uint, offset, limit int) ([]*dto.BookingResponse, int64, error) {
	bookings, total, err := uc.repo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		uc.logger.Errorw("failed to list bookings", "user_id", userID, "error", err)
		return nil, 0, err
	}
	return dto.NewBookingResponses(bookings), total, nil
}
