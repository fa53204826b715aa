package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/booking/dto"
	"stayops/internal/domain/booking"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type mockBookingRepository struct {
	createFunc     func(ctx context.Context, b *booking.Booking) error
	getByIDFunc    func(ctx context.Context, id uint) (*booking.Booking, error)
	listByUserFunc func(ctx context.Context, userID uint, offset, limit int) ([]*booking.Booking, int64, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*booking.Booking, int64, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, offset, limit)
	}
	return nil, 0, nil
}

func storedBooking(t *testing.T, id, userID uint) *booking.Booking {
	t.Helper()
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	now := time.Now()
	b, err := booking.ReconstructBooking(id, "Jo Berg", checkIn, checkOut, "double", nil, userID, now, now)
	require.NoError(t, err)
	return b
}

func TestCreateBookingUseCase_Execute(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(_ context.Context, b *booking.Booking) error {
			return b.SetID(5)
		},
	}
	uc := NewCreateBookingUseCase(repo, logger.NewLogger())

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), 7, dto.CreateBookingRequest{
		GuestName: "Jo Berg",
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 3),
		RoomType:  "double",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, uint(7), resp.UserID)
	assert.Equal(t, 3, resp.Nights)
}

func TestCreateBookingUseCase_Execute_CheckOutBeforeCheckIn(t *testing.T) {
	uc := NewCreateBookingUseCase(&mockBookingRepository{}, logger.NewLogger())

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), 7, dto.CreateBookingRequest{
		GuestName: "Jo Berg",
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, -1),
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestGetBookingUseCase_Execute_OtherUsersBookingHidden(t *testing.T) {
	repo := &mockBookingRepository{
		getByIDFunc: func(_ context.Context, id uint) (*booking.Booking, error) {
			return storedBooking(t, id, 7), nil
		},
	}
	uc := NewGetBookingUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 8, 5)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestListBookingsUseCase_Execute(t *testing.T) {
	repo := &mockBookingRepository{
		listByUserFunc: func(_ context.Context, userID uint, _, _ int) ([]*booking.Booking, int64, error) {
			assert.Equal(t, uint(7), userID)
			return []*booking.Booking{storedBooking(t, 5, userID)}, 1, nil
		},
	}
	uc := NewListBookingsUseCase(repo, logger.NewLogger())

	results, total, err := uc.Execute(context.Background(), 7, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
}
