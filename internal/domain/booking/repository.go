package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*Booking, int64, error)
}
