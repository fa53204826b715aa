package guest

import "context"

// ListItem is the read model for guest listings, carrying the joined
// hotel name when the guest is linked to a hotel.
type ListItem struct {
	Guest     *Guest
	HotelName string
}

type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id uint) (*Guest, error)
	List(ctx context.Context, offset, limit int) ([]ListItem, int64, error)
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, id uint) error
}
