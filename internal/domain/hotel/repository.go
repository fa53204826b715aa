package hotel

import "context"

type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id uint) (*Hotel, error)
	// Search matches name, location, address and market. An empty query
	// lists everything.
	Search(ctx context.Context, query string, offset, limit int) ([]*Hotel, int64, error)
	Update(ctx context.Context, h *Hotel) error
}
