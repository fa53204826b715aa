package contact

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id uint) (*Contact, error)
	List(ctx context.Context, offset, limit int) ([]*Contact, int64, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id uint) error
}
