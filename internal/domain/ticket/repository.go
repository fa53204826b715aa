package ticket

import "context"

// ListFilter narrows ticket listings. Zero values mean "no filter".
// Search matches subject and sender address.
type ListFilter struct {
	Status    string
	Category  string
	Priority  string
	FromEmail string
	Search    string
	Processed *bool
	HotelID   *uint
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByMessageID(ctx context.Context, messageID string) (*Ticket, error)
	ExistsByMessageID(ctx context.Context, messageID string) (bool, error)
	// MaxUID returns the highest mailbox UID ever persisted, or zero when
	// no ticket came from the mailbox yet.
	MaxUID(ctx context.Context) (uint32, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Ticket, int64, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
}
