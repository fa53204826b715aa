package hotel

import (
	"fmt"
	"time"
)

// Attrs carries the optional descriptive fields of a hotel. They come from
// various import sources and are all allowed to be empty.
type Attrs struct {
	Location              string
	SubLocation           string
	Address               string
	BcomID                string
	URL                   string
	ReviewScore           float64
	NumberOfReviews       int
	GoogleReviewScore     float64
	GoogleNumberOfReviews int
	Market                string
	Segment               string
	Agreement             string
	SalesProcess          string
	BcomStatus            string
}

type Hotel struct {
	id        uint
	name      string
	attrs     Attrs
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(name string, attrs Attrs) (*Hotel, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}

	now := time.Now()
	return &Hotel{
		name:      name,
		attrs:     attrs,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHotel(id uint, name string, attrs Attrs, createdAt, updatedAt time.Time) (*Hotel, error) {
	if id == 0 {
		return nil, fmt.Errorf("hotel ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Hotel{
		id:        id,
		name:      name,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (h *Hotel) ID() uint {
	return h.id
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) Attrs() Attrs {
	return h.attrs
}

func (h *Hotel) CreatedAt() time.Time {
	return h.createdAt
}

func (h *Hotel) UpdatedAt() time.Time {
	return h.updatedAt
}

func (h *Hotel) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("hotel ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("hotel ID cannot be zero")
	}
	h.id = id
	return nil
}

func (h *Hotel) Update(name string, attrs Attrs) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	h.name = name
	h.attrs = attrs
	h.updatedAt = time.Now()
	return nil
}
