package booking

import (
	"fmt"
	"time"
)

type Booking struct {
	id        uint
	guestName string
	checkIn   time.Time
	checkOut  time.Time
	roomType  string
	hotelID   *uint
	userID    uint
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(guestName string, checkIn, checkOut time.Time, roomType string, hotelID *uint, userID uint) (*Booking, error) {
	if len(guestName) == 0 {
		return nil, fmt.Errorf("guest name is required")
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, fmt.Errorf("check-in and check-out dates are required")
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out must be after check-in")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Booking{
		guestName: guestName,
		checkIn:   checkIn,
		checkOut:  checkOut,
		roomType:  roomType,
		hotelID:   hotelID,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(id uint, guestName string, checkIn, checkOut time.Time, roomType string, hotelID *uint, userID uint, createdAt, updatedAt time.Time) (*Booking, error) {
	if id == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}

	return &Booking{
		id:        id,
		guestName: guestName,
		checkIn:   checkIn,
		checkOut:  checkOut,
		roomType:  roomType,
		hotelID:   hotelID,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Booking) ID() uint {
	return b.id
}

func (b *Booking) GuestName() string {
	return b.guestName
}

func (b *Booking) CheckIn() time.Time {
	return b.checkIn
}

func (b *Booking) CheckOut() time.Time {
	return b.checkOut
}

func (b *Booking) RoomType() string {
	return b.roomType
}

func (b *Booking) HotelID() *uint {
	return b.hotelID
}

func (b *Booking) UserID() uint {
	return b.userID
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Booking) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = id
	return nil
}

// Nights returns the length of stay in nights.
func (b *Booking) Nights() int {
	return int(b.checkOut.Sub(b.checkIn).Hours() / 24)
}
