package guest

import (
	"fmt"
	"strings"
	"time"
)

type Guest struct {
	id        uint
	firstName string
	lastName  string
	email     string
	phone     string
	hotelID   *uint
	contactID *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(firstName, lastName, email, phone string, hotelID, contactID *uint) (*Guest, error) {
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	now := time.Now()
	return &Guest{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		hotelID:   hotelID,
		contactID: contactID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructGuest(id uint, firstName, lastName, email, phone string, hotelID, contactID *uint, createdAt, updatedAt time.Time) (*Guest, error) {
	if id == 0 {
		return nil, fmt.Errorf("guest ID cannot be zero")
	}

	return &Guest{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		hotelID:   hotelID,
		contactID: contactID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (g *Guest) ID() uint {
	return g.id
}

func (g *Guest) FirstName() string {
	return g.firstName
}

func (g *Guest) LastName() string {
	return g.lastName
}

func (g *Guest) Email() string {
	return g.email
}

func (g *Guest) Phone() string {
	return g.phone
}

func (g *Guest) HotelID() *uint {
	return g.hotelID
}

func (g *Guest) ContactID() *uint {
	return g.contactID
}

func (g *Guest) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Guest) UpdatedAt() time.Time {
	return g.updatedAt
}

func (g *Guest) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("guest ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("guest ID cannot be zero")
	}
	g.id = id
	return nil
}

func (g *Guest) Update(firstName, lastName, email, phone string, hotelID, contactID *uint) error {
	if len(firstName) == 0 {
		return fmt.Errorf("first name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	g.firstName = firstName
	g.lastName = lastName
	g.email = email
	g.phone = phone
	g.hotelID = hotelID
	g.contactID = contactID
	g.updatedAt = time.Now()
	return nil
}
