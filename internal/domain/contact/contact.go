package contact

import (
	"fmt"
	"strings"
	"time"
)

type Contact struct {
	id        uint
	firstName string
	lastName  string
	email     string
	phone     string
	company   string
	position  string
	createdAt time.Time
	updatedAt time.Time
}

func NewContact(firstName, lastName, email, phone, company, position string) (*Contact, error) {
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	now := time.Now()
	return &Contact{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		company:   company,
		position:  position,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructContact(id uint, firstName, lastName, email, phone, company, position string, createdAt, updatedAt time.Time) (*Contact, error) {
	if id == 0 {
		return nil, fmt.Errorf("contact ID cannot be zero")
	}

	return &Contact{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		company:   company,
		position:  position,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Contact) ID() uint {
	return c.id
}

func (c *Contact) FirstName() string {
	return c.firstName
}

func (c *Contact) LastName() string {
	return c.lastName
}

func (c *Contact) Email() string {
	return c.email
}

func (c *Contact) Phone() string {
	return c.phone
}

func (c *Contact) Company() string {
	return c.company
}

func (c *Contact) Position() string {
	return c.position
}

func (c *Contact) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Contact) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Contact) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contact ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contact ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Contact) Update(firstName, lastName, email, phone, company, position string) error {
	if len(firstName) == 0 {
		return fmt.Errorf("first name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	c.firstName = firstName
	c.lastName = lastName
	c.email = email
	c.phone = phone
	c.company = company
	c.position = position
	c.updatedAt = time.Now()
	return nil
}
