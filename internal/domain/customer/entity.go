package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("customer name cannot be empty")
	ErrEmptyPhone = errors.New("customer phone cannot be empty")
)

type Customer struct {
	id        uuid.UUID
	name      string
	email     *string
	phone     string
	address   *string
	createdAt time.Time
}

func NewCustomer(name, phone string, email, address *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	return &Customer{
		id:      uuid.New(),
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name, phone string, email, address *string, createdAt time.Time) *Customer {
	return &Customer{id: id, name: name, phone: phone, email: email, address: address, createdAt: createdAt}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() *string       { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() *string     { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
