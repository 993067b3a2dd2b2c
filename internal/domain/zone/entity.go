package zone

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyZoneName   = errors.New("zone name cannot be empty")
	ErrZoneNameTooLong = errors.New("zone name is too long (max 255 characters)")
)

const MaxZoneNameLength = 255

// Zone is a physical wash bay. An inactive zone is never offered for new
// bookings, but bookings already placed in it keep their slot.
type Zone struct {
	id        uuid.UUID
	name      string
	isActive  bool
	createdAt time.Time
}

func NewZone(name string, isActive bool) (*Zone, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Zone{
		id:       uuid.New(),
		name:     strings.TrimSpace(name),
		isActive: isActive,
	}, nil
}

func ReconstructZone(id uuid.UUID, name string, isActive bool, createdAt time.Time) *Zone {
	return &Zone{id: id, name: name, isActive: isActive, createdAt: createdAt}
}

func (z *Zone) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	z.name = strings.TrimSpace(name)
	return nil
}

func (z *Zone) SetActive(active bool) {
	z.isActive = active
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyZoneName
	}
	if len(name) > MaxZoneNameLength {
		return ErrZoneNameTooLong
	}
	return nil
}

func (z *Zone) ID() uuid.UUID        { return z.id }
func (z *Zone) Name() string         { return z.name }
func (z *Zone) IsActive() bool       { return z.isActive }
func (z *Zone) CreatedAt() time.Time { return z.createdAt }
