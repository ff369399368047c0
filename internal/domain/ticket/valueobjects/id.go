package valueobjects

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a ticket. The zero value is not a valid identifier.
type ID struct {
	value uuid.UUID
}

func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses an identifier received from outside the domain.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if u == uuid.Nil {
		return ID{}, fmt.Errorf("%w: nil uuid", ErrInvalidID)
	}
	return ID{value: u}, nil
}

func IDFromUUID(u uuid.UUID) ID {
	return ID{value: u}
}

func (id ID) UUID() uuid.UUID {
	return id.value
}

func (id ID) String() string {
	return id.value.String()
}

func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}
