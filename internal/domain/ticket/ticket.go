package ticket

import (
	"fmt"

	"github.com/google/uuid"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root. Title and description are fixed at
// construction; status changes only through Assign and Close. Version is the
// value last read from storage and is never changed in memory.
type Ticket struct {
	id          vo.ID
	title       vo.Title
	description vo.Description
	status      vo.Status
	version     int64
}

func NewTicket(title string, description string) (*Ticket, error) {
	t, err := vo.NewTitle(title)
	if err != nil {
		return nil, err
	}
	d, err := vo.NewDescription(description)
	if err != nil {
		return nil, err
	}

	return &Ticket{
		id:          vo.NewID(),
		title:       t,
		description: d,
		status:      vo.StatusOpen(),
		version:     0,
	}, nil
}

// Reconstruct rebuilds a ticket from stored state.
func Reconstruct(
	id vo.ID,
	title string,
	description string,
	status vo.Status,
	version int64,
) (*Ticket, error) {
	if id.IsZero() {
		return nil, vo.ErrInvalidID
	}
	if version < 0 {
		return nil, fmt.Errorf("ticket %s: negative version %d", id, version)
	}
	t, err := vo.NewTitle(title)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", id, err)
	}
	d, err := vo.NewDescription(description)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", id, err)
	}

	return &Ticket{
		id:          id,
		title:       t,
		description: d,
		status:      status,
		version:     version,
	}, nil
}

func (t *Ticket) ID() vo.ID {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title.String()
}

func (t *Ticket) Description() string {
	return t.description.String()
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

// Assignee is derived from the status: non-nil exactly when the ticket is assigned.
func (t *Ticket) Assignee() *uuid.UUID {
	user, ok := t.status.Assignee()
	if !ok {
		return nil
	}
	return &user
}

func (t *Ticket) Version() int64 {
	return t.version
}

func (t *Ticket) Assign(user uuid.UUID) error {
	if user == uuid.Nil {
		return fmt.Errorf("assignee cannot be the nil uuid")
	}
	if !t.status.CanTransitionTo(vo.StatusKindAssigned) {
		return fmt.Errorf("cannot assign ticket %s: %w", t.id, vo.ErrTicketClosed)
	}

	t.status = vo.StatusAssigned(user)
	return nil
}

func (t *Ticket) Close() error {
	if !t.status.CanTransitionTo(vo.StatusKindClosed) {
		return fmt.Errorf("cannot close ticket %s: %w", t.id, vo.ErrTicketClosed)
	}

	t.status = vo.StatusClosed()
	return nil
}

// Clone returns an independent copy, e.g. to keep a snapshot before mutating.
func (t *Ticket) Clone() *Ticket {
	c := *t
	return &c
}
