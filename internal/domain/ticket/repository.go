package ticket

import (
	"context"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Repository is bound to the transaction of the UnitOfWork it came from and
// must not be used once that unit of work has finished.
type Repository interface {
	// FindByID returns (nil, nil) when no ticket has the given id.
	FindByID(ctx context.Context, id vo.ID) (*Ticket, error)

	// Insert stores a new ticket at version 0, whatever t.Version() says.
	Insert(ctx context.Context, t *Ticket) error

	// Save writes all mutable fields if the stored version still equals
	// t.Version(), incrementing it by one. Otherwise it returns
	// ErrConcurrentModification and leaves the row untouched. t is not modified.
	Save(ctx context.Context, t *Ticket) error
}
