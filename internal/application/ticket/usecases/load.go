package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// loadTicket turns repository absence into ticket.ErrNotFound.
func loadTicket(ctx context.Context, repo ticket.Repository, id vo.ID) (*ticket.Ticket, error) {
	t, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("ticket %s: %w", id, ticket.ErrNotFound)
	}
	return t, nil
}
