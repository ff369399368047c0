package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

func storedTicket(t *testing.T, status vo.Status, version int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.Reconstruct(vo.NewID(), "Fix bug", "NPE in handler", status, version)
	require.NoError(t, err)
	return tk
}

func TestCloseTicketUseCase_Execute_Success(t *testing.T) {
	existing := storedTicket(t, vo.StatusOpen(), 0)

	var saved *ticket.Ticket
	reads := 0
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
			reads++
			if saved != nil {
				return ticket.Reconstruct(saved.ID(), saved.Title(), saved.Description(), saved.Status(), saved.Version()+1)
			}
			return existing.Clone(), nil
		},
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}

	result, err := NewCloseTicketUseCase(newMockExecutor(repo), &mockLogger{}).Execute(context.Background(), CloseTicketCommand{
		TicketID: existing.ID().String(),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(0), saved.Version(), "save is called with the version that was read")
	assert.Equal(t, "closed", result.Status)
	assert.Equal(t, int64(1), result.Version)
	assert.Equal(t, 2, reads)
}

func TestCloseTicketUseCase_Execute_Errors(t *testing.T) {
	closed := storedTicket(t, vo.StatusClosed(), 3)

	tests := []struct {
		name     string
		ticketID string
		repo     *mockTicketRepository
		wantErr  error
		wantRuns int
	}{
		{
			name:     "malformed id",
			ticketID: "not-a-uuid",
			repo:     &mockTicketRepository{},
			wantErr:  vo.ErrInvalidID,
			wantRuns: 0,
		},
		{
			name:     "absent ticket",
			ticketID: vo.NewID().String(),
			repo:     &mockTicketRepository{},
			wantErr:  ticket.ErrNotFound,
			wantRuns: 1,
		},
		{
			name:     "already closed",
			ticketID: closed.ID().String(),
			repo: &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
					return closed.Clone(), nil
				},
			},
			wantErr:  vo.ErrTicketClosed,
			wantRuns: 1,
		},
		{
			name:     "concurrent modification",
			ticketID: closed.ID().String(),
			repo: &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
					return storedTicket(t, vo.StatusOpen(), 0), nil
				},
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					return ticket.ErrConcurrentModification
				},
			},
			wantErr:  ticket.ErrConcurrentModification,
			wantRuns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := newMockExecutor(tt.repo)

			result, err := NewCloseTicketUseCase(exec, &mockLogger{}).Execute(context.Background(), CloseTicketCommand{
				TicketID: tt.ticketID,
			})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantRuns, exec.runs, "conflicts are never retried")
		})
	}
}
