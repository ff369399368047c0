package mappers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
)

func ptr(s string) *string { return &s }

func TestTicketMapper_ToModel(t *testing.T) {
	m := NewTicketMapper()

	tk, err := ticket.NewTicket("Fix bug", "NPE in handler")
	require.NoError(t, err)

	model := m.ToModel(tk)
	assert.Equal(t, tk.ID().String(), model.ID)
	assert.Equal(t, "Fix bug", model.Title)
	assert.Equal(t, "NPE in handler", model.Description)
	assert.Equal(t, "open", model.Status)
	assert.Nil(t, model.Assignee)
	assert.Equal(t, int64(0), model.Version)

	user := uuid.New()
	require.NoError(t, tk.Assign(user))
	model = m.ToModel(tk)
	assert.Equal(t, "assigned", model.Status)
	require.NotNil(t, model.Assignee)
	assert.Equal(t, user.String(), *model.Assignee)
}

func TestTicketMapper_ToDomain(t *testing.T) {
	m := NewTicketMapper()
	id := uuid.New()
	user := uuid.New()

	tests := []struct {
		name      string
		model     models.TicketModel
		wantErr   error
		wantKind  vo.StatusKind
		wantUser  *uuid.UUID
		wantError bool
	}{
		{
			name:     "open row",
			model:    models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "open", Version: 3},
			wantKind: vo.StatusKindOpen,
		},
		{
			name:     "assigned row",
			model:    models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "assigned", Assignee: ptr(user.String())},
			wantKind: vo.StatusKindAssigned,
			wantUser: &user,
		},
		{
			name:     "closed row drops stale assignee",
			model:    models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "closed", Assignee: ptr(user.String())},
			wantKind: vo.StatusKindClosed,
		},
		{
			name:     "closed row ignores malformed assignee",
			model:    models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "closed", Assignee: ptr("not-a-uuid")},
			wantKind: vo.StatusKindClosed,
		},
		{
			name:     "open row ignores malformed assignee",
			model:    models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "open", Assignee: ptr("")},
			wantKind: vo.StatusKindOpen,
		},
		{
			name:      "assigned row without assignee",
			model:     models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "assigned"},
			wantErr:   vo.ErrMissingAssignee,
			wantError: true,
		},
		{
			name:      "unknown status",
			model:     models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "pending"},
			wantErr:   vo.ErrInvalidStatus,
			wantError: true,
		},
		{
			name:      "malformed id",
			model:     models.TicketModel{ID: "nope", Title: "t", Description: "d", Status: "open"},
			wantErr:   vo.ErrInvalidID,
			wantError: true,
		},
		{
			name:      "malformed assignee",
			model:     models.TicketModel{ID: id.String(), Title: "t", Description: "d", Status: "assigned", Assignee: ptr("x")},
			wantError: true,
		},
		{
			name:      "empty title",
			model:     models.TicketModel{ID: id.String(), Title: "  ", Description: "d", Status: "open"},
			wantErr:   vo.ErrEmptyTitle,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := m.ToDomain(&tt.model)
			if tt.wantError {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, tk)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, tk.ID().UUID())
			assert.Equal(t, tt.wantKind, tk.Status().Kind())
			assert.Equal(t, tt.wantUser, tk.Assignee())
			assert.Equal(t, tt.model.Version, tk.Version())
		})
	}
}
