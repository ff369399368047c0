package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// It fails when the row does not describe a valid ticket, e.g. an
	// "assigned" status without an assignee.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Version:     t.Version(),
	}

	if assignee := t.Assignee(); assignee != nil {
		s := assignee.String()
		model.Assignee = &s
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	id, err := vo.ParseID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("ticket row %q: %w", model.ID, err)
	}

	// the assignee column is stale for any status but assigned
	var assignee *uuid.UUID
	if model.Status == vo.StatusKindAssigned.String() && model.Assignee != nil {
		u, err := uuid.Parse(*model.Assignee)
		if err != nil {
			return nil, fmt.Errorf("ticket row %s: invalid assignee %q: %w", id, *model.Assignee, err)
		}
		assignee = &u
	}

	status, err := vo.ParseStatus(model.Status, assignee)
	if err != nil {
		return nil, fmt.Errorf("ticket row %s: %w", id, err)
	}

	return ticket.Reconstruct(id, model.Title, model.Description, status, model.Version)
}
