package dto

import (
	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Assignee    *string `json:"assignee"`
	Version     int64   `json:"version"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:          t.ID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Version:     t.Version(),
	}
	if assignee := t.Assignee(); assignee != nil {
		s := assignee.String()
		d.Assignee = &s
	}
	return d
}
