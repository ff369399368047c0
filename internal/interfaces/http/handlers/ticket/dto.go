package ticket

import (
	"ticketdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
	}
}

type AssignTicketRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateTicketResponse struct {
	ID string `json:"id"`
}
