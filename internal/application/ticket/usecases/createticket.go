package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
}

type CreateTicketResult struct {
	TicketID string
	Status   string
	Version  int64
}

type CreateTicketUseCase struct {
	executor ticket.Executor
	logger   logger.Interface
}

func NewCreateTicketUseCase(
	executor ticket.Executor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		executor: executor,
		logger:   logger,
	}
}

// Execute validates the input by building the aggregate before any
// transaction is opened, then inserts it.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	_, err = ticket.InTransaction(ctx, uc.executor, func(ctx context.Context, uow ticket.UnitOfWork) (struct{}, error) {
		return struct{}{}, uow.Tickets().Insert(ctx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to insert ticket", "ticket_id", newTicket.ID().String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID().String())

	return &CreateTicketResult{
		TicketID: newTicket.ID().String(),
		Status:   newTicket.Status().String(),
		Version:  newTicket.Version(),
	}, nil
}
