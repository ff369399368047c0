package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID string
}

type CloseTicketUseCase struct {
	executor ticket.Executor
	logger   logger.Interface
}

func NewCloseTicketUseCase(
	executor ticket.Executor,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		executor: executor,
		logger:   logger,
	}
}

// Execute closes the ticket at the version it was read with. A concurrent
// writer surfaces as ticket.ErrConcurrentModification and is not retried.
func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID)

	id, err := vo.ParseID(cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("invalid ticket id", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	closed, err := ticket.InTransaction(ctx, uc.executor, func(ctx context.Context, uow ticket.UnitOfWork) (*ticket.Ticket, error) {
		repo := uow.Tickets()

		t, err := loadTicket(ctx, repo, id)
		if err != nil {
			return nil, err
		}
		if err := t.Close(); err != nil {
			return nil, err
		}
		if err := repo.Save(ctx, t); err != nil {
			return nil, err
		}
		return loadTicket(ctx, repo, id)
	})
	if err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed successfully", "ticket_id", cmd.TicketID, "version", closed.Version())

	return dto.ToTicketDTO(closed), nil
}
