package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	executor ticket.Executor
	logger   logger.Interface
}

func NewGetTicketUseCase(
	executor ticket.Executor,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		executor: executor,
		logger:   logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	id, err := vo.ParseID(query.TicketID)
	if err != nil {
		return nil, err
	}

	t, err := ticket.InTransaction(ctx, uc.executor, func(ctx context.Context, uow ticket.UnitOfWork) (*ticket.Ticket, error) {
		return loadTicket(ctx, uow.Tickets(), id)
	})
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
