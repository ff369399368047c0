package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID string
	UserID   string
}

type AssignTicketUseCase struct {
	executor ticket.Executor
	logger   logger.Interface
}

func NewAssignTicketUseCase(
	executor ticket.Executor,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		executor: executor,
		logger:   logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	id, err := vo.ParseID(cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("invalid ticket id", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	user, err := uuid.Parse(cmd.UserID)
	if err != nil || user == uuid.Nil {
		uc.logger.Warnw("invalid assignee", "user_id", cmd.UserID)
		return nil, errors.NewValidationError(fmt.Sprintf("invalid user id %q", cmd.UserID))
	}

	assigned, err := ticket.InTransaction(ctx, uc.executor, func(ctx context.Context, uow ticket.UnitOfWork) (*ticket.Ticket, error) {
		repo := uow.Tickets()

		t, err := loadTicket(ctx, repo, id)
		if err != nil {
			return nil, err
		}
		if err := t.Assign(user); err != nil {
			return nil, err
		}
		if err := repo.Save(ctx, t); err != nil {
			return nil, err
		}
		return loadTicket(ctx, repo, id)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", cmd.TicketID, "user_id", user.String())

	return dto.ToTicketDTO(assigned), nil
}
