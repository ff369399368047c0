package pgxstore

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// unitOfWork serializes statements on its pgx.Tx, which carries one
// in-flight query at a time.
type unitOfWork struct {
	mu      sync.Mutex
	tx      pgx.Tx
	done    bool
	tickets *TicketRepository
}

func newUnitOfWork(tx pgx.Tx, log logger.Interface) *unitOfWork {
	u := &unitOfWork{tx: tx}
	u.tickets = &TicketRepository{uow: u, logger: log}
	return u
}

func (u *unitOfWork) Tickets() ticket.Repository {
	return u.tickets
}

func (u *unitOfWork) withTx(fn func(tx pgx.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return apperrors.NewInfrastructureError("use unit of work", ticket.ErrUnitOfWorkDone)
	}
	return fn(u.tx)
}

func (u *unitOfWork) seal() {
	u.mu.Lock()
	u.done = true
	u.mu.Unlock()
}

type transaction struct {
	*unitOfWork
}

func (t *transaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return apperrors.NewInfrastructureError("commit transaction", ticket.ErrUnitOfWorkDone)
	}
	t.done = true

	if ctxErr := ctx.Err(); ctxErr != nil {
		_ = t.tx.Rollback(context.WithoutCancel(ctx))
		return apperrors.NewInfrastructureError("commit transaction", ctxErr)
	}
	if err := t.tx.Commit(ctx); err != nil {
		return apperrors.NewInfrastructureError("commit transaction", err)
	}
	return nil
}

func (t *transaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return nil
	}
	t.done = true

	if err := t.tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewInfrastructureError("rollback transaction", err)
	}
	return nil
}
