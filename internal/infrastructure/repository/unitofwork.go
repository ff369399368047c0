package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const tracerName = "ticketdesk/internal/infrastructure/repository"

// unitOfWork owns one gorm transaction. Every statement runs under mu, and
// once done is set the transaction handle is never touched again.
type unitOfWork struct {
	mu      sync.Mutex
	tx      *gorm.DB
	done    bool
	tickets *TicketRepository
}

func newUnitOfWork(tx *gorm.DB, mapper mappers.TicketMapper, log logger.Interface) *unitOfWork {
	u := &unitOfWork{tx: tx}
	u.tickets = &TicketRepository{uow: u, mapper: mapper, logger: log}
	return u
}

func (u *unitOfWork) Tickets() ticket.Repository {
	return u.tickets
}

// withTx runs fn against the transaction bound to ctx, serialized with every
// other statement of this unit of work.
func (u *unitOfWork) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return apperrors.NewInfrastructureError("use unit of work", ticket.ErrUnitOfWorkDone)
	}
	return fn(u.tx.WithContext(ctx))
}

func (u *unitOfWork) seal() {
	u.mu.Lock()
	u.done = true
	u.mu.Unlock()
}

// TransactionExecutor implements ticket.Executor on top of gorm.
type TransactionExecutor struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	tracer trace.Tracer
	logger logger.Interface
}

type ExecutorOption func(*TransactionExecutor)

// WithTracerProvider sets the provider of db_transaction spans. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) ExecutorOption {
	return func(e *TransactionExecutor) {
		e.tracer = tp.Tracer(tracerName)
	}
}

func NewTransactionExecutor(db *gorm.DB, log logger.Interface, opts ...ExecutorOption) *TransactionExecutor {
	e := &TransactionExecutor{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		tracer: otel.Tracer(tracerName),
		logger: log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ticket.Executor = (*TransactionExecutor)(nil)

// cancelledError aborts a transaction whose context ended while the
// procedure was still reporting success.
type cancelledError struct {
	err error
}

func (e *cancelledError) Error() string { return e.err.Error() }

// Run executes proc inside one database transaction. The transaction commits
// only if proc returns nil and ctx is still live; a panic in proc rolls back
// and propagates. Errors returned by proc reach the caller unchanged.
func (e *TransactionExecutor) Run(ctx context.Context, proc ticket.Procedure) (result any, err error) {
	ctx, span := e.tracer.Start(ctx, "db_transaction")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var (
		entered bool
		procErr error
	)

	txErr := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entered = true

		uow := newUnitOfWork(tx, e.mapper, e.logger)
		defer uow.seal()

		result, procErr = proc(ctx, uow)
		if procErr != nil {
			return procErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &cancelledError{err: ctxErr}
		}
		return nil
	})

	switch {
	case !entered:
		e.logger.Errorw("failed to begin transaction", "error", txErr)
		span.SetAttributes(attribute.String("db.tx.outcome", "begin_failed"))
		return nil, apperrors.NewInfrastructureError("begin transaction", txErr)

	case procErr != nil:
		e.logger.Debugw("transaction rolled back", "error", procErr)
		span.SetAttributes(attribute.String("db.tx.outcome", "rolled_back"))
		return nil, procErr

	case txErr != nil:
		var cancelled *cancelledError
		if errors.As(txErr, &cancelled) {
			e.logger.Warnw("transaction rolled back: context done before commit", "error", cancelled.err)
			span.SetAttributes(attribute.String("db.tx.outcome", "cancelled"))
			return nil, apperrors.NewInfrastructureError("commit transaction", cancelled.err)
		}
		e.logger.Errorw("failed to commit transaction", "error", txErr)
		span.SetAttributes(attribute.String("db.tx.outcome", "commit_failed"))
		return nil, apperrors.NewInfrastructureError("commit transaction", txErr)
	}

	e.logger.Debugw("transaction committed")
	span.SetAttributes(attribute.String("db.tx.outcome", "committed"))
	return result, nil
}

// Begin opens a transaction whose lifetime the caller manages.
func (e *TransactionExecutor) Begin(ctx context.Context) (ticket.Transaction, error) {
	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		e.logger.Errorw("failed to begin transaction", "error", tx.Error)
		return nil, apperrors.NewInfrastructureError("begin transaction", tx.Error)
	}
	return &transaction{unitOfWork: newUnitOfWork(tx, e.mapper, e.logger)}, nil
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
		_ = t.tx.Rollback().Error
		return apperrors.NewInfrastructureError("commit transaction", ctxErr)
	}
	if err := t.tx.Commit().Error; err != nil {
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

	if err := t.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewInfrastructureError("rollback transaction", err)
	}
	return nil
}
