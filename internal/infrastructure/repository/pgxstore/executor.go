// Package pgxstore implements the ticket persistence contracts directly on a
// pgx connection pool, for deployments that run PostgreSQL without gorm.
package pgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const tracerName = "ticketdesk/internal/infrastructure/repository/pgxstore"

// Executor implements ticket.Executor over a pgx pool.
type Executor struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger logger.Interface
}

var _ ticket.Executor = (*Executor)(nil)

func NewExecutor(pool *pgxpool.Pool, log logger.Interface) *Executor {
	return &Executor{
		pool:   pool,
		tracer: otel.Tracer(tracerName),
		logger: log,
	}
}

// Run executes proc in one transaction and commits only when proc succeeds
// and ctx is still live. The deferred rollback covers errors and panics.
func (e *Executor) Run(ctx context.Context, proc ticket.Procedure) (result any, err error) {
	ctx, span := e.tracer.Start(ctx, "db_transaction", trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		e.logger.Errorw("failed to begin transaction", "error", err)
		span.SetAttributes(attribute.String("db.tx.outcome", "begin_failed"))
		return nil, apperrors.NewInfrastructureError("begin transaction", err)
	}

	uow := newUnitOfWork(tx, e.logger)
	defer func() {
		uow.seal()
		// rollback must still reach the server when ctx is already done
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			e.logger.Warnw("rollback failed", "error", rbErr)
		}
	}()

	result, err = proc(ctx, uow)
	if err != nil {
		e.logger.Debugw("transaction rolled back", "error", err)
		span.SetAttributes(attribute.String("db.tx.outcome", "rolled_back"))
		return nil, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		e.logger.Warnw("transaction rolled back: context done before commit", "error", ctxErr)
		span.SetAttributes(attribute.String("db.tx.outcome", "cancelled"))
		return nil, apperrors.NewInfrastructureError("commit transaction", ctxErr)
	}

	uow.seal()
	if err := tx.Commit(ctx); err != nil {
		e.logger.Errorw("failed to commit transaction", "error", err)
		span.SetAttributes(attribute.String("db.tx.outcome", "commit_failed"))
		return nil, apperrors.NewInfrastructureError("commit transaction", err)
	}

	e.logger.Debugw("transaction committed")
	span.SetAttributes(attribute.String("db.tx.outcome", "committed"))
	return result, nil
}

// Begin opens a transaction whose lifetime the caller manages.
func (e *Executor) Begin(ctx context.Context) (ticket.Transaction, error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		e.logger.Errorw("failed to begin transaction", "error", err)
		return nil, apperrors.NewInfrastructureError("begin transaction", err)
	}
	return &transaction{unitOfWork: newUnitOfWork(tx, e.logger)}, nil
}
