package ticket

import (
	"context"
	"fmt"
	"reflect"

	apperrors "ticketdesk/internal/shared/errors"
)

// UnitOfWork is the view of one open transaction handed to a Procedure.
// Repositories obtained from the same UnitOfWork share its snapshot and see
// each other's writes. It cannot commit: the Executor that created it does.
type UnitOfWork interface {
	Tickets() Repository
}

// Transaction is a UnitOfWork whose lifetime the caller manages. Commit may
// succeed at most once; Rollback after Commit or a second Rollback is a no-op.
type Transaction interface {
	UnitOfWork
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Procedure is the body of a transaction. Its result crosses the Executor
// boxed as any; use InTransaction to keep call sites typed.
type Procedure func(ctx context.Context, uow UnitOfWork) (any, error)

// Executor runs procedures atomically. Run commits when the procedure
// succeeds and the context is still live; in every other case nothing the
// procedure wrote is committed.
type Executor interface {
	Run(ctx context.Context, proc Procedure) (any, error)
	Begin(ctx context.Context) (Transaction, error)
}

// InTransaction runs fn through exec and recovers its result with a checked
// type assertion.
func InTransaction[T any](
	ctx context.Context,
	exec Executor,
	fn func(ctx context.Context, uow UnitOfWork) (T, error),
) (T, error) {
	var zero T

	out, err := exec.Run(ctx, func(ctx context.Context, uow UnitOfWork) (any, error) {
		return fn(ctx, uow)
	})
	if err != nil {
		return zero, err
	}

	// A nil interface result boxes to a nil any, which no assertion accepts.
	if out == nil && any(zero) == nil {
		return zero, nil
	}

	v, ok := out.(T)
	if !ok {
		return zero, apperrors.NewInfrastructureError("unbox transaction result",
			fmt.Errorf("unexpected result type %T, want %s", out, reflect.TypeFor[T]()))
	}
	return v, nil
}
