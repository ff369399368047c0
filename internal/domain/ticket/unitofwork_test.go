package ticket

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ticketdesk/internal/shared/errors"
)

// stubExecutor runs the procedure with a nil unit of work, or returns a
// canned result when override is set.
type stubExecutor struct {
	override func(out any, err error) (any, error)
	runs     int
}

func (s *stubExecutor) Run(ctx context.Context, proc Procedure) (any, error) {
	s.runs++
	out, err := proc(ctx, nil)
	if s.override != nil {
		return s.override(out, err)
	}
	return out, err
}

func (s *stubExecutor) Begin(context.Context) (Transaction, error) {
	return nil, errors.New("not supported")
}

type result struct {
	ID    string
	Count int
}

func TestInTransaction_TypedResult(t *testing.T) {
	exec := &stubExecutor{}

	got, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (result, error) {
		return result{ID: "abc", Count: 2}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, result{ID: "abc", Count: 2}, got)
	assert.Equal(t, 1, exec.runs)
}

func TestInTransaction_PointerResult(t *testing.T) {
	exec := &stubExecutor{}
	want := &result{ID: "p"}

	got, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (*result, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Same(t, want, got)

	got, err = InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (*result, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInTransaction_NilInterfaceResult(t *testing.T) {
	exec := &stubExecutor{}

	got, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (fmt.Stringer, error) {
		return nil, nil
	})

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInTransaction_StructFields(t *testing.T) {
	exec := &stubExecutor{}

	_, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (struct{}, error) {
		return struct{}{}, nil
	})
	assert.NoError(t, err)
}

func TestInTransaction_ErrorPropagatesUnchanged(t *testing.T) {
	exec := &stubExecutor{}

	got, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (int, error) {
		return 42, ErrConcurrentModification
	})

	assert.Same(t, ErrConcurrentModification, err)
	assert.Zero(t, got)
}

func TestInTransaction_TypeMismatchFailsClosed(t *testing.T) {
	exec := &stubExecutor{
		override: func(any, error) (any, error) {
			return "not an int", nil
		},
	}

	got, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (int, error) {
		return 1, nil
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructureError(err))
	assert.Contains(t, err.Error(), "unexpected result type string")
	assert.Zero(t, got)
}

func TestInTransaction_MissingResultFailsClosed(t *testing.T) {
	exec := &stubExecutor{
		override: func(any, error) (any, error) {
			return nil, nil
		},
	}

	_, err := InTransaction(context.Background(), exec, func(ctx context.Context, uow UnitOfWork) (int, error) {
		return 1, nil
	})

	assert.True(t, apperrors.IsInfrastructureError(err))
}
