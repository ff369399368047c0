package errors

import (
	"errors"
	"fmt"
)

// RepositoryError is a failure reported by the storage backend while
// executing a statement. The backend's message is preserved in Err.
type RepositoryError struct {
	Op  string
	Err error
}

func NewRepositoryError(op string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Err: err}
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error: %s: %v", e.Op, e.Err)
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// InfrastructureError is a connection or transaction lifecycle failure:
// begin, commit, a cancelled context, or use of a finished unit of work.
type InfrastructureError struct {
	Op  string
	Err error
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// Error implements the error interface
func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("infrastructure error: %s: %v", e.Op, e.Err)
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func IsRepositoryError(err error) bool {
	var repoErr *RepositoryError
	return errors.As(err, &repoErr)
}

func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
