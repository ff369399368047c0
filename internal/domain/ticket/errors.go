package ticket

import (
	"errors"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

var (
	ErrNotFound = errors.New("ticket not found")

	// ErrConcurrentModification is returned by Repository.Save when the stored
	// version no longer matches the version the ticket was read with.
	ErrConcurrentModification = errors.New("ticket was modified concurrently")

	// ErrUnitOfWorkDone is returned by any use of a unit of work, or of a
	// repository obtained from it, after its transaction has finished.
	ErrUnitOfWorkDone = errors.New("unit of work already finished")
)

var validationErrors = []error{
	vo.ErrEmptyTitle,
	vo.ErrTooLongTitle,
	vo.ErrEmptyDescription,
	vo.ErrTooLongDescription,
}

// IsValidationError reports whether err is a title or description violation.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
