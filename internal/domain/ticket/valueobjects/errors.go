package valueobjects

import "errors"

var (
	ErrEmptyTitle         = errors.New("ticket title cannot be empty")
	ErrTooLongTitle       = errors.New("ticket title cannot be longer than 100 characters")
	ErrEmptyDescription   = errors.New("ticket description cannot be empty")
	ErrTooLongDescription = errors.New("ticket description cannot be longer than 200 characters")
	ErrInvalidID          = errors.New("invalid ticket id")
	ErrInvalidStatus      = errors.New("invalid ticket status")

	// ErrMissingAssignee reports a stored "assigned" status without an assignee.
	ErrMissingAssignee = errors.New("assigned ticket has no assignee")

	ErrTicketClosed = errors.New("ticket is closed")
)
