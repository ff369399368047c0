package ticket

import (
	"errors"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	apperrors "ticketdesk/internal/shared/errors"
)

// toAppError maps a use case failure onto a client-facing error. Storage and
// infrastructure failures are matched first: their wrap chain may carry
// domain sentinels from a corrupt row, which must not reach the client.
func toAppError(err error) *apperrors.AppError {
	switch {
	case apperrors.IsInfrastructureError(err), apperrors.IsRepositoryError(err):
		return apperrors.NewInternalError("Internal server error occurred")
	case apperrors.IsAppError(err):
		return apperrors.GetAppError(err)
	case ticket.IsValidationError(err):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, vo.ErrInvalidID):
		return apperrors.NewBadRequestError("invalid ticket id", err.Error())
	case errors.Is(err, vo.ErrTicketClosed):
		return apperrors.NewBadRequestError("ticket is closed", err.Error())
	case errors.Is(err, ticket.ErrNotFound):
		return apperrors.NewNotFoundError("ticket not found")
	case errors.Is(err, ticket.ErrConcurrentModification):
		return apperrors.NewConflictError("ticket was modified concurrently, reload and retry")
	default:
		return apperrors.NewInternalError("Internal server error occurred")
	}
}
