package pgxstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const uniqueViolation = "23505"

const (
	selectTicketSQL = `SELECT id, title, description, status, assignee, version, created_at, updated_at
		FROM tickets WHERE id = $1`

	insertTicketSQL = `INSERT INTO tickets (id, title, description, status, assignee, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $6)`

	updateTicketSQL = `UPDATE tickets
		SET title = $1, description = $2, status = $3, assignee = $4, version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7`
)

// TicketRepository runs hand-written SQL inside its unit of work's transaction.
type TicketRepository struct {
	uow    *unitOfWork
	logger logger.Interface
}

var _ ticket.Repository = (*TicketRepository)(nil)

var mapper = mappers.NewTicketMapper()

func (r *TicketRepository) FindByID(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
	var (
		model models.TicketModel
		found bool
	)

	err := r.uow.withTx(func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, selectTicketSQL, id.String()).Scan(
			&model.ID,
			&model.Title,
			&model.Description,
			&model.Status,
			&model.Assignee,
			&model.Version,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			r.logger.Errorw("failed to find ticket", "id", id.String(), "error", err)
			return apperrors.NewRepositoryError("find ticket", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	t, err := mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map ticket row", "id", id.String(), "error", err)
		return nil, apperrors.NewInfrastructureError("decode ticket", err)
	}
	return t, nil
}

func (r *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	model := mapper.ToModel(t)
	now := time.Now().UnixMilli()

	return r.uow.withTx(func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertTicketSQL,
			model.ID, model.Title, model.Description, model.Status, model.Assignee, now)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				r.logger.Warnw("ticket already exists", "id", model.ID, "constraint", pgErr.ConstraintName)
			} else {
				r.logger.Errorw("failed to insert ticket", "id", model.ID, "error", err)
			}
			return apperrors.NewRepositoryError("insert ticket", err)
		}
		return nil
	})
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := mapper.ToModel(t)

	return r.uow.withTx(func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateTicketSQL,
			model.Title, model.Description, model.Status, model.Assignee, time.Now().UnixMilli(),
			model.ID, model.Version)
		if err != nil {
			r.logger.Errorw("failed to update ticket", "id", model.ID, "error", err)
			return apperrors.NewRepositoryError("save ticket", err)
		}

		if tag.RowsAffected() == 0 {
			r.logger.Warnw("ticket version conflict", "id", model.ID, "version", model.Version)
			return fmt.Errorf("ticket %s at version %d: %w", model.ID, model.Version, ticket.ErrConcurrentModification)
		}
		return nil
	})
}

// IsUniqueViolation reports whether err carries a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
