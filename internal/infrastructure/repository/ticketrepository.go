package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// TicketRepository is bound to the unit of work that created it and runs
// every statement inside that unit's transaction.
type TicketRepository struct {
	uow    *unitOfWork
	mapper mappers.TicketMapper
	logger logger.Interface
}

var _ ticket.Repository = (*TicketRepository)(nil)

// FindByID returns (nil, nil) when no ticket has the id.
func (r *TicketRepository) FindByID(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
	var (
		model models.TicketModel
		found bool
	)

	err := r.uow.withTx(ctx, func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id.String()).Take(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
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

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map ticket model to entity", "id", id.String(), "error", err)
		return nil, apperrors.NewInfrastructureError("decode ticket", err)
	}
	return t, nil
}

// Insert writes a new row at version 0, whatever the in-memory version is.
func (r *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	model.Version = 0

	return r.uow.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				r.logger.Warnw("ticket already exists", "id", model.ID, "error", err)
			} else {
				r.logger.Errorw("failed to insert ticket", "id", model.ID, "error", err)
			}
			return apperrors.NewRepositoryError("insert ticket", err)
		}
		return nil
	})
}

// Save updates the row matching the ticket's id and version and bumps the
// stored version. The in-memory ticket is not modified.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	return r.uow.withTx(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ? AND version = ?", model.ID, model.Version).
			Updates(map[string]interface{}{
				"title":       model.Title,
				"description": model.Description,
				"status":      model.Status,
				"assignee":    model.Assignee,
				"version":     gorm.Expr("version + 1"),
				"updated_at":  time.Now().UnixMilli(),
			})

		if result.Error != nil {
			r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
			return apperrors.NewRepositoryError("save ticket", result.Error)
		}

		if result.RowsAffected == 0 {
			r.logger.Warnw("ticket version conflict", "id", model.ID, "version", model.Version)
			return fmt.Errorf("ticket %s at version %d: %w", model.ID, model.Version, ticket.ErrConcurrentModification)
		}

		return nil
	})
}
