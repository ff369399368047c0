package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
	}
}

// AutoMigrateStrategy derives the schema from the gorm models. It is meant
// for development and tests; it never drops columns.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	ms := AutoMigrateModels()
	s.logger.Infow("starting gorm auto migration", "models_count", len(ms))

	if err := db.WithContext(ctx).AutoMigrate(ms...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
