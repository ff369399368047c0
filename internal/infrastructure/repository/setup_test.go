package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "tickets.db"),
	}
	db, err := database.Open(context.Background(), cfg, logger.NewDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	strategy := migration.NewAutoMigrateStrategy(logger.NewDiscardLogger())
	require.NoError(t, strategy.Migrate(context.Background(), db))

	return db
}

func setupExecutor(t *testing.T, opts ...ExecutorOption) (*TransactionExecutor, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewTransactionExecutor(db, logger.NewDiscardLogger(), opts...), db
}

func newTestTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Fix bug", "NPE in handler")
	require.NoError(t, err)
	return tk
}

func insertTicket(t *testing.T, exec ticket.Executor, tk *ticket.Ticket) {
	t.Helper()
	_, err := exec.Run(context.Background(), func(ctx context.Context, uow ticket.UnitOfWork) (any, error) {
		return nil, uow.Tickets().Insert(ctx, tk)
	})
	require.NoError(t, err)
}

func findTicket(t *testing.T, exec ticket.Executor, tk *ticket.Ticket) *ticket.Ticket {
	t.Helper()
	found, err := ticket.InTransaction(context.Background(), exec,
		func(ctx context.Context, uow ticket.UnitOfWork) (*ticket.Ticket, error) {
			return uow.Tickets().FindByID(ctx, tk.ID())
		})
	require.NoError(t, err)
	return found
}
