package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	FindByIDFunc func(ctx context.Context, id vo.ID) (*ticket.Ticket, error)
	InsertFunc   func(ctx context.Context, t *ticket.Ticket) error
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id vo.ID) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

type mockUnitOfWork struct {
	repo ticket.Repository
}

func (m *mockUnitOfWork) Tickets() ticket.Repository {
	return m.repo
}

// mockExecutor hands procedures a unit of work over repo and counts runs.
type mockExecutor struct {
	repo    ticket.Repository
	RunFunc func(ctx context.Context, proc ticket.Procedure) (any, error)
	runs    int
}

func newMockExecutor(repo ticket.Repository) *mockExecutor {
	return &mockExecutor{repo: repo}
}

func (m *mockExecutor) Run(ctx context.Context, proc ticket.Procedure) (any, error) {
	m.runs++
	if m.RunFunc != nil {
		return m.RunFunc(ctx, proc)
	}
	return proc(ctx, &mockUnitOfWork{repo: m.repo})
}

func (m *mockExecutor) Begin(ctx context.Context) (ticket.Transaction, error) {
	panic("Begin is not used by use cases")
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
