package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad title"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("stale"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("nope"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "conflict: stale", NewConflictError("stale").Error())
	assert.Equal(t, "not_found: missing (id=42)", NewNotFoundError("missing", "id=42").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConflictError("stale"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Error 1062 (23000): Duplicate entry 'x' for key 'PRIMARY'", true},
		{`ERROR: duplicate key value violates unique constraint "tickets_pkey" (SQLSTATE 23505)`, true},
		{"UNIQUE constraint failed: tickets.id", true},
		{"connection refused", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDuplicateError(errors.New(tt.msg)), tt.msg)
	}
	assert.False(t, IsDuplicateError(nil))
}

func TestStorageErrors_Unwrap(t *testing.T) {
	cause := context.Canceled

	infra := NewInfrastructureError("commit", cause)
	assert.ErrorIs(t, infra, context.Canceled)
	assert.True(t, IsInfrastructureError(fmt.Errorf("wrap: %w", infra)))
	assert.False(t, IsRepositoryError(infra))
	assert.Equal(t, "infrastructure error: commit: context canceled", infra.Error())

	repo := NewRepositoryError("insert ticket", errors.New("UNIQUE constraint failed: tickets.id"))
	assert.True(t, IsRepositoryError(repo))
	assert.Contains(t, repo.Error(), "UNIQUE constraint failed")
}
