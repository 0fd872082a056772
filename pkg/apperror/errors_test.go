package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppError_PassesThroughWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading supplier: %w", NewNotFoundError("Supplier"))

	appErr := GetAppError(wrapped)

	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Supplier not found", appErr.Message)
}

func TestGetAppError_HidesUnknownCause(t *testing.T) {
	cause := errors.New("pq: relation \"invoices\" does not exist")

	appErr := GetAppError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
}

func TestNewInternalError_KeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("constraint violation")
	appErr := NewInternalError("Failed to create purchase order", cause)

	require.True(t, IsAppError(appErr))
	assert.Equal(t, "Failed to create purchase order", appErr.Message)
	assert.Contains(t, appErr.Error(), "constraint violation")
	assert.ErrorIs(t, appErr, cause)
}

func TestNewValidationError(t *testing.T) {
	appErr := NewValidationError([]FieldError{{Field: "items", Message: "items is required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "items", appErr.Errors[0].Field)
}
