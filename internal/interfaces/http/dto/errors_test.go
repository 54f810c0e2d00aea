package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found maps to 404", ErrCodeNotFound, http.StatusNotFound},
		{"invalid input maps to 400", ErrCodeInvalidInput, http.StatusBadRequest},
		{"invalid state maps to 409", ErrCodeInvalidState, http.StatusConflict},
		{"provider failure maps to 502", ErrCodeProviderFailure, http.StatusBadGateway},
		{"already exists maps to 409", ErrCodeAlreadyExists, http.StatusConflict},
		{"internal maps to 500", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code defaults to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"domain not found", "NOT_FOUND", ErrCodeNotFound},
		{"domain invalid input", "INVALID_INPUT", ErrCodeInvalidInput},
		{"domain invalid state", "INVALID_STATE", ErrCodeInvalidState},
		{"domain provider error", "PROVIDER_ERROR", ErrCodeProviderFailure},
		{"already normalized", ErrCodeNotFound, ErrCodeNotFound},
		{"unknown passes through", "SOMETHING", "SOMETHING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Resource not found", "req-123")

	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "provider_id", Message: "required"},
		{Field: "record_ids", Message: "must not be empty"},
	}

	resp := NewValidationErrorResponse("Validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-456", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 41, 2, 20)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
