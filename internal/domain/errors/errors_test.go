package errors

import (
	"net/http"
	"testing"

	"greenmarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrMerchantNotFound, http.StatusNotFound},
		{ErrMerchantAlreadyExists, http.StatusConflict},
		{ErrEmailAlreadyRegistered, http.StatusConflict},
		{ErrAccountAlreadyExists, http.StatusConflict},
		{ErrUserTypeNotImplemented, http.StatusNotImplemented},
		{ErrConfiguration, http.StatusInternalServerError},
		{ErrUpstreamFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails([]string{"field is required"})

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.Equal(t, []string{"field is required"}, detailed.Details())
	// The original stays untouched.
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestBaseError_IdentitySurvivesWrapping(t *testing.T) {
	err := errors.Wrap(ErrMerchantNotFound.WithDetails("merchant m-1"), "get merchant")

	assert.ErrorIs(t, err, ErrMerchantNotFound)
	assert.NotErrorIs(t, err, ErrValidationFailed)

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "merchant m-1", appErr.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrMerchantNotFound.WrapMessage("get merchant")

	assert.ErrorIs(t, err, ErrMerchantNotFound)
	assert.Contains(t, err.Error(), "get merchant")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBaseError_WithMessage(t *testing.T) {
	custom := ErrConflict.WithMessage("Merchant already listed")

	assert.Equal(t, "Merchant already listed", custom.Message())
	assert.Equal(t, "Merchant already listed", custom.Error())
	assert.ErrorIs(t, custom, ErrConflict)
}
