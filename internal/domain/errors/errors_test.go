package errors

import (
	"net/http"
	"testing"

	"safezone/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesThroughWrapping(t *testing.T) {
	err := ErrReferenceNotFound.WrapMessage("fetch user-1")

	assert.True(t, errors.Is(err, ErrReferenceNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrNetwork.WithDetails("status 502")

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, "status 502", err.Details())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Contains(t, err.Error(), "status 502")
	assert.Empty(t, ErrNetwork.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	var appErr AppError
	err := errors.Wrap(ErrPermissionDenied, "start monitor")

	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOCATION_PERMISSION_DENIED", appErr.ErrorCode())
}
