package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("cart line", "prod-1|40|black")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "prod-1|40|black")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("product id is required")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAppError_Error(t *testing.T) {
	err := &AppError{Code: "X", Message: "boom"}
	assert.Equal(t, "X: boom", err.Error())

	wrapped := &AppError{Code: "X", Message: "boom", Err: errors.New("cause")}
	assert.Equal(t, "X: boom: cause", wrapped.Error())
}

func TestWrap(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(base, "save snapshot")

	assert.EqualError(t, err, "save snapshot: disk full")
	assert.True(t, errors.Is(err, base))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NotFound("x", "1"), http.StatusNotFound},
		{InvalidInput("bad"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{fmt.Errorf("load state: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}
