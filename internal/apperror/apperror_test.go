package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gallery/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := map[apperror.Kind]int{
		apperror.Validation:     http.StatusBadRequest,
		apperror.Auth:           http.StatusUnauthorized,
		apperror.Forbidden:      http.StatusForbidden,
		apperror.Conflict:       http.StatusConflict,
		apperror.NotFound:       http.StatusNotFound,
		apperror.Integrity:      http.StatusInternalServerError,
		apperror.Infrastructure: http.StatusInternalServerError,
	}
	for kind, want := range cases {
		err := apperror.Newf(kind, "boom")
		assert.Equal(t, want, err.Status())
		assert.Equal(t, want, apperror.StatusOf(err))
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := apperror.Newf(apperror.Conflict, "username 'alice' already taken")
	wrapped := fmt.Errorf("register: %w", inner)

	assert.True(t, apperror.IsKind(wrapped, apperror.Conflict))
	assert.False(t, apperror.IsKind(wrapped, apperror.NotFound))
	assert.False(t, apperror.IsKind(errors.New("plain"), apperror.Conflict))
}

func TestMessageOfHidesInternals(t *testing.T) {
	appErr := apperror.New(apperror.Infrastructure, "failed to get user", errors.New("dial tcp: refused"))
	assert.Equal(t, "failed to get user", apperror.MessageOf(appErr))
	assert.Contains(t, appErr.Error(), "dial tcp")

	assert.Equal(t, "internal server error", apperror.MessageOf(errors.New("sql: secret detail")))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	err := apperror.New(apperror.NotFound, "image with ID x not found", cause)
	assert.ErrorIs(t, err, cause)
}
