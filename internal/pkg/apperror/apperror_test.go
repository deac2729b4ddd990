package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := NotFound("guest %s not found", "abc")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "guest abc not found", err.Error())
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", CapacityExceeded("activity is full"))

	assert.True(t, errors.Is(wrapped, ErrCapacityExceeded))
	assert.True(t, IsKind(wrapped, KindCapacityExceeded))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Unavailable("language model call failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindExternalServiceUnavailable, KindOf(err))
	assert.Contains(t, err.Error(), "refused")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
}
