package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrNotFound, "profile")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, "profile: not found", err.Error())
	assert.Equal(t, "profile", GetMessage(err))

	outer := fmt.Errorf("load feed: %w", err)
	assert.True(t, IsNotFound(outer))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, WrapWithCode(nil, "code", "ignored"))
	assert.Equal(t, "", GetMessage(nil))
}

func TestInvalid(t *testing.T) {
	err := Invalid("caption must not be empty")

	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, "invalid_input", GetCode(err))
	assert.Equal(t, "caption must not be empty", GetMessage(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[error]int{
		Wrap(ErrNotFound, "post"):              http.StatusNotFound,
		Invalid("caption is required"):         http.StatusBadRequest,
		Wrap(ErrUnauthorized, "missing token"): http.StatusUnauthorized,
		Wrap(ErrForbidden, "not the author"):   http.StatusForbidden,
		Wrap(ErrAlreadyExists, "profile"):      http.StatusConflict,
		Wrap(ErrRateLimited, "slow down"):      http.StatusTooManyRequests,
		fmt.Errorf("connection reset"):         http.StatusInternalServerError,
	}

	for err, want := range cases {
		assert.Equal(t, want, HTTPStatus(err), err.Error())
	}
}
