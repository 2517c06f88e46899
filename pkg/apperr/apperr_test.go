package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperr.Validation("x").Status)
	assert.Equal(t, http.StatusUnauthorized, apperr.Authentication("x").Status)
	assert.Equal(t, http.StatusForbidden, apperr.Authorization("x").Status)
	assert.Equal(t, http.StatusNotFound, apperr.NotFound("x").Status)
	assert.Equal(t, http.StatusBadRequest, apperr.Conflict("x").Status)
}

func TestIsMatchesOnKind(t *testing.T) {
	err := apperr.NotFound("Order not found")
	assert.True(t, errors.Is(err, apperr.NotFound("")))
	assert.False(t, errors.Is(err, apperr.Conflict("")))
}

func TestWrapKeepsClientMessage(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := apperr.NotFound("Product not found").Wrap(cause)

	assert.Equal(t, "Product not found", apperr.From(err).Message)
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestFromOnForeignError(t *testing.T) {
	assert.Nil(t, apperr.From(fmt.Errorf("boom")))

	wrapped := fmt.Errorf("outer: %w", apperr.Conflict("Product already reviewed"))
	e := apperr.From(wrapped)
	if assert.NotNil(t, e) {
		assert.Equal(t, apperr.KindConflict, e.Kind)
	}
}
