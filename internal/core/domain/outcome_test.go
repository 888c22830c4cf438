package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	books := []Book{{ID: 1, Title: "Book One"}}
	o := Success(books)

	assert.Equal(t, OutcomeSuccess, o.Kind)
	assert.True(t, o.IsSuccess())
	assert.Len(t, o.Books, 1)
	assert.Empty(t, o.Message)
}

func TestSuccess_EmptyBooks(t *testing.T) {
	o := Success(nil)

	assert.True(t, o.IsSuccess())
	assert.Empty(t, o.Books)
}

func TestAuthFailure(t *testing.T) {
	o := AuthFailure()

	assert.Equal(t, OutcomeAuthFailure, o.Kind)
	assert.False(t, o.IsSuccess())
}

func TestFailure(t *testing.T) {
	o := Failure("connection refused")

	assert.Equal(t, OutcomeFailure, o.Kind)
	assert.False(t, o.IsSuccess())
	assert.Equal(t, "connection refused", o.Message)
}
