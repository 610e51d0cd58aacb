package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"john@example.com", "a@b.co", "user.name+tag@sub.domain.io"}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "plain", "no@dot", "two@@example.com", "has space@example.com", "@example.com"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestOneOf(t *testing.T) {
	assert.True(t, OneOf("deposit", "deposit", "withdrawal", "trade"))
	assert.False(t, OneOf("Deposit", "deposit", "withdrawal", "trade"))
	assert.False(t, OneOf("", "deposit", "withdrawal"))
}

func TestErrorfUnwrapsWithAs(t *testing.T) {
	err := func() error { return Errorf("Name must be at least %d characters", 2) }()

	var ve *Error
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Name must be at least 2 characters", ve.Detail)
	assert.Equal(t, "Name must be at least 2 characters", err.Error())
}
