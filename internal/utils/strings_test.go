package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("010-1234-5678"))
	assert.True(t, IsValidPhoneNumber("+821012345678"))
	assert.False(t, IsValidPhoneNumber("not-a-phone"))
	assert.False(t, IsValidPhoneNumber("123"))
	assert.False(t, IsValidPhoneNumber("010-1234-5678-9012-3456"))
}
