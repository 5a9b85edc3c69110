package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 5, 10))
	assert.True(t, IsInRange(0, 0, 10))
	assert.True(t, IsInRange(0, 10, 10))
	assert.False(t, IsInRange(0, 11, 10))
	assert.False(t, IsInRange(0.0, -0.1, 10.0))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, IsNonNegative(0))
	assert.True(t, IsNonNegative(3.5))
	assert.False(t, IsNonNegative(-1))
}
