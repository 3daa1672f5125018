package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("4242424242424242"))
	assert.False(t, IsLuhn("4242424242424241"))
	assert.False(t, IsLuhn("not a number"))
}

func TestIsHHMM(t *testing.T) {
	assert.True(t, IsHHMM("09:00"))
	assert.True(t, IsHHMM("23:59"))
	assert.False(t, IsHHMM("24:00"))
	assert.False(t, IsHHMM("9:00"))
	assert.False(t, IsHHMM("09:60"))
}
