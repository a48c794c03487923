package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagPositions(t *testing.T) {
	assert.Equal(t, Flag(0), Carry)
	assert.Equal(t, Flag(1), Zero)
	assert.Equal(t, Flag(2), InterruptDisable)
	assert.Equal(t, Flag(3), DecimalMode)
	assert.Equal(t, Flag(4), Break)
	assert.Equal(t, Flag(5), Reserved)
	assert.Equal(t, Flag(6), Overflow)
	assert.Equal(t, Flag(7), Negative)
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "C", Carry.String())
	assert.Equal(t, "N", Negative.String())
}
