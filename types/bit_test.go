package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLogic(t *testing.T) {
	assert.True(t, bool(Bit(true).And(Bit(true))))
	assert.False(t, bool(Bit(true).And(Bit(false))))
	assert.True(t, bool(Bit(false).Or(Bit(true))))
	assert.True(t, bool(Bit(true).Xor(Bit(false))))
	assert.False(t, bool(Bit(true).Not()))
}

func TestBitByte(t *testing.T) {
	assert.Equal(t, Byte(1), Bit(true).Byte())
	assert.Equal(t, Byte(0), Bit(false).Byte())
}
