package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteWraps(t *testing.T) {
	var b Byte = 0xFF
	assert.Equal(t, Byte(0x00), b.Add(1))
	assert.Equal(t, Byte(0xFF), Byte(0x00).Sub(1))
}

func TestByteBit7(t *testing.T) {
	assert.True(t, Byte(0x80).Bit7())
	assert.False(t, Byte(0x7F).Bit7())
}

func TestByteTestFlag(t *testing.T) {
	b := Byte(0).WithFlag(Carry).WithFlag(Negative)
	assert.True(t, bool(b.Test(Carry)))
	assert.True(t, bool(b.Test(Negative)))
	assert.False(t, bool(b.Test(Zero)))
}

func TestByteReservedAlwaysSet(t *testing.T) {
	assert.True(t, bool(Byte(0).Test(Reserved)))
}

func TestByteSetFlag(t *testing.T) {
	b := Byte(0).SetFlag(Carry, Bit(true))
	assert.True(t, bool(b.Test(Carry)))
	b = b.SetFlag(Carry, Bit(false))
	assert.False(t, bool(b.Test(Carry)))
}

func TestByteString(t *testing.T) {
	assert.Equal(t, "0x2A", Byte(0x2A).String())
}
