package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddrFromBytes(t *testing.T) {
	assert.Equal(t, Addr(0x1234), AddrFromBytes(0x12, 0x34))
}

func TestAddrHighLow(t *testing.T) {
	a := Addr(0xBEEF)
	assert.Equal(t, Byte(0xBE), a.High())
	assert.Equal(t, Byte(0xEF), a.Low())
}

func TestAddrWraps(t *testing.T) {
	assert.Equal(t, Addr(0x0000), Addr(0xFFFF).Add(1))
}

func TestAddrAddSigned(t *testing.T) {
	assert.Equal(t, Addr(0x00FE), Addr(0x0100).AddSigned(-2))
	assert.Equal(t, Addr(0x0102), Addr(0x0100).AddSigned(2))
}

func TestAddrSamePage(t *testing.T) {
	assert.True(t, Addr(0x01F0).SamePage(Addr(0x01FF)))
	assert.False(t, Addr(0x01FF).SamePage(Addr(0x0200)))
}

func TestAddrString(t *testing.T) {
	assert.Equal(t, "0x00FF", Addr(0x00FF).String())
}
