package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sixfiveohtwo/types"
)

func TestROMReadsPreloadedImage(t *testing.T) {
	r := NewROM(0x7F00, 0xFFFF, []byte{0xA9, 0x01, 0x00})
	assert.Equal(t, types.Byte(0xA9), r.Tx(0x7F00))
	assert.Equal(t, types.Byte(0x01), r.Tx(0x7F01))
}

func TestROMUnfilledBytesAreZero(t *testing.T) {
	r := NewROM(0x7F00, 0xFFFF, []byte{0xA9})
	assert.Equal(t, types.Byte(0), r.Tx(0x7F01))
}

func TestROMWritePanics(t *testing.T) {
	r := NewROM(0x7F00, 0xFFFF, nil)
	assert.Panics(t, func() { r.Rx(0x7F00, 0x01) })
}

func TestROMOutOfRangePanics(t *testing.T) {
	r := NewROM(0x7F00, 0xFFFF, nil)
	assert.Panics(t, func() { r.Tx(0x0000) })
}
