package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sixfiveohtwo/types"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(0x0000, 0x3FFF)
	r.Rx(0x0100, 0x42)
	assert.Equal(t, types.Byte(0x42), r.Tx(0x0100))
}

func TestRAMZeroedOnCreate(t *testing.T) {
	r := NewRAM(0x0000, 0x00FF)
	assert.Equal(t, types.Byte(0), r.Tx(0x0050))
}

func TestRAMOutOfRangePanics(t *testing.T) {
	r := NewRAM(0x0000, 0x00FF)
	assert.Panics(t, func() { r.Tx(0x0100) })
	assert.Panics(t, func() { r.Rx(0x0100, 1) })
}

func TestRAMRange(t *testing.T) {
	r := NewRAM(0x1000, 0x1FFF)
	start, end := r.Range()
	assert.Equal(t, types.Addr(0x1000), start)
	assert.Equal(t, types.Addr(0x1FFF), end)
}
