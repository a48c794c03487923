package device

import (
	"fmt"

	"sixfiveohtwo/bus"
	"sixfiveohtwo/types"
)

// ROM is a read-only region, optionally preloaded with a binary image at
// construction time. Writes panic: a wired ROM device is never a legal
// write target.
type ROM struct {
	bus.NoWrite
	start, end types.Addr
	data       []types.Byte
}

// NewROM allocates a ROM device covering [start, end]. If image is
// non-nil its bytes are copied in starting at start; any remaining bytes
// read as zero.
func NewROM(start, end types.Addr, image []byte) *ROM {
	size := int(end) - int(start) + 1
	data := make([]types.Byte, size)
	for i, b := range image {
		if i >= size {
			break
		}
		data[i] = types.Byte(b)
	}
	return &ROM{NoWrite: bus.NoWrite{Name: "rom"}, start: start, end: end, data: data}
}

func (r *ROM) Range() (types.Addr, types.Addr) { return r.start, r.end }

func (r *ROM) Tx(addr types.Addr) types.Byte {
	if addr < r.start || addr > r.end {
		panic(fmt.Sprintf("rom: outside memory region %s", addr))
	}
	return r.data[addr-r.start]
}
