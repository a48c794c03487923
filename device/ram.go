// Package device implements the concrete devices wired onto the bus: RAM,
// ROM, and the memory-mapped Keyboard and Display ports.
package device

import (
	"fmt"

	"sixfiveohtwo/types"
)

// RAM is a flat, fully read/write region of memory spanning [start, end].
type RAM struct {
	start, end types.Addr
	data       []types.Byte
}

// NewRAM allocates a RAM device covering the closed range [start, end].
func NewRAM(start, end types.Addr) *RAM {
	size := int(end) - int(start) + 1
	return &RAM{start: start, end: end, data: make([]types.Byte, size)}
}

func (r *RAM) Range() (types.Addr, types.Addr) { return r.start, r.end }

func (r *RAM) Tx(addr types.Addr) types.Byte {
	r.checkRange(addr)
	return r.data[addr-r.start]
}

func (r *RAM) Rx(addr types.Addr, data types.Byte) {
	r.checkRange(addr)
	r.data[addr-r.start] = data
}

func (r *RAM) checkRange(addr types.Addr) {
	if addr < r.start || addr > r.end {
		panic(fmt.Sprintf("ram: outside memory region %s", addr))
	}
}
