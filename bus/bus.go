// Package bus implements the address-mapped device bus the CPU talks to.
// Devices register the closed address range they own at construction time;
// the bus builds a flat index→device lookup so reads and writes are O(1)
// once registration is complete. Registration never happens again after
// the system is wired up, so the lookup table is built once and never
// mutated.
package bus

import (
	"fmt"
	"log"

	"sixfiveohtwo/types"
)

// Device is anything that can be mapped onto the bus. Tx services a read;
// Rx services a write. Range reports the closed, inclusive address range
// the device owns.
//
// Read-only devices can embed NoWrite to get an Rx that panics on any
// write instead of writing that stub themselves.
type Device interface {
	Tx(addr types.Addr) types.Byte
	Rx(addr types.Addr, data types.Byte)
	Range() (types.Addr, types.Addr)
}

// NoWrite can be embedded by read-only devices (e.g. ROM) to satisfy Rx
// with a loud failure rather than silently accepting writes.
type NoWrite struct{ Name string }

func (n NoWrite) Rx(addr types.Addr, data types.Byte) {
	log.Panicf("%s: write not allowed at %s", n.Name, addr)
}

// ErrOverlappingRange is returned by Register when the requested range
// intersects a device already registered on the bus.
type ErrOverlappingRange struct {
	Start, End types.Addr
}

func (e *ErrOverlappingRange) Error() string {
	return fmt.Sprintf("bus: overlapping range %s..%s", e.Start, e.End)
}

// Bus is the 16-bit wide address-mapped bus. It owns no device state
// itself; it only dispatches.
type Bus struct {
	devices []Device
	indices map[types.Addr]int
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{indices: make(map[types.Addr]int)}
}

// Register maps dev onto the bus at the range it reports via Range. It
// fails with ErrOverlappingRange if any address in that range is already
// claimed by a previously registered device.
func (b *Bus) Register(dev Device) error {
	start, end := dev.Range()
	for addr := range b.indices {
		if addr >= start && addr <= end {
			return &ErrOverlappingRange{Start: start, End: end}
		}
	}

	b.devices = append(b.devices, dev)
	idx := len(b.devices) - 1
	for addr := uint32(start); addr <= uint32(end); addr++ {
		b.indices[types.Addr(addr)] = idx
	}

	log.Printf("bus: registered device at %s..%s", start, end)
	return nil
}

// Read dispatches a read to the device mapped at addr. The 6502 always
// expects something to answer, so an unmapped read is a programming error
// and fails loudly rather than silently returning garbage.
func (b *Bus) Read(addr types.Addr) types.Byte {
	idx, ok := b.indices[addr]
	if !ok {
		log.Panicf("bus: nothing registered at %s", addr)
	}
	return b.devices[idx].Tx(addr)
}

// Write dispatches a write to the device mapped at addr. An unmapped
// write is logged and dropped rather than treated as fatal: stray writes
// to unimplemented I/O regions are common in ROM images under test and
// should not abort the run.
func (b *Bus) Write(addr types.Addr, data types.Byte) {
	idx, ok := b.indices[addr]
	if !ok {
		log.Printf("bus: dropping write to unmapped %s", addr)
		return
	}
	b.devices[idx].Rx(addr, data)
}
