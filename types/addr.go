package types

import "fmt"

// Addr is an unsigned 16-bit address. All arithmetic on it wraps modulo
// 65536.
type Addr uint16

// AddrFromBytes combines a high and low byte into a little-endian Addr:
// (high<<8)|low.
func AddrFromBytes(high, low Byte) Addr {
	return Addr(high)<<8 | Addr(low)
}

func (a Addr) High() Byte { return Byte(a >> 8) }
func (a Addr) Low() Byte  { return Byte(a & 0x00ff) }

func (a Addr) Add(o Addr) Addr { return a + o }
func (a Addr) Sub(o Addr) Addr { return a - o }

// AddByte adds a Byte to an Addr without widening the Byte's own wrap
// semantics (indexed addressing modes add a register byte to a 16-bit base).
func (a Addr) AddByte(b Byte) Addr { return a + Addr(b) }

// AddSigned adds a signed 8-bit relative offset (as used by Relative
// addressing / branch instructions) to a.
func (a Addr) AddSigned(offset int8) Addr { return Addr(int32(a) + int32(offset)) }

// SamePage reports whether a and o fall within the same 256-byte page.
func (a Addr) SamePage(o Addr) bool { return a&0xff00 == o&0xff00 }

func (a Addr) String() string { return fmt.Sprintf("0x%04X", uint16(a)) }
