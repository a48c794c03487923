// Package types provides the numeric building blocks of the 6502 model: an
// 8-bit Byte, a 16-bit Addr, a single-bit Bit, and the Flag enum used to
// index into the processor status byte.
//
// Byte and Addr are named integer types rather than bare uint8/uint16 so that
// a Byte can never be passed where an Addr is expected (and vice versa)
// without an explicit conversion. Go already gives named integer types
// wrap-around arithmetic for free (a Byte addition overflows modulo 256 the
// same way a uint8 does), so most operators below are thin, explicitly named
// wrappers rather than reimplementations; their purpose is readability at
// the call site, not correctness.
package types

import "fmt"

// Byte is an unsigned 8-bit value. All arithmetic on it wraps modulo 256.
type Byte uint8

func (b Byte) Add(o Byte) Byte { return b + o }
func (b Byte) Sub(o Byte) Byte { return b - o }
func (b Byte) And(o Byte) Byte { return b & o }
func (b Byte) Or(o Byte) Byte  { return b | o }
func (b Byte) Xor(o Byte) Byte { return b ^ o }
func (b Byte) Not() Byte       { return ^b }
func (b Byte) Shl(n uint) Byte { return b << n }
func (b Byte) Shr(n uint) Byte { return b >> n }

// Bit7 reports whether the sign/negative bit is set.
func (b Byte) Bit7() bool { return b&0x80 != 0 }

// IsZero reports whether b is the zero byte.
func (b Byte) IsZero() bool { return b == 0 }

func (b Byte) String() string { return fmt.Sprintf("0x%02X", uint8(b)) }

// Test reports whether the bit at the given Flag's position is set in b.
// Flag.Reserved always reads as set, per the processor status contract.
func (b Byte) Test(f Flag) Bit {
	if f == Reserved {
		return Bit(true)
	}
	return Bit(b&(1<<uint(f)) != 0)
}

// WithFlag returns b with the bit at f's position set.
func (b Byte) WithFlag(f Flag) Byte {
	return b | (1 << uint(f))
}

// WithoutFlag returns b with the bit at f's position cleared.
func (b Byte) WithoutFlag(f Flag) Byte {
	return b &^ (1 << uint(f))
}

// SetFlag returns b with the bit at f's position set to bit's value.
func (b Byte) SetFlag(f Flag, bit Bit) Byte {
	if bit {
		return b.WithFlag(f)
	}
	return b.WithoutFlag(f)
}
