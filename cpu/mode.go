package cpu

import "sixfiveohtwo/types"

// AddressingMode names the 12 ways an instruction's operand can be
// computed from the bytes following its opcode. Accumulator-form shift
// and rotate instructions (ASL/LSR/ROL/ROR with no operand) reuse
// Implied; their semantic handlers distinguish the accumulator case from
// the memory-address case by inspecting the Argument's Kind.
type AddressingMode int

const (
	Immediate AddressingMode = iota
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
	Implied
)

func (m AddressingMode) String() string {
	switch m {
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case Relative:
		return "Relative"
	case Implied:
		return "Implied"
	default:
		return "?"
	}
}

// Width reports how many bytes (opcode included) an instruction using
// this mode occupies, i.e. how far PC advances on a normal (non
// control-flow) completion.
func (m AddressingMode) Width() types.Addr {
	switch m {
	case Implied:
		return 1
	case Absolute, AbsoluteX, AbsoluteY:
		return 3
	default:
		return 2
	}
}

// Get fetches this mode's Argument from cpu, reading at PC+1 and PC+2 as
// needed. It never mutates PC; the caller advances PC afterward according
// to Width, or not at all for control-flow instructions.
func (m AddressingMode) Get(c *CPU) Argument {
	pc := c.pc
	switch m {
	case Immediate:
		return ImmediateArg(c.Read(pc.Add(1)))
	case ZeroPage:
		return AddressArg(types.Addr(c.Read(pc.Add(1))))
	case ZeroPageX:
		return AddressArg(types.Addr(c.Read(pc.Add(1)).Add(c.x)))
	case ZeroPageY:
		return AddressArg(types.Addr(c.Read(pc.Add(1)).Add(c.y)))
	case Absolute:
		low := c.Read(pc.Add(1))
		high := c.Read(pc.Add(2))
		return AddressArg(types.AddrFromBytes(high, low))
	case AbsoluteX:
		low := c.Read(pc.Add(1))
		high := c.Read(pc.Add(2))
		return AddressArg(types.AddrFromBytes(high, low).AddByte(c.x))
	case AbsoluteY:
		low := c.Read(pc.Add(1))
		high := c.Read(pc.Add(2))
		return AddressArg(types.AddrFromBytes(high, low).AddByte(c.y))
	case Indirect:
		low := c.Read(pc.Add(1))
		high := c.Read(pc.Add(2))
		ptr := types.AddrFromBytes(high, low)
		resolvedLow := c.Read(ptr)
		resolvedHigh := c.Read(ptr.Add(1))
		return AddressArg(types.AddrFromBytes(resolvedHigh, resolvedLow))
	case IndirectX:
		ptr := types.Addr(c.Read(pc.Add(1)).Add(c.x))
		low := c.Read(ptr)
		high := c.Read(types.Addr(byte(ptr) + 1))
		return AddressArg(types.AddrFromBytes(high, low))
	case IndirectY:
		ptr := types.Addr(c.Read(pc.Add(1)))
		low := c.Read(ptr)
		high := c.Read(types.Addr(byte(ptr) + 1))
		return AddressArg(types.AddrFromBytes(high, low).AddByte(c.y))
	case Relative:
		return OffsetArg(c.Read(pc.Add(1)))
	case Implied:
		return ImpliedArg()
	default:
		return ImpliedArg()
	}
}
