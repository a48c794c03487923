package cpu

import "sixfiveohtwo/types"

func (c *CPU) and(arg Argument) bool {
	c.a = c.a.And(c.valueOf(arg))
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

func (c *CPU) eor(arg Argument) bool {
	c.a = c.a.Xor(c.valueOf(arg))
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

func (c *CPU) ora(arg Argument) bool {
	c.a = c.a.Or(c.valueOf(arg))
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

func (c *CPU) bit(arg Argument) bool {
	val := c.Read(arg.Addr)
	c.setFlag(types.Zero, types.Bit(val.And(c.a).IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	c.setFlag(types.Overflow, val.Test(types.Overflow))
	return true
}

// compare implements the canonical CMP/CPX/CPY semantics: Carry = reg >=
// value, Zero = reg == value, Negative = bit 7 of (reg - value). This is
// the canonical 6502 behavior, not the simpler "Negative = reg < value"
// some historical implementations substitute.
func (c *CPU) compare(reg, value types.Byte) {
	result := reg.Sub(value)
	c.setFlag(types.Carry, types.Bit(reg >= value))
	c.setFlag(types.Zero, types.Bit(reg == value))
	c.setFlag(types.Negative, result.Test(types.Negative))
}

func (c *CPU) cmp(arg Argument) bool {
	c.compare(c.a, c.valueOf(arg))
	return true
}

func (c *CPU) cpx(arg Argument) bool {
	c.compare(c.x, c.valueOf(arg))
	return true
}

func (c *CPU) cpy(arg Argument) bool {
	c.compare(c.y, c.valueOf(arg))
	return true
}
