package cpu

import "sixfiveohtwo/types"

// asl, lsr, rol and ror each handle the Implied (accumulator) form and
// the memory-address form, since the opcode table maps both onto the
// same mnemonic distinguished only by addressing mode.

func (c *CPU) asl(arg Argument) bool {
	if arg.Kind == ArgImplied {
		c.setFlag(types.Carry, c.a.Test(types.Negative))
		c.a = c.a.Shl(1)
		c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
		c.setFlag(types.Negative, c.a.Test(types.Negative))
		return true
	}
	val := c.Read(arg.Addr)
	c.setFlag(types.Carry, val.Test(types.Negative))
	val = val.Shl(1)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	c.Write(arg.Addr, val)
	return true
}

func (c *CPU) lsr(arg Argument) bool {
	if arg.Kind == ArgImplied {
		c.setFlag(types.Carry, c.a.Test(types.Carry))
		c.a = c.a.Shr(1)
		c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
		c.setFlag(types.Negative, c.a.Test(types.Negative))
		return true
	}
	val := c.Read(arg.Addr)
	c.setFlag(types.Carry, val.Test(types.Carry))
	val = val.Shr(1)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	c.Write(arg.Addr, val)
	return true
}

func (c *CPU) rol(arg Argument) bool {
	carry := c.ps.Test(types.Carry).Byte()
	if arg.Kind == ArgImplied {
		c.setFlag(types.Carry, c.a.Test(types.Negative))
		c.a = c.a.Shl(1).Or(carry)
		c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
		c.setFlag(types.Negative, c.a.Test(types.Negative))
		return true
	}
	val := c.Read(arg.Addr)
	c.setFlag(types.Carry, val.Test(types.Negative))
	val = val.Shl(1).Or(carry)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	c.Write(arg.Addr, val)
	return true
}

func (c *CPU) ror(arg Argument) bool {
	carry := c.ps.Test(types.Carry).Byte()
	carryBit := carry.Shl(7)
	if arg.Kind == ArgImplied {
		c.setFlag(types.Carry, c.a.Test(types.Carry))
		c.a = c.a.Shr(1).Or(carryBit)
		c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
		c.setFlag(types.Negative, c.a.Test(types.Negative))
		return true
	}
	val := c.Read(arg.Addr)
	c.setFlag(types.Carry, val.Test(types.Carry))
	val = val.Shr(1).Or(carryBit)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	c.Write(arg.Addr, val)
	return true
}
