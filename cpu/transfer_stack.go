package cpu

import "sixfiveohtwo/types"

func (c *CPU) tax(arg Argument) bool {
	c.x = c.a
	c.setFlag(types.Negative, c.x.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.x.IsZero()))
	return true
}

func (c *CPU) tay(arg Argument) bool {
	c.y = c.a
	c.setFlag(types.Negative, c.y.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.y.IsZero()))
	return true
}

func (c *CPU) txa(arg Argument) bool {
	c.a = c.x
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

func (c *CPU) tya(arg Argument) bool {
	c.a = c.y
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

// tsx does set Negative/Zero from X, unlike txs.
func (c *CPU) tsx(arg Argument) bool {
	c.x = c.sp
	c.setFlag(types.Negative, c.x.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.x.IsZero()))
	return true
}

// txs does not touch flags: the stack pointer is not a result register.
func (c *CPU) txs(arg Argument) bool {
	c.sp = c.x
	return true
}

func (c *CPU) pha(arg Argument) bool {
	c.pushStack(c.a)
	return true
}

// php pushes PS with Break forced set; the live PS byte never carries
// Break.
func (c *CPU) php(arg Argument) bool {
	c.pushStack(c.GetReg(RegPS).WithFlag(types.Break))
	return true
}

func (c *CPU) pla(arg Argument) bool {
	c.a = c.popStack()
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

// plp loads PS but clears Break on the live byte.
func (c *CPU) plp(arg Argument) bool {
	c.ps = c.popStack().WithoutFlag(types.Break)
	return true
}
