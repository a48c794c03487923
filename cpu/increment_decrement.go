package cpu

import "sixfiveohtwo/types"

func (c *CPU) inc(arg Argument) bool {
	val := c.Read(arg.Addr).Add(1)
	c.Write(arg.Addr, val)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	return true
}

func (c *CPU) inx(arg Argument) bool {
	c.x = c.x.Add(1)
	c.setFlag(types.Zero, types.Bit(c.x.IsZero()))
	c.setFlag(types.Negative, c.x.Test(types.Negative))
	return true
}

func (c *CPU) iny(arg Argument) bool {
	c.y = c.y.Add(1)
	c.setFlag(types.Zero, types.Bit(c.y.IsZero()))
	c.setFlag(types.Negative, c.y.Test(types.Negative))
	return true
}

func (c *CPU) dec(arg Argument) bool {
	val := c.Read(arg.Addr).Sub(1)
	c.Write(arg.Addr, val)
	c.setFlag(types.Zero, types.Bit(val.IsZero()))
	c.setFlag(types.Negative, val.Test(types.Negative))
	return true
}

func (c *CPU) dex(arg Argument) bool {
	c.x = c.x.Sub(1)
	c.setFlag(types.Zero, types.Bit(c.x.IsZero()))
	c.setFlag(types.Negative, c.x.Test(types.Negative))
	return true
}

func (c *CPU) dey(arg Argument) bool {
	c.y = c.y.Sub(1)
	c.setFlag(types.Zero, types.Bit(c.y.IsZero()))
	c.setFlag(types.Negative, c.y.Test(types.Negative))
	return true
}
