package cpu

import "sixfiveohtwo/types"

// valueOf resolves an immediate-or-address argument to the byte it
// names, for the instructions that accept either form.
func (c *CPU) valueOf(arg Argument) types.Byte {
	switch arg.Kind {
	case ArgImmediate:
		return arg.Byte
	case ArgAddress:
		return c.Read(arg.Addr)
	default:
		panic("cpu: illegal addressing mode for value-consuming instruction")
	}
}

func (c *CPU) lda(arg Argument) bool {
	c.a = c.valueOf(arg)
	c.setFlag(types.Negative, c.a.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.a.IsZero()))
	return true
}

func (c *CPU) ldx(arg Argument) bool {
	c.x = c.valueOf(arg)
	c.setFlag(types.Negative, c.x.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.x.IsZero()))
	return true
}

func (c *CPU) ldy(arg Argument) bool {
	c.y = c.valueOf(arg)
	c.setFlag(types.Negative, c.y.Test(types.Negative))
	c.setFlag(types.Zero, types.Bit(c.y.IsZero()))
	return true
}

func (c *CPU) sta(arg Argument) bool {
	c.Write(arg.Addr, c.a)
	return true
}

func (c *CPU) stx(arg Argument) bool {
	c.Write(arg.Addr, c.x)
	return true
}

func (c *CPU) sty(arg Argument) bool {
	c.Write(arg.Addr, c.y)
	return true
}
