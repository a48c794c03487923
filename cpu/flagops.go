package cpu

import "sixfiveohtwo/types"

func (c *CPU) clc(arg Argument) bool {
	c.setFlag(types.Carry, types.Bit(false))
	return true
}

func (c *CPU) cld(arg Argument) bool {
	c.setFlag(types.DecimalMode, types.Bit(false))
	return true
}

func (c *CPU) cli(arg Argument) bool {
	c.setFlag(types.InterruptDisable, types.Bit(false))
	return true
}

func (c *CPU) clv(arg Argument) bool {
	c.setFlag(types.Overflow, types.Bit(false))
	return true
}

func (c *CPU) sec(arg Argument) bool {
	c.setFlag(types.Carry, types.Bit(true))
	return true
}

func (c *CPU) sed(arg Argument) bool {
	c.setFlag(types.DecimalMode, types.Bit(true))
	return true
}

func (c *CPU) sei(arg Argument) bool {
	c.setFlag(types.InterruptDisable, types.Bit(true))
	return true
}
