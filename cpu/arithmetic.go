package cpu

import "sixfiveohtwo/types"

// adc adds A + operand + Carry with full 6502 overflow semantics. The
// 16-bit intermediate sum is needed to detect Carry out of bit 7.
func (c *CPU) adc(arg Argument) bool {
	operand := c.valueOf(arg)
	carry := c.ps.Test(types.Carry).Byte()

	sum := uint16(c.a) + uint16(operand) + uint16(carry)
	result := types.Byte(sum & 0xff)

	overflow := (c.a.Xor(operand).Not()).And(c.a.Xor(result)).Test(types.Negative)

	c.setFlag(types.Carry, types.Bit(sum > 0xff))
	c.setFlag(types.Overflow, overflow)
	c.setFlag(types.Zero, types.Bit(result.IsZero()))
	c.setFlag(types.Negative, result.Test(types.Negative))

	c.a = result
	return true
}

// sbc is ADC with the operand's bits inverted, the standard trick that
// makes the same carry/overflow formula apply to subtraction.
func (c *CPU) sbc(arg Argument) bool {
	operand := c.valueOf(arg).Not()
	carry := c.ps.Test(types.Carry).Byte()

	sum := uint16(c.a) + uint16(operand) + uint16(carry)
	result := types.Byte(sum & 0xff)

	overflow := (c.a.Xor(operand).Not()).And(c.a.Xor(result)).Test(types.Negative)

	c.setFlag(types.Carry, types.Bit(sum > 0xff))
	c.setFlag(types.Overflow, overflow)
	c.setFlag(types.Zero, types.Bit(result.IsZero()))
	c.setFlag(types.Negative, result.Test(types.Negative))

	c.a = result
	return true
}
