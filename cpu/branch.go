package cpu

import "sixfiveohtwo/types"

// branchTo applies offset (the signed 8-bit relative operand) to the PC
// of the branch instruction itself plus 2 (Relative's width), per the
// fetch/decode contract: the PC recorded at instruction start is still
// the branch opcode's own address when a semantic handler runs.
func (c *CPU) branchTo(startPC types.Addr, offset types.Byte) {
	c.pc = startPC.Add(2).AddSigned(int8(offset))
}

func (c *CPU) bcc(arg Argument) bool {
	if !c.isSet(types.Carry) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bcs(arg Argument) bool {
	if c.isSet(types.Carry) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) beq(arg Argument) bool {
	if c.isSet(types.Zero) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bmi(arg Argument) bool {
	if c.isSet(types.Negative) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bne(arg Argument) bool {
	if !c.isSet(types.Zero) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bpl(arg Argument) bool {
	if !c.isSet(types.Negative) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bvc(arg Argument) bool {
	if !c.isSet(types.Overflow) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}

func (c *CPU) bvs(arg Argument) bool {
	if c.isSet(types.Overflow) {
		c.branchTo(c.pc, arg.Byte)
		return false
	}
	return true
}
