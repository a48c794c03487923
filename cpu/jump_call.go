package cpu

import "sixfiveohtwo/types"

func (c *CPU) jmp(arg Argument) bool {
	c.pc = arg.Addr
	return false
}

// jsr pushes the address of JSR's last operand byte (PC_of_JSR + 2),
// high byte first, then jumps. rts reverses this: pop low, pop high,
// add one to land back on the instruction after JSR.
func (c *CPU) jsr(arg Argument) bool {
	returnAddr := c.pc.Add(2)
	c.pushStack(returnAddr.High())
	c.pushStack(returnAddr.Low())
	c.pc = arg.Addr
	return false
}

func (c *CPU) rts(arg Argument) bool {
	low := c.popStack()
	high := c.popStack()
	c.pc = types.AddrFromBytes(high, low).Add(1)
	return false
}

// brk pushes PC+2 (the address past BRK's padding byte), high then low,
// then PS with Break and Reserved forced set, then loads PC from the
// IRQ/BRK vector.
func (c *CPU) brk(arg Argument) bool {
	returnAddr := c.pc.Add(2)
	c.pushStack(returnAddr.High())
	c.pushStack(returnAddr.Low())
	c.pushStack(c.GetReg(RegPS).WithFlag(types.Break).WithFlag(types.Reserved))

	low := c.Read(irqVectorLow)
	high := c.Read(irqVectorHigh)
	c.pc = types.AddrFromBytes(high, low)
	c.setFlag(types.InterruptDisable, types.Bit(true))
	return false
}

// rti pops PS (clearing Break on the live byte) then PC low and high.
func (c *CPU) rti(arg Argument) bool {
	c.ps = c.popStack().WithoutFlag(types.Break)
	low := c.popStack()
	high := c.popStack()
	c.pc = types.AddrFromBytes(high, low)
	return false
}
