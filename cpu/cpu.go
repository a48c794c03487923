// Package cpu implements the MOS 6502 microprocessor: the register file,
// fetch/decode/execute loop, interrupt sequencing, and the instruction
// set decoded from a 151-entry opcode table.
package cpu

import (
	"fmt"
	"log"

	"sixfiveohtwo/bus"
	"sixfiveohtwo/clock"
	"sixfiveohtwo/types"
)

// Stack lives in page 1; SP is the low byte of the effective address.
const (
	stackStart types.Addr = 0x0100
	stackEnd   types.Addr = 0x01FF
)

const (
	resetVectorLow  types.Addr = 0xFFFC
	resetVectorHigh types.Addr = 0xFFFD
	nmiVectorLow    types.Addr = 0xFFFA
	nmiVectorHigh   types.Addr = 0xFFFB
	irqVectorLow    types.Addr = 0xFFFE
	irqVectorHigh   types.Addr = 0xFFFF
)

// Register names a CPU register addressable by the debug/control hooks.
type Register int

const (
	RegA Register = iota
	RegX
	RegY
	RegPS
	RegPC
	RegSP
)

// CPU holds the 6502's register file and drives the bus through a Clock.
type CPU struct {
	pc types.Addr
	sp types.Byte
	a  types.Byte
	x  types.Byte
	y  types.Byte
	ps types.Byte

	bus   *bus.Bus
	clock *clock.Clock

	hasReset bool
	trapped  bool

	irqPending bool
	nmiPending bool

	debugMode          bool
	breakpoints        map[types.Addr]bool
	resumingBreakpoint bool
}

// New constructs a CPU over bus, paced by clk. PC starts at the reset
// vector sentinel; Reset must be called before Exec will run.
func New(b *bus.Bus, clk *clock.Clock) *CPU {
	return &CPU{
		pc:          resetVectorLow,
		sp:          0xFD,
		bus:         b,
		clock:       clk,
		breakpoints: make(map[types.Addr]bool),
	}
}

// SetDebugMode toggles clock-gating bypass and register-write guarding.
func (c *CPU) SetDebugMode(on bool) { c.debugMode = on }

// Read performs a clock-gated bus read.
func (c *CPU) Read(addr types.Addr) types.Byte {
	return c.clockedRead(addr)
}

// Write performs a clock-gated bus write. Ordinary stores and read-modify-
// write instructions may legally target page 1, the same as any other
// address; only the stack push path is required to stay within it.
func (c *CPU) Write(addr types.Addr, data types.Byte) {
	c.clockedWrite(addr, data)
}

func (c *CPU) clockedRead(addr types.Addr) types.Byte {
	if !c.debugMode {
		c.clock.WaitTick()
	}
	b := c.bus.Read(addr)
	if !c.debugMode {
		c.clock.Tock()
	}
	return b
}

func (c *CPU) clockedWrite(addr types.Addr, data types.Byte) {
	if !c.debugMode {
		c.clock.WaitTick()
	}
	c.bus.Write(addr, data)
	if !c.debugMode {
		c.clock.Tock()
	}
}

// pushStack writes data to the stack page at the current SP, then
// decrements SP, wrapping 0x00 to 0xFF.
func (c *CPU) pushStack(data types.Byte) {
	c.clockedWrite(stackStart.AddByte(c.sp), data)
	if c.sp == 0 {
		c.sp = stackEnd.Low()
	} else {
		c.sp = c.sp.Sub(1)
	}
}

// popStack increments SP, wrapping 0xFF to 0x00, then reads the stack
// page at the new SP.
func (c *CPU) popStack() types.Byte {
	if c.sp == stackEnd.Low() {
		c.sp = 0
	} else {
		c.sp = c.sp.Add(1)
	}
	return c.clockedRead(stackStart.AddByte(c.sp))
}

// isSet reports whether flag is set in the live processor status byte.
func (c *CPU) isSet(flag types.Flag) bool { return bool(c.ps.Test(flag)) }

// setFlag sets or clears flag on the live processor status byte. Break
// is never settable on the live byte; it only ever appears in the copy
// pushed by PHP/BRK.
func (c *CPU) setFlag(flag types.Flag, bit types.Bit) {
	if flag == types.Break {
		log.Panic("cpu: cannot set Break on the live processor status")
	}
	c.ps = c.ps.SetFlag(flag, bit)
}

// Reset emulates a hard reset: clears X, Y, A, PS; sets SP to 0xFD; sets
// InterruptDisable; loads PC from the reset vector at 0xFFFC/D.
func (c *CPU) Reset() {
	c.x = 0
	c.y = 0
	c.a = 0
	c.ps = 0
	c.sp = 0xFD

	c.setFlag(types.InterruptDisable, types.Bit(true))

	low := c.Read(resetVectorLow)
	high := c.Read(resetVectorHigh)
	c.pc = types.AddrFromBytes(high, low)

	c.hasReset = true
	c.trapped = false
}

// PendIRQ marks a maskable interrupt as pending. It is serviced at the
// top of the next Exec if InterruptDisable is clear.
func (c *CPU) PendIRQ() { c.irqPending = true }

// PendNMI marks a non-maskable interrupt as pending. NMI is
// edge-triggered and serviced unconditionally.
func (c *CPU) PendNMI() { c.nmiPending = true }

func (c *CPU) serviceInterrupt(vectorLow, vectorHigh types.Addr) {
	c.pushStack(c.pc.High())
	c.pushStack(c.pc.Low())
	c.pushStack(c.ps)
	c.setFlag(types.InterruptDisable, types.Bit(true))
	low := c.Read(vectorLow)
	high := c.Read(vectorHigh)
	c.pc = types.AddrFromBytes(high, low)
}

func (c *CPU) serviceNMI() {
	c.nmiPending = false
	c.serviceInterrupt(nmiVectorLow, nmiVectorHigh)
}

func (c *CPU) serviceIRQ() {
	c.irqPending = false
	c.serviceInterrupt(irqVectorLow, irqVectorHigh)
}

// Exec executes a single instruction, first servicing any pending
// interrupt. It returns false once the CPU has latched a trap or
// executed a jam opcode; Reset must have run at least once.
func (c *CPU) Exec() bool {
	if !c.hasReset {
		log.Panic("cpu: exec called before reset")
	}
	if c.trapped {
		return false
	}

	if c.nmiPending {
		c.serviceNMI()
	}
	if c.irqPending && !c.isSet(types.InterruptDisable) {
		c.serviceIRQ()
	}

	prevPC := c.pc

	opcode := c.Read(c.pc)
	instruction, mode := Decode(byte(opcode))
	arg := mode.Get(c)

	advance := c.execute(instruction, mode, arg)
	if advance {
		c.pc = c.pc.Add(mode.Width())
	}

	if c.pc == prevPC {
		log.Printf("TRAP: %s\n%s", prevPC, c)
		c.trapped = true
		return false
	}

	return true
}

// DebugExec is Exec's single-step entry point for the debugger. If PC
// sits on a breakpoint and the caller is not resuming past one already
// hit, it returns immediately without executing (breakpoint hit).
func (c *CPU) DebugExec() (hitBreakpoint bool, cont bool) {
	if c.breakpoints[c.pc] && !c.resumingBreakpoint {
		return true, true
	}
	c.resumingBreakpoint = false
	return false, c.Exec()
}

// Breakpoint adds addr to the breakpoint set.
func (c *CPU) Breakpoint(addr types.Addr) {
	c.breakpoints[addr] = true
}

// ResumeBreakpoint marks the next DebugExec call as resuming past the
// breakpoint at the current PC rather than re-triggering it.
func (c *CPU) ResumeBreakpoint() { c.resumingBreakpoint = true }

// GetPC reads the program counter.
func (c *CPU) GetPC() types.Addr { return c.pc }

// SetPC overrides the program counter. Restricted to debug mode.
func (c *CPU) SetPC(addr types.Addr) {
	c.requireDebugMode()
	c.pc = addr
}

// GetReg reads an 8-bit register. PS reads always OR in Reserved.
func (c *CPU) GetReg(r Register) types.Byte {
	switch r {
	case RegA:
		return c.a
	case RegX:
		return c.x
	case RegY:
		return c.y
	case RegSP:
		return c.sp
	case RegPS:
		return c.ps.WithFlag(types.Reserved)
	default:
		log.Panicf("cpu: GetReg called with non-byte register %d", r)
		return 0
	}
}

// SetReg writes an 8-bit register without side effects. Restricted to
// debug mode.
func (c *CPU) SetReg(r Register, v types.Byte) {
	c.requireDebugMode()
	switch r {
	case RegA:
		c.a = v
	case RegX:
		c.x = v
	case RegY:
		c.y = v
	case RegSP:
		c.sp = v
	case RegPS:
		c.ps = v
	default:
		log.Panicf("cpu: SetReg called with non-byte register %d", r)
	}
}

func (c *CPU) requireDebugMode() {
	if !c.debugMode {
		log.Panic("cpu: register write attempted outside debug mode")
	}
}

// String renders a diagnostic register/flag dump, used by trap/jam
// halts and the debugger's regs command.
func (c *CPU) String() string {
	return fmt.Sprintf(
		"PC: %s  SP: %s\nA: %s  X: %s  Y: %s\nC:%d Z:%d I:%d D:%d B:%d V:%d N:%d",
		c.pc, c.sp, c.a, c.x, c.y,
		b2i(c.isSet(types.Carry)), b2i(c.isSet(types.Zero)), b2i(c.isSet(types.InterruptDisable)),
		b2i(c.isSet(types.DecimalMode)), b2i(c.isSet(types.Break)), b2i(c.isSet(types.Overflow)),
		b2i(c.isSet(types.Negative)),
	)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
