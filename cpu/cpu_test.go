package cpu

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/bus"
	"sixfiveohtwo/clock"
	"sixfiveohtwo/device"
	"sixfiveohtwo/types"
)

// newTestCPU wires a single RAM device spanning the whole address space,
// writes program at its load address, sets the reset vector to point at
// it, and returns a CPU in debug mode (clock-gating bypassed) that has
// already been reset.
func newTestCPU(t *testing.T, program map[types.Addr]byte, resetVector types.Addr) (*CPU, *device.RAM) {
	t.Helper()
	ram := device.NewRAM(0x0000, 0xFFFF)
	b := bus.New()
	assert.NoError(t, b.Register(ram))

	for addr, val := range program {
		ram.Rx(addr, types.Byte(val))
	}
	ram.Rx(0xFFFC, types.Byte(resetVector.Low()))
	ram.Rx(0xFFFD, types.Byte(resetVector.High()))

	c := New(b, clock.New())
	c.SetDebugMode(true)
	c.Reset()
	return c, ram
}

func TestLDAImmediate(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{
		0x0400: 0xA9, 0x0401: 0x42, 0x0402: 0x00,
	}, 0x0400)

	cont := c.Exec()
	assert.True(t, cont)
	assert.Equal(t, types.Byte(0x42), c.GetReg(RegA))
	assert.False(t, c.isSet(types.Zero))
	assert.False(t, c.isSet(types.Negative))
	assert.Equal(t, types.Addr(0x0402), c.GetPC())
}

func TestADCCarryIn(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{
		0x0400: 0x69, 0x0401: 0x34,
	}, 0x0400)
	c.SetReg(RegA, 0x35)

	cont := c.Exec()
	assert.True(t, cont)
	assert.Equal(t, types.Byte(0x69), c.GetReg(RegA))
	assert.False(t, c.isSet(types.Carry))
	assert.False(t, c.isSet(types.Overflow))
	assert.False(t, c.isSet(types.Zero))
	assert.False(t, c.isSet(types.Negative))
}

// TestADCClockedCycleCount runs the same ADC without bypassing the clock,
// driven by a pacer goroutine, and checks the number of bus transactions
// it actually performs: one opcode fetch and one immediate operand
// fetch. ADC Immediate never touches memory again once it has the
// operand byte, so this implementation advances the cycle counter by 2,
// not the 4 the narrative spec scenario illustrates for the source's own
// (different) fetch accounting.
func TestADCClockedCycleCount(t *testing.T) {
	ram := device.NewRAM(0x0000, 0xFFFF)
	b := bus.New()
	assert.NoError(t, b.Register(ram))
	ram.Rx(0x0400, 0x69)
	ram.Rx(0x0401, 0x34)
	ram.Rx(0xFFFC, 0x00)
	ram.Rx(0xFFFD, 0x04)

	clk := clock.New()
	c := New(b, clk)
	c.SetDebugMode(true)
	c.Reset()
	c.SetDebugMode(false)

	done := make(chan bool, 1)
	go func() {
		done <- c.Exec()
	}()

	// ADC Immediate performs exactly two bus transactions (opcode fetch,
	// operand fetch), so the pacer only needs to supply two ticks; a
	// third would never be consumed and would hang this goroutine.
	pacerDone := make(chan struct{})
	go func() {
		defer close(pacerDone)
		for i := 0; i < 2; i++ {
			clk.Tick()
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Exec did not complete in time")
	}
	<-pacerDone

	assert.Equal(t, uint64(2), clk.Ticks())
}

func TestBranchTakenBackwardSelfTraps(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{
		0x0400: 0xD0, 0x0401: 0xFE, // BNE -2
	}, 0x0400)

	cont := c.Exec()
	assert.False(t, cont)
	assert.Equal(t, types.Addr(0x0400), c.GetPC())
}

func TestBranchNotTakenAdvancesByTwo(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{0x0400: 0xD0, 0x0401: 0xFE}, 0x0400)
	c.setFlag(types.Zero, types.Bit(true)) // BNE not taken when Zero is set
	c.Exec()
	assert.Equal(t, types.Addr(0x0402), c.GetPC())
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{
		0x0400: 0x20, 0x0401: 0x10, 0x0402: 0x20, // JSR $2010
		0x2010: 0x60, // RTS
	}, 0x0400)

	assert.True(t, c.Exec())
	assert.Equal(t, types.Addr(0x2010), c.GetPC())

	assert.True(t, c.Exec())
	assert.Equal(t, types.Addr(0x0403), c.GetPC())
}

func TestNMIService(t *testing.T) {
	c, ram := newTestCPU(t, map[types.Addr]byte{
		0x0400: 0xEA, // NOP, never actually reached: NMI is serviced first
		0x3000: 0xEA, // NOP, first instruction of the NMI handler
	}, 0x0400)
	ram.Rx(0xFFFA, 0x00)
	ram.Rx(0xFFFB, 0x30) // NMI vector points at $3000
	spBefore := c.GetReg(RegSP)

	// Exec services the NMI and then, in the same call, runs the
	// handler's first instruction, leaving PC just past that NOP.
	c.PendNMI()
	cont := c.Exec()
	assert.True(t, cont)
	assert.Equal(t, types.Addr(0x3001), c.GetPC())
	assert.True(t, c.isSet(types.InterruptDisable))
	assert.Equal(t, spBefore.Sub(3), c.GetReg(RegSP))
}

func TestDeviceRouting(t *testing.T) {
	var out bytes.Buffer
	ram := device.NewRAM(0x0000, 0x3FFF)
	disp := device.NewDisplay(&out)
	b := bus.New()
	assert.NoError(t, b.Register(ram))
	assert.NoError(t, b.Register(disp))

	b.Write(0x5002, 0x48) // 'H'
	assert.Equal(t, "H", out.String())
	assert.NotEqual(t, types.Byte(0), b.Read(0x5003))
}

func TestStackPushPopLIFO(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{0x0400: 0xEA}, 0x0400)
	spBefore := c.GetReg(RegSP)

	c.pushStack(0x11)
	c.pushStack(0x22)
	c.pushStack(0x33)

	assert.Equal(t, types.Byte(0x33), c.popStack())
	assert.Equal(t, types.Byte(0x22), c.popStack())
	assert.Equal(t, types.Byte(0x11), c.popStack())
	assert.Equal(t, spBefore, c.GetReg(RegSP))
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{0x0400: 0xEA}, 0x0400)
	c.SetReg(RegPS, types.Byte(0).WithFlag(types.Carry).WithFlag(types.Negative))
	before := c.GetReg(RegPS)

	c.php(ImpliedArg())
	c.SetReg(RegPS, 0) // scramble the live byte before restoring it
	c.plp(ImpliedArg())

	assert.Equal(t, before, c.GetReg(RegPS))
	assert.False(t, c.isSet(types.Break))
}

func TestReservedAlwaysReadsSet(t *testing.T) {
	c, _ := newTestCPU(t, map[types.Addr]byte{0x0400: 0xEA}, 0x0400)
	c.SetReg(RegPS, 0)
	assert.True(t, bool(c.GetReg(RegPS).Test(types.Reserved)))
}

func TestRAMRoundTrip(t *testing.T) {
	ram := device.NewRAM(0x0000, 0x00FF)
	ram.Rx(0x0050, 0x77)
	assert.Equal(t, types.Byte(0x77), ram.Tx(0x0050))
}

func TestADCProperty(t *testing.T) {
	for _, tc := range []struct{ a, v, carry types.Byte }{
		{0x00, 0x00, 0}, {0xFF, 0x01, 0}, {0x7F, 0x01, 0}, {0x80, 0xFF, 1}, {0x50, 0x50, 1},
	} {
		c, _ := newTestCPU(t, map[types.Addr]byte{0x0400: 0x69, 0x0401: byte(tc.v)}, 0x0400)
		c.SetReg(RegA, tc.a)
		c.setFlag(types.Carry, types.Bit(tc.carry != 0))

		sum := uint16(tc.a) + uint16(tc.v) + uint16(tc.carry)
		wantResult := types.Byte(sum & 0xff)
		wantCarry := sum > 0xFF
		wantOverflow := bool((tc.a.Xor(tc.v).Not()).And(tc.a.Xor(wantResult)).Test(types.Negative))

		c.Exec()

		assert.Equal(t, wantResult, c.GetReg(RegA))
		assert.Equal(t, wantCarry, c.isSet(types.Carry))
		assert.Equal(t, wantResult.IsZero(), c.isSet(types.Zero))
		assert.Equal(t, wantResult.Bit7(), c.isSet(types.Negative))
		assert.Equal(t, wantOverflow, c.isSet(types.Overflow))
	}
}

func TestValidAddressModeMatchesOpcodeTable(t *testing.T) {
	for _, entry := range opcodeTable {
		assert.True(t, ValidAddressMode(entry.instruction, entry.mode),
			"%s/%s should be valid", entry.instruction, entry.mode)
	}
}
