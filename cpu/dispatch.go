package cpu

import "log"

// execute runs instruction's semantic handler over arg and returns
// whether the normal per-addressing-mode PC advance should follow.
// Control-flow instructions (and Jam) return false having already set PC
// themselves, or left it alone.
func (c *CPU) execute(instruction Instruction, mode AddressingMode, arg Argument) bool {
	switch instruction {
	case LDA:
		return c.lda(arg)
	case LDX:
		return c.ldx(arg)
	case LDY:
		return c.ldy(arg)
	case STA:
		return c.sta(arg)
	case STX:
		return c.stx(arg)
	case STY:
		return c.sty(arg)

	case TAX:
		return c.tax(arg)
	case TAY:
		return c.tay(arg)
	case TXA:
		return c.txa(arg)
	case TYA:
		return c.tya(arg)
	case TSX:
		return c.tsx(arg)
	case TXS:
		return c.txs(arg)
	case PHA:
		return c.pha(arg)
	case PHP:
		return c.php(arg)
	case PLA:
		return c.pla(arg)
	case PLP:
		return c.plp(arg)

	case AND:
		return c.and(arg)
	case EOR:
		return c.eor(arg)
	case ORA:
		return c.ora(arg)
	case BIT:
		return c.bit(arg)
	case CMP:
		return c.cmp(arg)
	case CPX:
		return c.cpx(arg)
	case CPY:
		return c.cpy(arg)

	case ADC:
		return c.adc(arg)
	case SBC:
		return c.sbc(arg)

	case INC:
		return c.inc(arg)
	case INX:
		return c.inx(arg)
	case INY:
		return c.iny(arg)
	case DEC:
		return c.dec(arg)
	case DEX:
		return c.dex(arg)
	case DEY:
		return c.dey(arg)

	case ASL:
		return c.asl(arg)
	case LSR:
		return c.lsr(arg)
	case ROL:
		return c.rol(arg)
	case ROR:
		return c.ror(arg)

	case JMP:
		return c.jmp(arg)
	case JSR:
		return c.jsr(arg)
	case RTS:
		return c.rts(arg)
	case BRK:
		return c.brk(arg)
	case RTI:
		return c.rti(arg)

	case BCC:
		return c.bcc(arg)
	case BCS:
		return c.bcs(arg)
	case BEQ:
		return c.beq(arg)
	case BMI:
		return c.bmi(arg)
	case BNE:
		return c.bne(arg)
	case BPL:
		return c.bpl(arg)
	case BVC:
		return c.bvc(arg)
	case BVS:
		return c.bvs(arg)

	case CLC:
		return c.clc(arg)
	case CLD:
		return c.cld(arg)
	case CLI:
		return c.cli(arg)
	case CLV:
		return c.clv(arg)
	case SEC:
		return c.sec(arg)
	case SED:
		return c.sed(arg)
	case SEI:
		return c.sei(arg)

	case NOP:
		return true

	case Jam:
		log.Printf("JAM\n%s", c)
		c.trapped = true
		return false

	default:
		log.Panicf("cpu: unhandled instruction %s", instruction)
		return false
	}
}
