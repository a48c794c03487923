package cpu

import (
	"fmt"

	"sixfiveohtwo/types"
)

// ArgKind tags the payload an addressing mode produced.
type ArgKind int

const (
	ArgImmediate ArgKind = iota
	ArgOffset
	ArgAddress
	ArgImplied
)

// Argument is the value an AddressingMode hands to an instruction's
// semantic handler: an immediate byte, a signed branch offset, a
// resolved memory address, or nothing at all.
type Argument struct {
	Kind ArgKind
	Byte types.Byte
	Addr types.Addr
}

func ImmediateArg(b types.Byte) Argument { return Argument{Kind: ArgImmediate, Byte: b} }
func OffsetArg(b types.Byte) Argument     { return Argument{Kind: ArgOffset, Byte: b} }
func AddressArg(a types.Addr) Argument    { return Argument{Kind: ArgAddress, Addr: a} }
func ImpliedArg() Argument                 { return Argument{Kind: ArgImplied} }

func (a Argument) String() string {
	switch a.Kind {
	case ArgImmediate:
		return fmt.Sprintf("#%s", a.Byte)
	case ArgOffset:
		return fmt.Sprintf("%%%s", a.Byte)
	case ArgAddress:
		return fmt.Sprintf("$%s", a.Addr)
	default:
		return "*"
	}
}
