package device

import (
	"bufio"
	"io"
	"os"

	"sixfiveohtwo/types"
)

// Display memory-mapped ports: writing DATA emits the byte as an ASCII
// character; READY always reads ready, since the console never blocks.
const (
	DisplayData  types.Addr = 0x5002
	DisplayReady types.Addr = 0x5003
	displayReady types.Byte = 0x08
)

// Display writes DATA-port bytes out as ASCII to an underlying writer
// (stdout by default).
type Display struct {
	w *bufio.Writer
}

// NewDisplay returns a Display that writes to w. Passing nil defaults to
// os.Stdout.
func NewDisplay(w io.Writer) *Display {
	if w == nil {
		w = os.Stdout
	}
	return &Display{w: bufio.NewWriter(w)}
}

func (d *Display) Range() (types.Addr, types.Addr) { return DisplayData, DisplayReady }

func (d *Display) Tx(addr types.Addr) types.Byte {
	if addr == DisplayReady {
		return displayReady
	}
	return 0
}

func (d *Display) Rx(addr types.Addr, data types.Byte) {
	if addr != DisplayData {
		return
	}
	d.w.WriteByte(byte(data))
	d.w.Flush()
}
