// Package debugger implements an interactive REPL for the CPU: a
// line-oriented command grammar (help, break, run, step, set/get mem,
// set/get reg, regs) driven through a bubbletea event loop.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixfiveohtwo/cpu"
	"sixfiveohtwo/mask"
	"sixfiveohtwo/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// model is the bubbletea Model driving the REPL. Each keypress only
// edits an input line; Enter parses and runs one command from the
// grammar against the CPU.
type model struct {
	c *cpu.CPU

	input       string
	lastCommand string
	output      []string
	quit        bool
}

// New returns a bubbletea program wired to c.
func New(c *cpu.CPU) *tea.Program {
	c.SetDebugMode(true)
	return tea.NewProgram(model{c: c, output: []string{"type 'help' for the command list"}})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		// EOF (Ctrl-D on a terminal) exits, per the command grammar.
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter:
		line := m.input
		if strings.TrimSpace(line) == "" {
			line = m.lastCommand // an empty line repeats the previous command
		}
		m.input = ""
		m.lastCommand = line
		out, quit := m.exec(line)
		m.output = append(m.output, promptStyle.Render("> "+line))
		if out != "" {
			m.output = append(m.output, out)
		}
		if quit {
			m.quit = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	default:
		m.input += keyMsg.String()
		return m, nil
	}
}

func (m model) View() string {
	tail := m.output
	if len(tail) > 20 {
		tail = tail[len(tail)-20:]
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("sixfive debugger"),
		m.c.String(),
		flagStrip(m.c.GetReg(cpu.RegPS)),
		strings.Join(tail, "\n"),
		promptStyle.Render("> ")+m.input,
	)
}

// flagStrip renders the processor status byte as the conventional 6502
// "N V - B D I Z C" line, bit 7 (Negative) through bit 0 (Carry). mask's
// 1-indexed-from-MSB IsSet lines up with that order directly; its index
// type is unexported, so each position is named at its call site rather
// than collected into a slice.
func flagStrip(ps types.Byte) string {
	b := byte(ps)
	bits := []bool{
		mask.IsSet(b, mask.I1), mask.IsSet(b, mask.I2), mask.IsSet(b, mask.I3), mask.IsSet(b, mask.I4),
		mask.IsSet(b, mask.I5), mask.IsSet(b, mask.I6), mask.IsSet(b, mask.I7), mask.IsSet(b, mask.I8),
	}

	var header, values strings.Builder
	for i, name := range "NV-BDIZC" {
		header.WriteRune(name)
		header.WriteByte(' ')
		if bits[i] {
			values.WriteString("1 ")
		} else {
			values.WriteString("0 ")
		}
	}
	return header.String() + "\n" + values.String()
}

// exec parses and runs a single command from the grammar, returning
// the text to display and whether the REPL should exit.
func (m *model) exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "help":
		return helpText, false

	case "break", "b":
		if len(fields) != 2 {
			return errorStyle.Render("usage: break <addr>"), false
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		m.c.Breakpoint(addr)
		return fmt.Sprintf("breakpoint set at %s", addr), false

	case "run", "r":
		for {
			hit, cont := m.c.DebugExec()
			if hit {
				return "breakpoint hit", false
			}
			if !cont {
				return "halted (trap or jam)", false
			}
		}

	case "step", "s":
		m.c.ResumeBreakpoint()
		hit, cont := m.c.DebugExec()
		if hit {
			return "breakpoint hit", false
		}
		if !cont {
			return "halted (trap or jam)", false
		}
		return spew.Sdump(m.c.GetPC()), false

	case "set":
		return m.execSet(fields[1:])

	case "get":
		return m.execGet(fields[1:])

	case "regs":
		return m.c.String(), false

	case "quit", "exit":
		return "", true

	default:
		return errorStyle.Render("unrecognized command: " + fields[0]), false
	}
}

func (m *model) execSet(fields []string) (string, bool) {
	if len(fields) < 1 {
		return errorStyle.Render("usage: set mem|reg ..."), false
	}
	switch fields[0] {
	case "mem":
		if len(fields) != 3 {
			return errorStyle.Render("usage: set mem <addr> <byte>"), false
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		val, err := parseByte(fields[2])
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		m.c.Write(addr, val)
		return fmt.Sprintf("wrote %s to %s", val, addr), false

	case "reg":
		if len(fields) != 3 {
			return errorStyle.Render("usage: set reg <A|X|Y|PS|PC|SP> <value>"), false
		}
		return m.setReg(fields[1], fields[2])

	default:
		return errorStyle.Render("usage: set mem|reg ..."), false
	}
}

func (m *model) execGet(fields []string) (string, bool) {
	if len(fields) < 1 {
		return errorStyle.Render("usage: get mem|reg ..."), false
	}
	switch fields[0] {
	case "mem":
		if len(fields) != 2 {
			return errorStyle.Render("usage: get mem <addr>"), false
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		return m.c.Read(addr).String(), false

	case "reg":
		if len(fields) != 2 {
			return errorStyle.Render("usage: get reg <A|X|Y|PS|PC|SP>"), false
		}
		return m.getReg(fields[1])

	default:
		return errorStyle.Render("usage: get mem|reg ..."), false
	}
}

func (m *model) setReg(name, value string) (string, bool) {
	if name == "PC" {
		addr, err := parseAddr(value)
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		m.c.SetPC(addr)
		return fmt.Sprintf("PC = %s", addr), false
	}

	reg, ok := byteRegister(name)
	if !ok {
		return errorStyle.Render("unknown register: " + name), false
	}
	val, err := parseByte(value)
	if err != nil {
		return errorStyle.Render(err.Error()), false
	}
	m.c.SetReg(reg, val)
	return fmt.Sprintf("%s = %s", name, val), false
}

func (m *model) getReg(name string) (string, bool) {
	if name == "PC" {
		return m.c.GetPC().String(), false
	}
	reg, ok := byteRegister(name)
	if !ok {
		return errorStyle.Render("unknown register: " + name), false
	}
	return m.c.GetReg(reg).String(), false
}

func byteRegister(name string) (cpu.Register, bool) {
	switch name {
	case "A":
		return cpu.RegA, true
	case "X":
		return cpu.RegX, true
	case "Y":
		return cpu.RegY, true
	case "PS":
		return cpu.RegPS, true
	case "SP":
		return cpu.RegSP, true
	default:
		return 0, false
	}
}

// parseAddr parses a 16-bit numeric literal in 0x (hex), 0b (binary), or
// decimal form, per the command grammar.
func parseAddr(s string) (types.Addr, error) {
	n, err := parseLiteral(s)
	if err != nil {
		return 0, err
	}
	return types.Addr(n), nil
}

func parseByte(s string) (types.Byte, error) {
	n, err := parseLiteral(s)
	if err != nil {
		return 0, err
	}
	return types.Byte(n), nil
}

func parseLiteral(s string) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, 64)
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		return strconv.ParseUint(s[2:], 2, 64)
	default:
		return strconv.ParseUint(s, 10, 64)
	}
}

const helpText = `help
break <addr>            (alias: b)
run                     (alias: r)
step                    (alias: s)
set mem <addr> <byte>
set reg <A|X|Y|PS>   <byte>
set reg <PC|SP>      <word>
get mem <addr>
get reg <A|X|Y|PS|PC|SP>
regs
quit
numeric literals: 0x.. (hex), 0b.. (binary), decimal`
