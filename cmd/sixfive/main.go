// Command sixfive is the host binary: it wires RAM, ROM, Keyboard and
// Display onto a Bus, constructs a CPU and Clock over it, and either
// free-runs the CPU paced by a real-time clock, drops into the
// debugger REPL, or opens the graphical visualizer.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"gopkg.in/urfave/cli.v2"

	"sixfiveohtwo/bus"
	"sixfiveohtwo/clock"
	"sixfiveohtwo/cmd/sixfive/debugger"
	"sixfiveohtwo/cmd/sixfive/visualizer"
	"sixfiveohtwo/cpu"
	"sixfiveohtwo/device"
	"sixfiveohtwo/types"
)

// Default memory map: RAM in the low 16K, ROM occupying the top of the
// address space so the reset/IRQ/NMI vectors fall inside it.
const (
	ramStart types.Addr = 0x0000
	ramEnd   types.Addr = 0x3FFF
	romStart types.Addr = 0x7F00
	romEnd   types.Addr = 0xFFFF
)

func main() {
	app := &cli.App{
		Name:    "sixfive",
		Usage:   "MOS 6502 emulator",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "load",
				Usage: "path to a binary blob to preload into ROM",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enter the debugger REPL instead of free-running",
			},
			&cli.BoolFlag{
				Name:  "visualize",
				Usage: "run the graphical front-end instead of a headless pacer",
			},
			&cli.StringFlag{
				Name:  "reset-pc",
				Usage: "override the reset vector (0x.., 0b.., or decimal)",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	image, err := loadImage(c.String("load"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if resetPC := c.String("reset-pc"); resetPC != "" {
		addr, err := parseAddr(resetPC)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		image = withResetVector(image, addr, romStart)
	}

	ram := device.NewRAM(ramStart, ramEnd)
	rom := device.NewROM(romStart, romEnd, image)
	kb := device.NewKeyboard()

	var console *visualizer.Console
	var disp *device.Display
	if c.Bool("visualize") {
		console = visualizer.NewConsole(kb)
		disp = device.NewDisplay(console)
	} else {
		disp = device.NewDisplay(os.Stdout)
	}

	b := bus.New()
	for _, dev := range []bus.Device{ram, rom, kb, disp} {
		if err := b.Register(dev); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	clk := clock.New()
	machine := cpu.New(b, clk)
	// Reset always runs with the clock bypassed: nothing is pacing the
	// clock yet at this point for any of the three run modes below.
	machine.SetDebugMode(true)
	machine.Reset()

	if c.Bool("debug") {
		_, err := debugger.New(machine).Run()
		return err
	}

	machine.SetDebugMode(false)
	if c.Bool("visualize") {
		go pace(machine, clk)
		pixelgl.Run(console.Loop)
		return nil
	}

	go kb.Poll(os.Stdin)
	pace(machine, clk)
	return nil
}

// pace drives the Clock at a fixed rate on its own goroutine while the
// CPU runs freely, until a trap or jam halts it.
func pace(c *cpu.CPU, clk *clock.Clock) {
	ticker := time.NewTicker(time.Microsecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			clk.Tick()
		}
	}()
	for c.Exec() {
	}
	fmt.Println(c.String())
}

func loadImage(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}

// withResetVector patches the low/high bytes of the reset vector
// (0xFFFC/D) within image, a blob destined for a ROM based at base,
// growing image if it doesn't already reach that far. Test ROMs that
// don't bother setting their own reset vector can be pointed at an
// arbitrary entry point this way, per the --reset-pc convenience.
func withResetVector(image []byte, addr, base types.Addr) []byte {
	offset := int(types.Addr(0xFFFC) - base)
	for len(image) <= offset+1 {
		image = append(image, 0)
	}
	image[offset] = byte(addr.Low())
	image[offset+1] = byte(addr.High())
	return image
}

func parseAddr(s string) (types.Addr, error) {
	var n uint64
	_, err := fmt.Sscanf(s, "0x%x", &n)
	if err != nil {
		_, err = fmt.Sscanf(s, "0b%b", &n)
	}
	if err != nil {
		_, err = fmt.Sscanf(s, "%d", &n)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return types.Addr(n), nil
}
