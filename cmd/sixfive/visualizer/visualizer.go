// Package visualizer implements a graphical front-end: a scrolling text
// console rendering the Display device's output and forwarding window
// key events into the Keyboard device's FIFO.
package visualizer

import (
	"log"
	"strings"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"sixfiveohtwo/device"
	"sixfiveohtwo/types"
)

const (
	cols = 80
	rows = 25

	charW = 7
	charH = 13

	screenW = float64(cols * charW)
	screenH = float64(rows * charH)
)

// Console is a pixelgl window rendering a fixed-size character grid fed
// by a Display device, and forwarding key presses into a Keyboard
// device's FIFO via keyboard.Push.
type Console struct {
	window   *pixelgl.Window
	atlas    *text.Atlas
	txt      *text.Text
	keyboard *device.Keyboard

	lines []string
}

// NewConsole opens a window and returns a Console bound to kb. Run the
// returned Console's Loop on the main thread, per pixelgl's requirement
// that window/GL calls happen there.
func NewConsole(kb *device.Keyboard) *Console {
	cfg := pixelgl.WindowConfig{
		Title:  "sixfive",
		Bounds: pixel.R(0, 0, screenW, screenH),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("visualizer: unable to create window: ", err)
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	txt := text.New(pixel.V(4, screenH-charH), atlas)

	return &Console{window: win, atlas: atlas, txt: txt, keyboard: kb, lines: []string{""}}
}

// Write implements io.Writer so a Console can be passed directly to
// device.NewDisplay; every byte written becomes console text, with 0x0A
// starting a new line.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			c.lines = append(c.lines, "")
			continue
		}
		last := len(c.lines) - 1
		c.lines[last] += string(rune(b))
	}
	if len(c.lines) > rows {
		c.lines = c.lines[len(c.lines)-rows:]
	}
	return len(p), nil
}

// Loop blocks, redrawing the console and polling key state each frame,
// until the window is closed.
func (c *Console) Loop() {
	for !c.window.Closed() {
		c.pollKeys()
		c.redraw()
	}
}

func (c *Console) pollKeys() {
	for _, r := range c.window.Typed() {
		c.keyboard.Push(types.Byte(r))
	}
	if c.window.JustPressed(pixelgl.KeyEnter) {
		c.keyboard.Push(types.Byte('\n'))
	}
}

func (c *Console) redraw() {
	c.window.Clear(colornames.Black)
	c.txt.Clear()
	c.txt.WriteString(strings.Join(c.lines, "\n"))
	c.txt.Draw(c.window, pixel.IM)
	c.window.Update()
}
