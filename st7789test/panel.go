package st7789test

import (
	"fmt"
	"image"

	"github.com/BeatGlow/st7789/pixel"
)

// Controller opcodes the panel understands.
const (
	caset  = 0x2A
	raset  = 0x2B
	ramwr  = 0x2C
	swrst  = 0x01
	madctl = 0x36
	colmod = 0x3A
)

// Panel emulates the memory write path of the controller.
//
// Pixels streamed after a memory write land in Image, walking the armed
// window row by row. Anything the controller would not accept, or that a
// correct driver never does, is noted as a violation.
type Panel struct {
	// Image holds the raw pixel words in the panel's subpixel order.
	Image pixel.Image16

	// Registers holds the parameters last sent with each opcode.
	Registers map[byte][]byte

	// Opcodes lists every command byte in order.
	Opcodes []byte

	// Pixels counts pixel writes.
	Pixels int

	// Transactions counts completed select/deselect brackets.
	Transactions int

	// ReadValue is returned by Receive.
	ReadValue byte

	selected   bool
	command    bool
	opcode     byte
	params     []byte
	win        image.Rectangle
	x, y       int
	streamed   int
	hi         byte
	half       bool
	violations []string
}

// NewPanel returns a blank w×h panel with BGR subpixels.
func NewPanel(w, h int) *Panel {
	return newPanel(pixel.NewCBGR16Image(w, h))
}

// NewRGBPanel returns a blank w×h panel with RGB subpixels.
func NewRGBPanel(w, h int) *Panel {
	return newPanel(pixel.NewCRGB16Image(w, h))
}

func newPanel(img pixel.Image16) *Panel {
	return &Panel{
		Image:     img,
		Registers: make(map[byte][]byte),
	}
}

// Violations returns the protocol errors seen so far.
func (p *Panel) Violations() []string {
	return p.violations
}

// Window returns the window armed by the last CASET and RASET, inclusive
// bounds converted to an image.Rectangle.
func (p *Panel) Window() image.Rectangle {
	return p.win
}

// At returns the raw pixel word at (x, y).
func (p *Panel) At(x, y int) uint16 {
	return p.Image.Uint16At(x, y)
}

func (p *Panel) violate(format string, args ...any) {
	p.violations = append(p.violations, fmt.Sprintf(format, args...))
}

func (p *Panel) Select() error {
	if p.selected {
		p.violate("select inside a transaction")
	}
	p.selected = true
	return nil
}

func (p *Panel) Deselect() error {
	if !p.selected {
		p.violate("deselect outside a transaction")
	}
	p.endCommand()
	p.selected = false
	p.Transactions++
	return nil
}

func (p *Panel) SetCommandMode() error {
	p.command = true
	return nil
}

func (p *Panel) SetDataMode() error {
	p.command = false
	return nil
}

func (p *Panel) Transmit(b byte) error {
	if !p.selected {
		p.violate("byte %#02x outside a transaction", b)
	}
	if p.command {
		p.endCommand()
		p.Opcodes = append(p.Opcodes, b)
		p.opcode, p.params = b, nil
		switch b {
		case ramwr:
			p.x, p.y = p.win.Min.X, p.win.Min.Y
			p.streamed = 0
		case swrst:
			p.Image.Clear()
		}
		return nil
	}

	if p.opcode == ramwr {
		p.writePixelByte(b)
		return nil
	}
	p.params = append(p.params, b)
	switch p.opcode {
	case caset:
		if len(p.params) == 4 {
			p.win.Min.X = int(p.params[0])<<8 | int(p.params[1])
			p.win.Max.X = int(p.params[2])<<8 | int(p.params[3]) + 1
		}
	case raset:
		if len(p.params) == 4 {
			p.win.Min.Y = int(p.params[0])<<8 | int(p.params[1])
			p.win.Max.Y = int(p.params[2])<<8 | int(p.params[3]) + 1
		}
	}
	return nil
}

func (p *Panel) Receive() (byte, error) {
	if !p.selected {
		p.violate("receive outside a transaction")
	}
	return p.ReadValue, nil
}

// endCommand closes the current command when a new one starts or the
// transaction ends.
func (p *Panel) endCommand() {
	if p.opcode == ramwr {
		switch area := p.win.Dx() * p.win.Dy(); {
		case p.half:
			p.violate("memory write ended after half a pixel")
			p.half = false
		case p.streamed < area:
			p.violate("memory write ended after %d of %d pixels", p.streamed, area)
		}
	}
	switch p.opcode {
	case caset, raset:
		if len(p.params) != 4 {
			p.violate("command %#02x with %d parameters", p.opcode, len(p.params))
		}
	case madctl, colmod:
		if len(p.params) != 1 {
			p.violate("command %#02x with %d parameters", p.opcode, len(p.params))
		}
	}
	if p.opcode != ramwr && len(p.params) > 0 {
		p.Registers[p.opcode] = p.params
	}
	p.opcode, p.params = 0, nil
}

func (p *Panel) writePixelByte(b byte) {
	if !p.half {
		p.hi, p.half = b, true
		return
	}
	p.half = false

	if p.y >= p.win.Max.Y {
		p.violate("pixel stream overruns window %s", p.win)
		return
	}
	if !(image.Point{X: p.x, Y: p.y}).In(p.Image.Bounds()) {
		p.violate("pixel (%d,%d) outside the panel", p.x, p.y)
	} else {
		p.Image.SetUint16(p.x, p.y, uint16(p.hi)<<8|uint16(b))
	}
	p.Pixels++
	p.streamed++

	if p.x++; p.x >= p.win.Max.X {
		p.x = p.win.Min.X
		p.y++
	}
}
