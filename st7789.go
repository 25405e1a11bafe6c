package st7789

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const (
	st7789DefaultWidth  = 240
	st7789DefaultHeight = 320
)

// Command set (ST7789VW datasheet, system function commands).
const (
	st7789SWRESET = 0x01
	st7789SLPIN   = 0x10
	st7789SLPOUT  = 0x11
	st7789NORON   = 0x13
	st7789INVOFF  = 0x20
	st7789INVON   = 0x21
	st7789DISPOFF = 0x28
	st7789DISPON  = 0x29
	st7789CASET   = 0x2A
	st7789RASET   = 0x2B
	st7789RAMWR   = 0x2C
	st7789MADCTL  = 0x36
	st7789COLMOD  = 0x3A
	st7789RDID1   = 0xDA
	st7789RDID2   = 0xDB
	st7789RDID3   = 0xDC
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                           byte = 1 << iota // D0: reserved
	_                                            // D1: reserved
	st7789DisplayDataLatchOrder                  // D2: MH
	st7789RGBOrder                               // D3: RGB
	st7789LineAddressOrder                       // D4: ML
	st7789PageColumnOrder                        // D5: MV
	st7789ColumnAddressOrder                     // D6: MX
	st7789PageAddressOrder                       // D7: MY
)

// Interface pixel format: 65K colors, 16 bits per pixel.
const st7789ColorMode16 = 0x55

// DefaultMADCTL orders columns right to left with BGR subpixels.
const DefaultMADCTL = st7789ColumnAddressOrder | st7789RGBOrder

// MADCTLBGR is the subpixel order bit of MADCTL. Clear it for RGB panels.
const MADCTLBGR = st7789RGBOrder

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, after rotation.
	Width int

	// Height of the display in pixels, after rotation.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// ColOffset and RowOffset shift the panel inside the controller RAM, for
	// panels smaller than 240x320.
	ColOffset int
	RowOffset int

	// MADCTL is the memory access control value at NoRotation, zero uses DefaultMADCTL.
	MADCTL byte

	// Backlight pin
	Backlight gpio.PinOut
}

// Dev is an ST7789 display.
type Dev struct {
	t         Transport
	width     int
	height    int
	colOffset int
	rowOffset int
	rotation  Rotation
	madctl    byte
	backlight gpio.PinOut
	sleep     func(time.Duration)
}

// New returns a driver for the controller behind t. It does not talk to the
// controller, call Init before drawing.
func New(t Transport, config *Config) (*Dev, error) {
	if config == nil {
		config = new(Config)
	}
	rotation := config.Rotation & 3

	width, height := config.Width, config.Height
	if width == 0 && height == 0 && rotation.swapsAxes() {
		width, height = st7789DefaultHeight, st7789DefaultWidth
	}
	if width == 0 {
		width = st7789DefaultWidth
	}
	if height == 0 {
		height = st7789DefaultHeight
	}

	maxWidth, maxHeight := st7789DefaultWidth, st7789DefaultHeight
	if rotation.swapsAxes() {
		maxWidth, maxHeight = maxHeight, maxWidth
	}
	if width < 0 || height < 0 || width > maxWidth || height > maxHeight {
		return nil, fmt.Errorf("%w %dx%d, maximum size is %dx%d at %s rotation", ErrSize, width, height, maxWidth, maxHeight, rotation)
	}

	madctl := config.MADCTL
	if madctl == 0 {
		madctl = DefaultMADCTL
	}

	return &Dev{
		t:         t,
		width:     width,
		height:    height,
		colOffset: config.ColOffset,
		rowOffset: config.RowOffset,
		rotation:  rotation,
		madctl:    madctl,
		backlight: config.Backlight,
		sleep:     time.Sleep,
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ST7789 %dx%d", d.width, d.height)
}

// Bounds is the display bounding box (dimensions).
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Rotation returns the current pixel rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// Init resets the controller, configures 16-bit color and the access order,
// turns the display on and clears it to black.
func (d *Dev) Init() (err error) {
	if debug {
		log.Printf("st7789: init %s at %s rotation", d, d.rotation)
	}
	if err = d.hardReset(); err != nil {
		return
	}

	full := window{x0: 0, y0: 0, x1: d.width - 1, y1: d.height - 1}
	if err = d.transaction(func() (err error) {
		if err = d.command(st7789SWRESET); err != nil {
			return
		}
		d.sleep(120 * time.Millisecond)
		if err = d.command(st7789SLPOUT); err != nil {
			return
		}
		d.sleep(500 * time.Millisecond)
		if err = d.commands(
			[]byte{st7789COLMOD, st7789ColorMode16},
			d.columnAddress(full),
			d.rowAddress(full),
			[]byte{st7789MADCTL, d.madctlFor(d.rotation)},
		); err != nil {
			return
		}
		for _, command := range []byte{st7789NORON, st7789INVON, st7789DISPON} {
			if err = d.command(command); err != nil {
				return
			}
			d.sleep(120 * time.Millisecond)
		}
		return
	}); err != nil {
		return
	}

	if err = d.Fill(Black); err != nil {
		return
	}
	return d.SetBrightness(0xff)
}

func (d *Dev) hardReset() (err error) {
	r, ok := d.t.(Resetter)
	if !ok {
		return
	}
	if err = r.Reset(gpio.High); err != nil {
		return
	}
	d.sleep(100 * time.Millisecond)
	if err = r.Reset(gpio.Low); err != nil {
		return
	}
	d.sleep(100 * time.Millisecond)
	if err = r.Reset(gpio.High); err != nil {
		return
	}
	d.sleep(10 * time.Millisecond)
	return
}

// Show toggles the display on or off.
func (d *Dev) Show(show bool) error {
	var command = byte(st7789DISPOFF)
	if show {
		command = byte(st7789DISPON)
	}
	return d.transaction(func() error {
		return d.command(command)
	})
}

// Invert toggles display inversion.
func (d *Dev) Invert(invert bool) error {
	var command = byte(st7789INVOFF)
	if invert {
		command = byte(st7789INVON)
	}
	return d.transaction(func() error {
		return d.command(command)
	})
}

// Sleep puts the controller in or out of sleep mode.
func (d *Dev) Sleep(sleep bool) error {
	var (
		command = byte(st7789SLPOUT)
		delay   = 120 * time.Millisecond
	)
	if sleep {
		command, delay = st7789SLPIN, 5*time.Millisecond
	}
	if err := d.transaction(func() error {
		return d.command(command)
	}); err != nil {
		return err
	}
	d.sleep(delay)
	return nil
}

// SetBrightness adjusts the backlight level, it does nothing without a backlight pin.
func (d *Dev) SetBrightness(level uint8) error {
	if d.backlight == nil || d.backlight == gpio.INVALID {
		return nil
	}
	switch level {
	case 0:
		return d.backlight.Out(gpio.Low)
	case 0xff:
		return d.backlight.Out(gpio.High)
	default:
		duty := gpio.Duty(level) * gpio.DutyMax / 0xff
		return d.backlight.PWM(duty, 2000*physic.Hertz)
	}
}

// SetRotation adjusts the pixel rotation. Rotating by 90° or 270° swaps the
// width and height of the drawing area.
func (d *Dev) SetRotation(rotation Rotation) error {
	rotation &= 3
	if err := d.transaction(func() error {
		return d.commandData(st7789MADCTL, d.madctlFor(rotation))
	}); err != nil {
		return err
	}
	if rotation.swapsAxes() != d.rotation.swapsAxes() {
		d.width, d.height = d.height, d.width
	}
	d.rotation = rotation
	return nil
}

func (d *Dev) madctlFor(rotation Rotation) byte {
	var bits byte
	switch rotation & 3 {
	case Rotate90:
		bits = st7789ColumnAddressOrder | st7789PageColumnOrder
	case Rotate180:
		bits = st7789ColumnAddressOrder | st7789PageAddressOrder
	case Rotate270:
		bits = st7789PageAddressOrder | st7789PageColumnOrder
	}
	return d.madctl ^ bits
}

// Close turns the display off and closes the transport if it can be closed.
func (d *Dev) Close() error {
	err := d.Show(false)
	if c, ok := d.t.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
