// Package st7789 drives ST7789 TFT display controllers.
//
// The driver keeps no frame buffer: every drawing call programs the
// controller's address window and streams 16-bit pixel colors straight to the
// panel. Geometry that does not fit the panel is silently dropped, so callers
// may draw partially visible shapes without checking bounds first. Wrap a
// [Dev] with [NewStrict] to get [ErrBounds] instead.
//
// A Dev is not safe for concurrent use; callers sharing one must serialize
// access themselves.
package st7789

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("ST7789_DEBUG") != ""
}

// Errors
var (
	ErrBounds = errors.New("st7789: out of display bounds")
	ErrSize   = errors.New("st7789: invalid display size")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// swapsAxes reports if the rotation exchanges rows and columns.
func (r Rotation) swapsAxes() bool {
	return r%4 == Rotate90 || r%4 == Rotate270
}

// Color is a 16-bit packed pixel color, transmitted most significant byte first.
//
// The driver does not interpret the bits. The named colors below assume the
// default BGR 5-6-5 panel configuration, see the pixel package for conversions.
type Color uint16

// Named colors.
const (
	Black   Color = 0x0000
	Red     Color = 0x001F
	Blue    Color = 0xF800
	Green   Color = 0x07E0
	Yellow  Color = 0x07FF
	Cyan    Color = 0xFFE0
	White   Color = 0xFFFF
	Magenta Color = 0xF81F
)

// Split returns the high and low byte of the color.
func (c Color) Split() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}
