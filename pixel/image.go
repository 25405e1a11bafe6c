package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Image16 is an Image of packed 16-bit pixel words. The raw accessors skip
// color conversion.
type Image16 interface {
	Image

	Uint16At(x, y int) uint16
	SetUint16(x, y int, v uint16)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

// PixOffset returns the index of the first byte of the 16-bit pixel at (x, y).
func (p *Buffer) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *Buffer) uint16At(order binary.ByteOrder, x, y int) uint16 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return order.Uint16(p.Pix[p.PixOffset(x, y):])
}

func (p *Buffer) setUint16(order binary.ByteOrder, x, y int, v uint16) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	order.PutUint16(p.Pix[p.PixOffset(x, y):], v)
}

func (p *Buffer) fill16(order binary.ByteOrder, v uint16) {
	var pair [2]byte
	order.PutUint16(pair[:], v)
	for i, l := 0, len(p.Pix); i+1 < l; i += 2 {
		copy(p.Pix[i:], pair[:])
	}
}

func makeBuffer16(w, h int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, w*2*h),
		Stride: w * 2,
	}
}

// CBGR16Image is a 16-bits per pixel 5-6-5-bit BGR image.
type CBGR16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCBGR16Image(w, h int) *CBGR16Image {
	return &CBGR16Image{
		Buffer: makeBuffer16(w, h),
		Order:  binary.BigEndian,
	}
}

func (p *CBGR16Image) ColorModel() color.Model {
	return CBGR16Model
}

func (p *CBGR16Image) At(x, y int) color.Color {
	return p.CBGR16At(x, y)
}

// CBGR16At returns the pixel at (x, y), zero outside the image.
func (p *CBGR16Image) CBGR16At(x, y int) CBGR16 {
	return CBGR16(p.uint16At(p.Order, x, y))
}

// Uint16At returns the raw pixel word at (x, y).
func (p *CBGR16Image) Uint16At(x, y int) uint16 {
	return p.uint16At(p.Order, x, y)
}

func (p *CBGR16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.SetCBGR16(x, y, cbgr16Model(c).(CBGR16))
}

// SetCBGR16 sets the pixel at (x, y) without color conversion.
func (p *CBGR16Image) SetCBGR16(x, y int, c CBGR16) {
	p.setUint16(p.Order, x, y, uint16(c))
}

func (p *CBGR16Image) SetUint16(x, y int, v uint16) {
	p.setUint16(p.Order, x, y, v)
}

func (p *CBGR16Image) Fill(c color.Color) {
	p.fill16(p.Order, uint16(cbgr16Model(c).(CBGR16)))
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer16(w, h),
		Order:  binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	return CRGB16(p.uint16At(p.Order, x, y))
}

func (p *CRGB16Image) Uint16At(x, y int) uint16 {
	return p.uint16At(p.Order, x, y)
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	p.setUint16(p.Order, x, y, uint16(crgb16Model(c).(CRGB16)))
}

func (p *CRGB16Image) SetUint16(x, y int, v uint16) {
	p.setUint16(p.Order, x, y, v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	p.fill16(p.Order, uint16(crgb16Model(c).(CRGB16)))
}

// Interface checks.
var (
	_ Image16 = (*CBGR16Image)(nil)
	_ Image16 = (*CRGB16Image)(nil)
)
