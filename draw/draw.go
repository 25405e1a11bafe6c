// Package draw provides composite shapes on top of the display primitives,
// and aliases to [image/draw] for blitting images onto a canvas.
package draw

import (
	"image"
	"image/draw"

	"github.com/BeatGlow/st7789"
)

// Target is a surface with the display drawing primitives, such as
// [st7789.Dev] or [st7789.Strict].
type Target interface {
	DrawPixel(x, y int, c st7789.Color) error
	DrawHLine(x, y, w int, c st7789.Color) error
	DrawVLine(x, y, h int, c st7789.Color) error
	DrawLine(x0, y0, x1, y1 int, c st7789.Color) error
	DrawRectangle(x, y, w, h int, c st7789.Color) error
}

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// errs keeps the first error of a sequence of drawing calls.
type errs struct {
	err error
}

func (e *errs) do(err error) {
	if e.err == nil {
		e.err = err
	}
}
