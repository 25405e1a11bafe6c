package draw

import (
	"image"

	"github.com/BeatGlow/st7789"
)

// Outline draws the border of rect.
func Outline(dst Target, rect image.Rectangle, c st7789.Color) error {
	var (
		e = new(errs)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return nil
	}
	e.do(dst.DrawHLine(x, y, w, c))
	e.do(dst.DrawHLine(x, y+h-1, w, c))
	e.do(dst.DrawVLine(x, y, h, c))
	e.do(dst.DrawVLine(x+w-1, y, h, c))
	return e.err
}

// Box draws a filled rectangle.
func Box(dst Target, rect image.Rectangle, c st7789.Color) error {
	return dst.DrawRectangle(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), c)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Target, rect image.Rectangle, radius int, c st7789.Color) error {
	var (
		e = new(errs)
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return nil
	}
	e.do(dst.DrawHLine(x+r, y, w-2*r, c))
	e.do(dst.DrawHLine(x+r, y+h-1, w-2*r, c))
	e.do(dst.DrawVLine(x, y+r, h-2*r, c))
	e.do(dst.DrawVLine(x+w-1, y+r, h-2*r, c))
	e.do(roundedCorner(dst, x+0+r+0, y+0+r+0, r, 1, c))
	e.do(roundedCorner(dst, x+w-r-1, y+0+r+0, r, 2, c))
	e.do(roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c))
	e.do(roundedCorner(dst, x+0+r+0, y+h-r-1, r, 8, c))
	return e.err
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Target, rect image.Rectangle, radius int, c st7789.Color) error {
	var (
		e = new(errs)
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return nil
	}
	e.do(dst.DrawRectangle(x+r, y, w-2*r, h, c))
	e.do(filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c))
	e.do(filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c))
	return e.err
}

// Circle draws a circle outline around (x0, y0).
func Circle(dst Target, x0, y0, radius int, c st7789.Color) error {
	if radius < 0 {
		return nil
	}
	e := new(errs)
	e.do(dst.DrawPixel(x0, y0+radius, c))
	e.do(dst.DrawPixel(x0, y0-radius, c))
	e.do(dst.DrawPixel(x0+radius, y0, c))
	e.do(dst.DrawPixel(x0-radius, y0, c))
	e.do(roundedCorner(dst, x0, y0, radius, 1|2|4|8, c))
	return e.err
}

// FilledCircle draws a filled disc around (x0, y0).
func FilledCircle(dst Target, x0, y0, radius int, c st7789.Color) error {
	if radius < 0 {
		return nil
	}
	e := new(errs)
	e.do(dst.DrawVLine(x0, y0-radius, 2*radius+1, c))
	e.do(filledRoundedCorner(dst, x0, y0, radius, 1|2, 0, c))
	return e.err
}

func clampRadius(rect image.Rectangle, radius int) int {
	limit := min(rect.Dx(), rect.Dy()) / 2
	return max(0, min(radius, limit))
}

// roundedCorner plots the quadrants of a midpoint circle selected by the
// quadrant bit mask: 1 top left, 2 top right, 4 bottom right, 8 bottom left.
func roundedCorner(dst Target, x0, y0, radius, quadrant int, c st7789.Color) error {
	var (
		e    = new(errs)
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y && e.err == nil {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			e.do(dst.DrawPixel(x0+x, y0+y, c))
			e.do(dst.DrawPixel(x0+y, y0+x, c))
		}
		if quadrant&2 != 0 {
			e.do(dst.DrawPixel(x0+x, y0-y, c))
			e.do(dst.DrawPixel(x0+y, y0-x, c))
		}
		if quadrant&8 != 0 {
			e.do(dst.DrawPixel(x0-y, y0+x, c))
			e.do(dst.DrawPixel(x0-x, y0+y, c))
		}
		if quadrant&1 != 0 {
			e.do(dst.DrawPixel(x0-y, y0-x, c))
			e.do(dst.DrawPixel(x0-x, y0-y, c))
		}
	}
	return e.err
}

// filledRoundedCorner fills the right (1) or left (2) half of a disc with
// vertical lines, stretched by delta pixels.
func filledRoundedCorner(dst Target, x0, y0, radius, quadrant, delta int, c st7789.Color) error {
	var (
		e    = new(errs)
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y && e.err == nil {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			e.do(dst.DrawVLine(x0+x, y0-y, 2*y+1+delta, c))
			e.do(dst.DrawVLine(x0+y, y0-x, 2*x+1+delta, c))
		}
		if quadrant&2 != 0 {
			e.do(dst.DrawVLine(x0-x, y0-y, 2*y+1+delta, c))
			e.do(dst.DrawVLine(x0-y, y0-x, 2*x+1+delta, c))
		}
	}
	return e.err
}
