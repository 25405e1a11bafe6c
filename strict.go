package st7789

import (
	"fmt"

	"github.com/BeatGlow/st7789/glyph"
)

// Strict wraps a Dev and rejects geometry the driver would otherwise drop.
//
// Calls that are entirely on the panel behave exactly like the Dev methods.
// Lines and text must stay inside the panel, nothing is clipped.
type Strict struct {
	*Dev
}

// NewStrict returns a validating wrapper around d.
func NewStrict(d *Dev) *Strict {
	return &Strict{Dev: d}
}

func (s *Strict) check(x, y, w, h int) error {
	if _, ok := s.window(x, y, w, h); !ok {
		return fmt.Errorf("%w: %dx%d at (%d,%d) on %dx%d panel", ErrBounds, w, h, x, y, s.width, s.height)
	}
	return nil
}

func (s *Strict) DrawPixel(x, y int, c Color) error {
	if err := s.check(x, y, 1, 1); err != nil {
		return err
	}
	return s.Dev.DrawPixel(x, y, c)
}

func (s *Strict) DrawHLine(x, y, w int, c Color) error {
	if err := s.check(x, y, w, 1); err != nil {
		return err
	}
	return s.Dev.DrawHLine(x, y, w, c)
}

func (s *Strict) DrawVLine(x, y, h int, c Color) error {
	if err := s.check(x, y, 1, h); err != nil {
		return err
	}
	return s.Dev.DrawVLine(x, y, h, c)
}

func (s *Strict) DrawLine(x0, y0, x1, y1 int, c Color) error {
	if err := s.check(x0, y0, 1, 1); err != nil {
		return err
	}
	if err := s.check(x1, y1, 1, 1); err != nil {
		return err
	}
	return s.Dev.DrawLine(x0, y0, x1, y1, c)
}

func (s *Strict) DrawRectangle(x, y, w, h int, c Color) error {
	if err := s.check(x, y, w, h); err != nil {
		return err
	}
	return s.Dev.DrawRectangle(x, y, w, h, c)
}

// DrawText fails if any drawn glyph would leave the panel. Nothing is drawn
// in that case.
func (s *Strict) DrawText(src glyph.Source, text string, x, y int, fg, bg Color) (int, error) {
	var width int
	for _, c := range text {
		if _, ok := src.Lookup(c); ok {
			width += src.Advance()
		}
	}
	if width > 0 {
		if err := s.check(x, y, width, src.Height()); err != nil {
			return x, err
		}
	}
	return s.Dev.DrawText(src, text, x, y, fg, bg)
}
