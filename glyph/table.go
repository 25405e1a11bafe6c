// Package glyph holds fixed-width bitmap fonts for the display driver.
//
// A [Table] stores one bitmap per character code in a contiguous, sorted
// range. Each glyph is GlyphHeight rows of GlyphBytesWidth bytes; bits are
// read most significant first. Tables can be authored by hand or built from
// any [golang.org/x/image/font.Face] with [FromFace].
package glyph

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrTableShape = errors.New("glyph: invalid table shape")
	ErrTableSize  = errors.New("glyph: bitmap data too short")
)

// Source resolves characters to glyphs of a fixed cell size.
type Source interface {
	// Lookup returns the glyph for c, if there is one.
	Lookup(c rune) (Glyph, bool)

	// Advance is the horizontal distance between two glyphs, in pixels.
	Advance() int

	// Height of a glyph in pixels.
	Height() int
}

// Glyph is a single character bitmap.
type Glyph interface {
	// Row returns the bits of row r, where row 0 is the top of the glyph.
	Row(r int) Row
}

// Table is a sorted, contiguous glyph table.
type Table struct {
	// FirstASCIICode is the character code of the first glyph.
	FirstASCIICode rune

	// GlyphCount is the number of glyphs in the table.
	GlyphCount int

	// GlyphHeight is the number of rows per glyph.
	GlyphHeight int

	// GlyphBytesWidth is the number of bytes per row.
	GlyphBytesWidth int

	// FixedWidth is the number of pixels drawn per row, and the cursor advance.
	FixedWidth int

	// Bitmaps holds GlyphCount glyphs back to back.
	Bitmaps []byte

	// TopDown stores the top row of a glyph first. By default the rows of
	// each glyph are stored bottom row first.
	TopDown bool
}

// Validate checks the table dimensions against the bitmap data.
func (t *Table) Validate() error {
	if t.GlyphCount < 0 || t.GlyphHeight <= 0 || t.GlyphBytesWidth <= 0 || t.FixedWidth <= 0 {
		return fmt.Errorf("%w: %d glyphs of %dx%d in %d bytes per row", ErrTableShape, t.GlyphCount, t.FixedWidth, t.GlyphHeight, t.GlyphBytesWidth)
	}
	if t.FixedWidth > t.GlyphBytesWidth*8 {
		return fmt.Errorf("%w: width %d does not fit %d bytes per row", ErrTableShape, t.FixedWidth, t.GlyphBytesWidth)
	}
	if need := t.GlyphCount * t.glyphSize(); len(t.Bitmaps) < need {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrTableSize, need, len(t.Bitmaps))
	}
	return nil
}

func (t *Table) glyphSize() int {
	return t.GlyphHeight * t.GlyphBytesWidth
}

// Advance returns FixedWidth.
func (t *Table) Advance() int {
	return t.FixedWidth
}

// Height returns GlyphHeight.
func (t *Table) Height() int {
	return t.GlyphHeight
}

// Lookup finds the glyph for c with a binary search over the table.
func (t *Table) Lookup(c rune) (Glyph, bool) {
	low, high := 0, t.GlyphCount-1
	for low <= high {
		mid := low + (high-low)/2
		switch code := t.FirstASCIICode + rune(mid); {
		case code < c:
			low = mid + 1
		case code > c:
			high = mid - 1
		default:
			end := (mid + 1) * t.glyphSize()
			if end > len(t.Bitmaps) || t.GlyphBytesWidth <= 0 {
				return nil, false
			}
			return tableGlyph{
				t:    t,
				last: end - t.GlyphBytesWidth,
			}, true
		}
	}
	return nil, false
}

// tableGlyph points at the last stored row of a glyph.
type tableGlyph struct {
	t    *Table
	last int
}

func (g tableGlyph) Row(r int) Row {
	if r < 0 || r >= g.t.GlyphHeight {
		return nil
	}
	stride := g.t.GlyphBytesWidth
	offset := g.last - r*stride
	if g.t.TopDown {
		offset = g.last - (g.t.GlyphHeight-1-r)*stride
	}
	return Row(g.t.Bitmaps[offset : offset+stride])
}

var _ Source = (*Table)(nil)
