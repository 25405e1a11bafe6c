package glyph

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromFace renders count characters starting at first into a new table.
//
// Every glyph gets a cell as wide as the advance of 'M' and as tall as the
// face's ascent plus descent. Pixels with at least half coverage are set.
// Characters the face cannot render are drawn the way the face draws them,
// usually blank.
func FromFace(face font.Face, first rune, count int) (*Table, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d glyphs", ErrTableShape, count)
	}

	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		height  = ascent + metrics.Descent.Ceil()
	)
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("%w: face has no advance for 'M'", ErrTableShape)
	}
	width := advance.Ceil()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cell of %dx%d", ErrTableShape, width, height)
	}

	t := &Table{
		FirstASCIICode:  first,
		GlyphCount:      count,
		GlyphHeight:     height,
		GlyphBytesWidth: (width + 7) / 8,
		FixedWidth:      width,
	}
	t.Bitmaps = make([]byte, count*t.glyphSize())

	cell := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: face,
	}
	stride := t.GlyphBytesWidth
	for i := 0; i < count; i++ {
		clear(cell.Pix)
		drawer.Dot = fixed.P(0, ascent)
		drawer.DrawString(string(first + rune(i)))

		base := i * t.glyphSize()
		for y := 0; y < height; y++ {
			// bottom row first
			row := t.Bitmaps[base+(height-1-y)*stride : base+(height-y)*stride]
			for x := 0; x < width; x++ {
				if cell.AlphaAt(x, y).A >= 0x80 {
					row[x>>3] |= 0x80 >> uint(x&7)
				}
			}
		}
	}
	return t, nil
}

var basic = sync.OnceValue(func() *Table {
	t, err := FromFace(basicfont.Face7x13, ' ', '~'-' '+1)
	if err != nil {
		panic(err)
	}
	return t
})

// Basic returns a 7x13 table of the printable ASCII characters.
func Basic() *Table {
	return basic()
}
