package glyph

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FromTrueType builds a table from TrueType font data at size points (72 DPI).
//
// Proportional fonts are forced into cells the width of 'M', monospaced fonts
// give the best results.
func FromTrueType(data []byte, size float64, first rune, count int) (*Table, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse truetype: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return FromFace(face, first, count)
}
