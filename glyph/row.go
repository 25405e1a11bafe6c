package glyph

import "iter"

// Row is one row of a glyph bitmap, most significant bit first.
type Row []byte

// Bit reports if the pixel in column col is set. Columns past the row are clear.
func (r Row) Bit(col int) bool {
	i := col >> 3
	if col < 0 || i >= len(r) {
		return false
	}
	return r[i]&(0x80>>uint(col&7)) != 0
}

// Bits yields the first width pixels of the row, left to right.
func (r Row) Bits(width int) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for col := 0; col < width; col++ {
			if !yield(col, r.Bit(col)) {
				return
			}
		}
	}
}
