package st7789

import "github.com/BeatGlow/st7789/glyph"

// DrawText renders text with its top left corner at (x, y) and returns the
// cursor position after the last glyph.
//
// Every cell of a glyph is painted, set bits in fg and clear bits in bg.
// Characters missing from src are skipped and take no space. Pixels falling
// off the panel are dropped.
func (d *Dev) DrawText(src glyph.Source, text string, x, y int, fg, bg Color) (int, error) {
	var (
		width  = src.Advance()
		height = src.Height()
	)
	for _, c := range text {
		g, ok := src.Lookup(c)
		if !ok {
			continue
		}
		for row := 0; row < height; row++ {
			for col, set := range g.Row(row).Bits(width) {
				color := bg
				if set {
					color = fg
				}
				if err := d.DrawPixel(x+col, y+row, color); err != nil {
					return x, err
				}
			}
		}
		x += width
	}
	return x, nil
}
