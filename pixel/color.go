package pixel

import "image/color"

// Models for the 16-bit color types.
var (
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 uint16

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand565(uint16(c)>>11, uint16(c)>>5&0x3F, uint16(c)&0x1F)
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case CBGR16:
		return CRGB16(swap565(uint16(c)))
	default:
		r, g, b, _ := c.RGBA()
		return CRGB16(pack565(r, g, b))
	}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color, blue in the high bits.
type CBGR16 uint16

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	return expand565(uint16(c)&0x1F, uint16(c)>>5&0x3F, uint16(c)>>11)
}

func cbgr16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CBGR16:
		return c
	case CRGB16:
		return CBGR16(swap565(uint16(c)))
	default:
		r, g, b, _ := c.RGBA()
		return CBGR16(pack565(b, g, r))
	}
}

// pack565 packs 16-bit components into 5-6-5, hi in the top bits.
func pack565(hi, mid, lo uint32) uint16 {
	return uint16(hi&0xF800 | (mid&0xFC00)>>5 | (lo&0xF800)>>11)
}

// swap565 exchanges the two 5-bit fields.
func swap565(v uint16) uint16 {
	return v<<11 | v&0x07E0 | v>>11
}

// expand565 widens 5-6-5 components to 16 bits per channel.
func expand565(red, grn, blu uint16) (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red <<= 3
	grn <<= 2
	blu <<= 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}
