package glyph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

func countBits(t *testing.T, table *Table, c rune) int {
	t.Helper()
	g, ok := table.Lookup(c)
	require.True(t, ok, "%q", c)
	var n int
	for row := 0; row < table.Height(); row++ {
		for _, set := range g.Row(row).Bits(table.Advance()) {
			if set {
				n++
			}
		}
	}
	return n
}

func TestFromFace(t *testing.T) {
	face := basicfont.Face7x13
	table, err := FromFace(face, ' ', 95)
	require.NoError(t, err)
	require.NoError(t, table.Validate())
	assert.Equal(t, 7, table.Advance())
	assert.Equal(t, 13, table.Height())
	assert.Equal(t, 1, table.GlyphBytesWidth)

	assert.Zero(t, countBits(t, table, ' '))
	for _, c := range "AZaz09#~" {
		dr, mask, mp, _, ok := face.Glyph(fixed.P(0, face.Ascent), c)
		require.True(t, ok, "%q", c)

		g, ok := table.Lookup(c)
		require.True(t, ok, "%q", c)
		for y := 0; y < table.Height(); y++ {
			for x, set := range g.Row(y).Bits(table.Advance()) {
				p := image.Pt(x, y)
				var want bool
				if p.In(dr) {
					_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
					want = a >= 0x8080
				}
				assert.Equal(t, want, set, "%q at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestFromFaceCount(t *testing.T) {
	_, err := FromFace(basicfont.Face7x13, 'A', 0)
	assert.ErrorIs(t, err, ErrTableShape)
}

func TestBasic(t *testing.T) {
	table := Basic()
	assert.Same(t, table, Basic())
	_, ok := table.Lookup('~')
	assert.True(t, ok)
	_, ok = table.Lookup('\n')
	assert.False(t, ok)
}

func TestFromTrueType(t *testing.T) {
	table, err := FromTrueType(gomono.TTF, 16, ' ', 95)
	require.NoError(t, err)
	require.NoError(t, table.Validate())
	assert.Positive(t, table.Advance())
	assert.GreaterOrEqual(t, table.Height(), 16)
	assert.Zero(t, countBits(t, table, ' '))
	assert.Positive(t, countBits(t, table, 'M'))
	assert.Greater(t, countBits(t, table, '#'), countBits(t, table, '.'))

	_, err = FromTrueType([]byte("not a font"), 16, ' ', 95)
	assert.Error(t, err)
}
