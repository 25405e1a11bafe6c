package st7789

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/st7789/pixel"
	"github.com/BeatGlow/st7789/st7789test"
)

func TestCanvas(t *testing.T) {
	d, panel := newPanel(t, 16, 16)
	canvas := d.Canvas()
	assert.Equal(t, image.Rect(0, 0, 16, 16), canvas.Bounds())
	assert.Equal(t, color.Transparent, canvas.At(1, 1))

	draw.Draw(canvas, image.Rect(2, 2, 6, 5), image.NewUniform(color.White), image.Point{}, draw.Src)
	require.NoError(t, canvas.Err())
	assert.Empty(t, panel.Violations())
	assert.Equal(t, 12, panel.Pixels)
	assert.Equal(t, White, Color(panel.At(2, 2)))
	assert.Equal(t, White, Color(panel.At(5, 4)))
	assert.Equal(t, Black, Color(panel.At(6, 4)))

	// Fully transparent pixels are not written.
	canvas.Set(0, 0, color.Transparent)
	assert.Equal(t, 12, panel.Pixels)
}

func TestCanvasError(t *testing.T) {
	bus := errors.New("bus error")
	rec := &st7789test.Recorder{Err: bus}
	canvas := newTestDev(t, rec, nil).Canvas()

	canvas.Set(0, 0, color.White)
	canvas.Set(1, 0, color.White)
	assert.ErrorIs(t, canvas.Err(), bus)
	assert.Len(t, rec.Events(), 1)
}

func TestDrawImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 12))
	img.Set(10, 10, color.RGBA{R: 0xFF, A: 0xFF})
	img.Set(11, 10, color.RGBA{G: 0xFF, A: 0xFF})
	img.Set(10, 11, color.RGBA{B: 0xFF, A: 0xFF})
	img.Set(11, 11, color.White)

	d, panel := newPanel(t, 8, 8)
	require.NoError(t, d.DrawImage(3, 4, img))
	assert.Empty(t, panel.Violations())
	assert.Equal(t, 1, panel.Transactions)
	assert.Equal(t, image.Rect(3, 4, 5, 6), panel.Window())
	assert.Equal(t, Red, Color(panel.At(3, 4)))
	assert.Equal(t, Green, Color(panel.At(4, 4)))
	assert.Equal(t, Blue, Color(panel.At(3, 5)))
	assert.Equal(t, White, Color(panel.At(4, 5)))
}

func TestRGBOrder(t *testing.T) {
	d, _ := newPanel(t, 8, 8)
	assert.Equal(t, pixel.CBGR16Model, d.Canvas().ColorModel())

	panel := st7789test.NewRGBPanel(8, 8)
	d = newTestDev(t, panel, &Config{Width: 8, Height: 8, MADCTL: DefaultMADCTL &^ MADCTLBGR})
	assert.Equal(t, pixel.CRGB16Model, d.Canvas().ColorModel())

	require.NoError(t, d.Init())
	assert.Equal(t, []byte{0x40}, panel.Registers[st7789MADCTL])

	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	img.Set(1, 0, color.RGBA{G: 0xFF, A: 0xFF})
	img.Set(2, 0, color.RGBA{B: 0xFF, A: 0xFF})
	require.NoError(t, d.DrawImage(0, 0, img))

	canvas := d.Canvas()
	canvas.Set(0, 1, color.RGBA{R: 0xFF, A: 0xFF})
	require.NoError(t, canvas.Err())

	assert.Empty(t, panel.Violations())
	assert.Equal(t, uint16(0xF800), panel.At(0, 0))
	assert.Equal(t, uint16(0x07E0), panel.At(1, 0))
	assert.Equal(t, uint16(0x001F), panel.At(2, 0))
	assert.Equal(t, uint16(0xF800), panel.At(0, 1))

	r, g, b, _ := panel.Image.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestDrawImageOffPanel(t *testing.T) {
	d, rec := newRecorded(t, 8, 8)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, d.DrawImage(5, 5, img))
	require.NoError(t, d.DrawImage(-1, 0, img))
	require.NoError(t, d.DrawImage(0, 0, image.NewRGBA(image.Rectangle{})))
	assert.Empty(t, rec.Events())
}
