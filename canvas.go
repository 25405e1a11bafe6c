package st7789

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/st7789/pixel"
)

// Canvas adapts a Dev to [draw.Image], so images and fonts rendered by the
// standard library reach the panel. Every Set is a pixel write; there is no
// read path, At always returns transparent.
type Canvas struct {
	d   *Dev
	err error
}

// ColorModel returns the 16-bit model matching the subpixel order set in
// MADCTL: BGR unless the MADCTLBGR bit was cleared.
func (d *Dev) ColorModel() color.Model {
	if d.madctl&MADCTLBGR != 0 {
		return pixel.CBGR16Model
	}
	return pixel.CRGB16Model
}

func (d *Dev) convert(v color.Color) Color {
	if d.madctl&MADCTLBGR != 0 {
		return Color(pixel.CBGR16Model.Convert(v).(pixel.CBGR16))
	}
	return Color(pixel.CRGB16Model.Convert(v).(pixel.CRGB16))
}

// Canvas returns a drawing surface backed by the panel.
func (d *Dev) Canvas() *Canvas {
	return &Canvas{d: d}
}

func (c *Canvas) ColorModel() color.Model {
	return c.d.ColorModel()
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.d.Bounds()
}

func (c *Canvas) At(x, y int) color.Color {
	return color.Transparent
}

// Set writes one pixel. After a transport error further writes are dropped.
func (c *Canvas) Set(x, y int, v color.Color) {
	if c.err != nil {
		return
	}
	if _, _, _, a := v.RGBA(); a == 0 {
		return
	}
	c.err = c.d.DrawPixel(x, y, c.d.convert(v))
}

// Err returns the first transport error hit by Set.
func (c *Canvas) Err() error {
	return c.err
}

var _ draw.Image = (*Canvas)(nil)

// DrawImage streams img with its bounds' top left corner at (x, y) in one
// window. Like DrawRectangle it does not clip: nothing is drawn unless the
// whole image fits the panel.
func (d *Dev) DrawImage(x, y int, img image.Image) error {
	b := img.Bounds()
	win, ok := d.window(x, y, b.Dx(), b.Dy())
	if !ok {
		return nil
	}
	return d.transaction(func() (err error) {
		if err = d.setWindow(win); err != nil {
			return
		}
		for sy := b.Min.Y; sy < b.Max.Y; sy++ {
			for sx := b.Min.X; sx < b.Max.X; sx++ {
				hi, lo := d.convert(img.At(sx, sy)).Split()
				if err = d.data(hi, lo); err != nil {
					return
				}
			}
		}
		return
	})
}
