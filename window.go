package st7789

// window is the inclusive address range armed for one pixel stream. It only
// lives for the duration of a single drawing call.
type window struct {
	x0, y0, x1, y1 int
}

// pixels is the number of pixels the controller expects after RAMWR.
func (w window) pixels() int {
	return (w.x1 - w.x0 + 1) * (w.y1 - w.y0 + 1)
}

// window returns the window for the w×h rectangle at (x, y), if it fits the panel.
func (d *Dev) window(x, y, w, h int) (window, bool) {
	if w <= 0 || h <= 0 {
		return window{}, false
	}
	if x < 0 || y < 0 || w > d.width-x || h > d.height-y {
		return window{}, false
	}
	return window{x0: x, y0: y, x1: x + w - 1, y1: y + h - 1}, true
}

// columnAddress and rowAddress return the CASET and RASET commands for win,
// shifted by the panel offsets.
func (d *Dev) columnAddress(win window) []byte {
	offset := d.colOffset
	if d.rotation.swapsAxes() {
		offset = d.rowOffset
	}
	x0, x1 := win.x0+offset, win.x1+offset
	return []byte{st7789CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}
}

func (d *Dev) rowAddress(win window) []byte {
	offset := d.rowOffset
	if d.rotation.swapsAxes() {
		offset = d.colOffset
	}
	y0, y1 := win.y0+offset, win.y1+offset
	return []byte{st7789RASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}
}

// setWindow programs the column and row address ranges and starts a memory
// write. It must run inside a transaction, followed by exactly win.pixels()
// pixels.
func (d *Dev) setWindow(win window) error {
	return d.commands(
		d.columnAddress(win),
		d.rowAddress(win),
		[]byte{st7789RAMWR},
	)
}

// stream writes n pixels of color c.
func (d *Dev) stream(c Color, n int) (err error) {
	hi, lo := c.Split()
	for ; n > 0; n-- {
		if err = d.t.Transmit(hi); err != nil {
			return
		}
		if err = d.t.Transmit(lo); err != nil {
			return
		}
	}
	return
}

// fillWindow fills win with a solid color in one transaction.
func (d *Dev) fillWindow(win window, c Color) error {
	return d.transaction(func() error {
		if err := d.setWindow(win); err != nil {
			return err
		}
		return d.stream(c, win.pixels())
	})
}
