package st7789

// in reports if (x, y) is on the panel.
func (d *Dev) in(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// DrawPixel sets the pixel at (x, y). Pixels off the panel are ignored.
func (d *Dev) DrawPixel(x, y int, c Color) error {
	if !d.in(x, y) {
		return nil
	}
	win, _ := d.window(x, y, 1, 1)
	return d.fillWindow(win, c)
}

// DrawHLine draws a horizontal line of w pixels starting at (x, y), clipped at
// the right edge of the panel. Nothing is drawn if (x, y) is off the panel.
func (d *Dev) DrawHLine(x, y, w int, c Color) error {
	if !d.in(x, y) || w <= 0 {
		return nil
	}
	if w > d.width-x {
		w = d.width - x
	}
	win, _ := d.window(x, y, w, 1)
	return d.fillWindow(win, c)
}

// DrawVLine draws a vertical line of h pixels starting at (x, y), clipped at
// the bottom edge of the panel. Nothing is drawn if (x, y) is off the panel.
func (d *Dev) DrawVLine(x, y, h int, c Color) error {
	if !d.in(x, y) || h <= 0 {
		return nil
	}
	if h > d.height-y {
		h = d.height - y
	}
	win, _ := d.window(x, y, 1, h)
	return d.fillWindow(win, c)
}

// DrawLine draws a line between (x0, y0) and (x1, y1), both inclusive.
//
// Straight lines are streamed through a single window, other lines are
// plotted pixel by pixel.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c Color) error {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		if !d.in(x0, y0) {
			return nil
		}
		// Clip first, the length of a huge line does not fit an int.
		y1 = min(y1, d.height-1)
		return d.DrawVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if !d.in(x0, y0) {
			return nil
		}
		x1 = min(x1, d.width-1)
		return d.DrawHLine(x0, y0, x1-x0+1, c)
	default:
		return bresenham(x0, y0, x1, y1, func(x, y int) error {
			return d.DrawPixel(x, y, c)
		})
	}
}

// bresenham calls plot for every point of the line between (x0, y0) and
// (x1, y1), stepping one pixel at a time along the major axis.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int) error) error {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	var (
		dx    = x1 - x0
		dy    = abs(y1 - y0)
		e     = dx / 2
		ystep = 1
	)
	if y0 > y1 {
		ystep = -1
	}

	for ; x0 <= x1; x0++ {
		var err error
		if steep {
			err = plot(y0, x0)
		} else {
			err = plot(x0, y0)
		}
		if err != nil {
			return err
		}

		e -= dy
		if e < 0 {
			y0 += ystep
			e += dx
		}
	}
	return nil
}

// DrawRectangle fills the w×h rectangle at (x, y). The rectangle is not
// clipped: nothing is drawn unless it fits the panel entirely.
func (d *Dev) DrawRectangle(x, y, w, h int, c Color) error {
	win, ok := d.window(x, y, w, h)
	if !ok {
		return nil
	}
	return d.fillWindow(win, c)
}

// Fill paints the whole panel.
func (d *Dev) Fill(c Color) error {
	return d.DrawRectangle(0, 0, d.width, d.height, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
