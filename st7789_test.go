package st7789

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/BeatGlow/st7789/st7789test"
)

func newTestDev(t *testing.T, tr Transport, config *Config) *Dev {
	t.Helper()
	d, err := New(tr, config)
	require.NoError(t, err)
	d.sleep = func(time.Duration) {}
	return d
}

func newRecorded(t *testing.T, w, h int) (*Dev, *st7789test.Recorder) {
	t.Helper()
	rec := new(st7789test.Recorder)
	return newTestDev(t, rec, &Config{Width: w, Height: h}), rec
}

func newPanel(t *testing.T, w, h int) (*Dev, *st7789test.Panel) {
	t.Helper()
	panel := st7789test.NewPanel(w, h)
	return newTestDev(t, panel, &Config{Width: w, Height: h}), panel
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		want    image.Rectangle
		wantErr bool
	}{
		{"nil config", nil, image.Rect(0, 0, 240, 320), false},
		{"defaults", &Config{}, image.Rect(0, 0, 240, 320), false},
		{"rotated defaults", &Config{Rotation: Rotate90}, image.Rect(0, 0, 320, 240), false},
		{"small panel", &Config{Width: 135, Height: 240}, image.Rect(0, 0, 135, 240), false},
		{"rotated landscape", &Config{Width: 320, Height: 240, Rotation: Rotate270}, image.Rect(0, 0, 320, 240), false},
		{"too wide", &Config{Width: 320, Height: 240}, image.Rectangle{}, true},
		{"too tall rotated", &Config{Width: 240, Height: 320, Rotation: Rotate90}, image.Rectangle{}, true},
		{"negative", &Config{Width: -1, Height: 10}, image.Rectangle{}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := New(nil, test.config)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, d.Bounds())
		})
	}
}

func TestInit(t *testing.T) {
	panel := st7789test.NewPanel(240, 320)
	panel.Image.Fill(image.White)
	d := newTestDev(t, panel, nil)

	var sleeps []time.Duration
	d.sleep = func(v time.Duration) { sleeps = append(sleeps, v) }

	require.NoError(t, d.Init())
	assert.Empty(t, panel.Violations())
	assert.Equal(t, []byte{
		st7789SWRESET, st7789SLPOUT, st7789COLMOD, st7789CASET, st7789RASET, st7789MADCTL,
		st7789NORON, st7789INVON, st7789DISPON,
		st7789CASET, st7789RASET, st7789RAMWR,
	}, panel.Opcodes)
	assert.Equal(t, []byte{0x55}, panel.Registers[st7789COLMOD])
	assert.Equal(t, []byte{0x48}, panel.Registers[st7789MADCTL])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xEF}, panel.Registers[st7789CASET])
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x3F}, panel.Registers[st7789RASET])
	assert.Equal(t, 2, panel.Transactions)
	assert.Equal(t, 240*320, panel.Pixels)
	assert.Equal(t, []time.Duration{
		120 * time.Millisecond,
		500 * time.Millisecond,
		120 * time.Millisecond,
		120 * time.Millisecond,
		120 * time.Millisecond,
	}, sleeps)
	for _, p := range []image.Point{{0, 0}, {239, 319}, {120, 160}} {
		assert.Equal(t, Black, Color(panel.At(p.X, p.Y)), "pixel %s", p)
	}
}

type resetRecorder struct {
	*st7789test.Recorder
	levels []gpio.Level
}

func (r *resetRecorder) Reset(l gpio.Level) error {
	r.levels = append(r.levels, l)
	return nil
}

func TestInitReset(t *testing.T) {
	var (
		tr        = &resetRecorder{Recorder: new(st7789test.Recorder)}
		backlight = &gpiotest.Pin{N: "BL"}
		d         = newTestDev(t, tr, &Config{Backlight: backlight})
		sleeps    []time.Duration
	)
	d.sleep = func(v time.Duration) { sleeps = append(sleeps, v) }

	require.NoError(t, d.Init())
	assert.Equal(t, []gpio.Level{gpio.High, gpio.Low, gpio.High}, tr.levels)
	require.GreaterOrEqual(t, len(sleeps), 3)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 10 * time.Millisecond}, sleeps[:3])
	assert.Equal(t, gpio.High, backlight.L)

	require.NoError(t, d.SetBrightness(0))
	assert.Equal(t, gpio.Low, backlight.L)
}

func TestPanelControl(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Dev) error
		want byte
	}{
		{"show", func(d *Dev) error { return d.Show(true) }, st7789DISPON},
		{"hide", func(d *Dev) error { return d.Show(false) }, st7789DISPOFF},
		{"invert", func(d *Dev) error { return d.Invert(true) }, st7789INVON},
		{"normal", func(d *Dev) error { return d.Invert(false) }, st7789INVOFF},
		{"sleep", func(d *Dev) error { return d.Sleep(true) }, st7789SLPIN},
		{"wake", func(d *Dev) error { return d.Sleep(false) }, st7789SLPOUT},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, rec := newRecorded(t, 240, 320)
			require.NoError(t, test.fn(d))
			assert.Equal(t, []byte{test.want}, rec.Commands())
			assert.Empty(t, rec.Data())
			assert.Len(t, rec.Transactions(), 1)
		})
	}
}

func TestSetRotation(t *testing.T) {
	d, rec := newRecorded(t, 240, 320)

	require.NoError(t, d.SetRotation(Rotate90))
	assert.Equal(t, image.Rect(0, 0, 320, 240), d.Bounds())
	assert.Equal(t, Rotate90, d.Rotation())
	assert.Equal(t, []byte{st7789MADCTL}, rec.Commands())
	assert.Equal(t, []byte{0x28}, rec.Data())

	rec.Reset()
	require.NoError(t, d.SetRotation(Rotate180))
	assert.Equal(t, image.Rect(0, 0, 240, 320), d.Bounds())
	assert.Equal(t, []byte{0x88}, rec.Data())

	rec.Reset()
	require.NoError(t, d.SetRotation(Rotate270))
	assert.Equal(t, image.Rect(0, 0, 320, 240), d.Bounds())
	assert.Equal(t, []byte{0xE8}, rec.Data())
}

func TestWindowOffsets(t *testing.T) {
	rec := new(st7789test.Recorder)
	d := newTestDev(t, rec, &Config{Width: 135, Height: 240, ColOffset: 52, RowOffset: 40})
	require.NoError(t, d.DrawPixel(1, 2, White))
	assert.Equal(t, []byte{
		0x00, 53, 0x00, 53,
		0x00, 42, 0x00, 42,
		0xFF, 0xFF,
	}, rec.Data())

	rec = new(st7789test.Recorder)
	d = newTestDev(t, rec, &Config{Width: 240, Height: 135, Rotation: Rotate90, ColOffset: 52, RowOffset: 40})
	require.NoError(t, d.DrawPixel(1, 2, White))
	assert.Equal(t, []byte{
		0x00, 41, 0x00, 41,
		0x00, 54, 0x00, 54,
		0xFF, 0xFF,
	}, rec.Data())
}

type closeRecorder struct {
	*st7789test.Recorder
	closed bool
}

func (r *closeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestClose(t *testing.T) {
	tr := &closeRecorder{Recorder: new(st7789test.Recorder)}
	d := newTestDev(t, tr, nil)
	require.NoError(t, d.Close())
	assert.True(t, tr.closed)
	assert.Equal(t, []byte{st7789DISPOFF}, tr.Commands())
}

func TestString(t *testing.T) {
	d := newTestDev(t, nil, &Config{Width: 135, Height: 240})
	assert.Equal(t, "ST7789 135x240", d.String())
	assert.Equal(t, "90°", Rotate90.String())
	assert.Equal(t, "0°", Rotation(4).String())
}
