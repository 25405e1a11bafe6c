// Command st7789 draws on an ST7789 display, or into a PNG file when no
// hardware is at hand.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/st7789"
	"github.com/BeatGlow/st7789/pixel"
	"github.com/BeatGlow/st7789/st7789test"
)

var (
	spiFlag      string
	dcPinFlag    string
	csPinFlag    string
	resetPinFlag string
	blPinFlag    string
	speedFlag    int
	widthFlag    int
	heightFlag   int
	colOffFlag   int
	rowOffFlag   int
	rotateFlag   string
	rgbFlag      bool
	pngFlag      string
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "draw on an ST7789 display",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&spiFlag, "spi", "", "SPI port name (default: first available)")
	flags.StringVar(&dcPinFlag, "dc", "GPIO24", "Data/Command GPIO pin (DC)")
	flags.StringVar(&csPinFlag, "cs", "", "Chip select GPIO pin, empty if the SPI driver controls it")
	flags.StringVar(&resetPinFlag, "reset", "GPIO25", "Reset GPIO pin")
	flags.StringVar(&blPinFlag, "bl", "", "Backlight GPIO pin")
	flags.IntVar(&speedFlag, "speed", 40, "SPI clock in MHz")
	flags.IntVar(&widthFlag, "width", 0, "Display width")
	flags.IntVar(&heightFlag, "height", 0, "Display height")
	flags.IntVar(&colOffFlag, "col-offset", 0, "Column offset in controller RAM")
	flags.IntVar(&rowOffFlag, "row-offset", 0, "Row offset in controller RAM")
	flags.StringVar(&rotateFlag, "rotate", "", "Display rotation")
	flags.BoolVar(&rgbFlag, "rgb", false, "Panel has RGB subpixel order")
	flags.StringVar(&pngFlag, "png", "", "Render into this PNG file instead of the display")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseRotation(s string) (st7789.Rotation, error) {
	switch s {
	case "", "no", "0":
		return st7789.NoRotation, nil
	case "90", "right", "cw":
		return st7789.Rotate90, nil
	case "180", "flip":
		return st7789.Rotate180, nil
	case "270", "left", "ccw":
		return st7789.Rotate270, nil
	default:
		return 0, fmt.Errorf("invalid rotation %q specified", s)
	}
}

var namedColors = map[string]st7789.Color{
	"black":   st7789.Black,
	"red":     st7789.Red,
	"blue":    st7789.Blue,
	"green":   st7789.Green,
	"yellow":  st7789.Yellow,
	"cyan":    st7789.Cyan,
	"white":   st7789.White,
	"magenta": st7789.Magenta,
}

func parseColor(s string) (st7789.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return st7789.Color(v), nil
}

// openDisplay returns an initialized display and a function that releases it.
func openDisplay() (*st7789.Dev, func() error, error) {
	rotation, err := parseRotation(rotateFlag)
	if err != nil {
		return nil, nil, err
	}
	config := &st7789.Config{
		Width:     widthFlag,
		Height:    heightFlag,
		Rotation:  rotation,
		ColOffset: colOffFlag,
		RowOffset: rowOffFlag,
	}
	if rgbFlag {
		config.MADCTL = st7789.DefaultMADCTL &^ st7789.MADCTLBGR
	}

	if pngFlag != "" {
		return openPanel(config)
	}

	if _, err = host.Init(); err != nil {
		return nil, nil, err
	}
	if blPinFlag != "" {
		config.Backlight = gpioreg.ByName(blPinFlag)
	}

	port, err := spireg.Open(spiFlag)
	if err != nil {
		return nil, nil, err
	}
	spiConfig := &st7789.SPIConfig{
		Speed: physic.Frequency(speedFlag) * physic.MegaHertz,
		DC:    gpioreg.ByName(dcPinFlag),
		Reset: gpioreg.ByName(resetPinFlag),
	}
	if csPinFlag != "" {
		spiConfig.CS = gpioreg.ByName(csPinFlag)
	}
	c, err := st7789.OpenSPI(port, spiConfig)
	if err != nil {
		_ = port.Close()
		return nil, nil, err
	}
	fmt.Printf("using connection: %s\n", c)

	d, err := st7789.New(c, config)
	if err == nil {
		err = d.Init()
	}
	if err != nil {
		_ = port.Close()
		return nil, nil, err
	}
	fmt.Printf("using driver: %s\n", d)
	return d, port.Close, nil
}

// openPanel renders into an emulated panel that is saved on release. The
// emulated panel has no hidden RAM, offsets are ignored.
func openPanel(config *st7789.Config) (*st7789.Dev, func() error, error) {
	config.ColOffset, config.RowOffset = 0, 0
	d, err := st7789.New(nil, config)
	if err != nil {
		return nil, nil, err
	}
	size := d.Bounds().Size()
	panel := st7789test.NewPanel(size.X, size.Y)
	if d.ColorModel() == pixel.CRGB16Model {
		panel = st7789test.NewRGBPanel(size.X, size.Y)
	}
	if d, err = st7789.New(panel, config); err != nil {
		return nil, nil, err
	}
	if err = d.Init(); err != nil {
		return nil, nil, err
	}
	fmt.Printf("using driver: %s (emulated, writing %s)\n", d, pngFlag)

	return d, func() error {
		if v := panel.Violations(); len(v) > 0 {
			return fmt.Errorf("protocol violations: %s", strings.Join(v, "; "))
		}
		f, err := os.Create(pngFlag)
		if err != nil {
			return err
		}
		if err = png.Encode(f, panel.Image); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}, nil
}

// withDisplay opens the display, runs fn and releases the display.
func withDisplay(fn func(d *st7789.Dev) error) error {
	d, release, err := openDisplay()
	if err != nil {
		return err
	}
	err = fn(d)
	if rerr := release(); err == nil {
		err = rerr
	}
	return err
}
