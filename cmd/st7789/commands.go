package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/st7789"
	"github.com/BeatGlow/st7789/draw"
	"github.com/BeatGlow/st7789/glyph"
)

func init() {
	textCmd.Flags().IntVarP(&xFlag, "x", "x", 0, "Left edge of the text")
	textCmd.Flags().IntVarP(&yFlag, "y", "y", 0, "Top edge of the text")
	textCmd.Flags().StringVar(&fgFlag, "fg", "white", "Text color")
	textCmd.Flags().StringVar(&bgFlag, "bg", "black", "Background color")
	fontCmd.Flags().AddFlagSet(textCmd.Flags())
	fontCmd.Flags().Float64Var(&sizeFlag, "size", 16, "Font size in points")

	rootCmd.AddCommand(demoCmd, fillCmd, textCmd, fontCmd, imageCmd)
}

var (
	xFlag, yFlag int
	fgFlag       string
	bgFlag       string
	sizeFlag     float64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "draw lines, shapes and text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDisplay(demo)
	},
}

func demo(d *st7789.Dev) error {
	var (
		r    = d.Bounds()
		w, h = r.Dx(), r.Dy()
		font = glyph.Basic()
	)
	steps := []func() error{
		func() error { return d.Fill(st7789.Black) },
		func() error { return draw.Outline(d, r, st7789.White) },
		func() error { return d.DrawLine(0, 0, w-1, h-1, st7789.Red) },
		func() error { return d.DrawLine(w-1, 0, 0, h-1, st7789.Green) },
		func() error { return d.DrawRectangle(w/4, h/4, w/2, h/8, st7789.Blue) },
		func() error { return draw.RoundedRectangle(d, image.Rect(w/4, h/2, w*3/4, h*3/4), 8, st7789.Yellow) },
		func() error { return draw.FilledCircle(d, w/2, h*7/8, h/16, st7789.Magenta) },
		func() error { return draw.Circle(d, w/2, h*7/8, h/12, st7789.Cyan) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	band := image.NewRGBA(image.Rect(0, 0, w-8, 6))
	for x := 0; x < band.Rect.Dx(); x++ {
		v := uint8(x * 0xff / band.Rect.Dx())
		for y := 0; y < band.Rect.Dy(); y++ {
			band.SetRGBA(x, y, color.RGBA{R: v, G: 0x80, B: 0xff - v, A: 0xff})
		}
	}
	canvas := d.Canvas()
	draw.Draw(canvas, band.Rect.Add(image.Pt(4, h-10)), band, image.Point{}, draw.Src)
	if err := canvas.Err(); err != nil {
		return err
	}

	_, err := d.DrawText(font, d.String(), 4, 4, st7789.White, st7789.Black)
	return err
}

var fillCmd = &cobra.Command{
	Use:   "fill <color>",
	Short: "fill the display with a color name or 16-bit value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		return withDisplay(func(d *st7789.Dev) error {
			return d.Fill(c)
		})
	},
}

var textCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "draw text in the built-in 7x13 font",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return drawText(glyph.Basic(), args[0])
	},
}

var fontCmd = &cobra.Command{
	Use:   "font <file.ttf> <text>",
	Short: "draw text in a TrueType font",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		font, err := glyph.FromTrueType(data, sizeFlag, ' ', '~'-' '+1)
		if err != nil {
			return err
		}
		return drawText(font, args[1])
	},
}

func drawText(src glyph.Source, text string) error {
	fg, err := parseColor(fgFlag)
	if err != nil {
		return err
	}
	bg, err := parseColor(bgFlag)
	if err != nil {
		return err
	}
	return withDisplay(func(d *st7789.Dev) error {
		_, err := d.DrawText(src, text, xFlag, yFlag, fg, bg)
		return err
	})
}

var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "show an image scaled to fit the display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		src, format, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		fmt.Printf("decoded %s image of %s\n", format, src.Bounds().Size())

		return withDisplay(func(d *st7789.Dev) error {
			dst := image.NewRGBA(fit(src.Bounds().Size(), d.Bounds().Size()))
			xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
			var (
				size = d.Bounds().Size()
				x    = (size.X - dst.Bounds().Dx()) / 2
				y    = (size.Y - dst.Bounds().Dy()) / 2
			)
			return d.DrawImage(x, y, dst)
		})
	},
}

// fit returns the largest rectangle with the aspect ratio of src inside bounds.
func fit(src, bounds image.Point) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}
	w, h := bounds.X, src.Y*bounds.X/src.X
	if h > bounds.Y {
		w, h = src.X*bounds.Y/src.Y, bounds.Y
	}
	return image.Rect(0, 0, w, h)
}
