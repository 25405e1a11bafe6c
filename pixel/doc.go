// Package pixel implements 16-bit packed colors and images for TFT displays.
//
// The colors and images are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
