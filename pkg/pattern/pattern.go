// Package pattern generates test images for the png encoder
package pattern

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jpfielding/pngen.go/pkg/png"
)

// Default checkerboard colours
var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.NRGBA{A: 0xff}
)

// Checkerboard returns a width x height board with squares rows of squares
// stacked vertically. The square side is height/squares, not rounded, so
// boards whose height is not a multiple of squares have uneven edges.
// The top-left square is off.
func Checkerboard(width, height, squares int, ct png.ColorType, on, off color.Color) (png.Image, error) {
	if squares <= 0 {
		return nil, fmt.Errorf("pattern: squares must be positive, got %d", squares)
	}
	onPx, err := pixel(on, ct)
	if err != nil {
		return nil, err
	}
	offPx, err := pixel(off, ct)
	if err != nil {
		return nil, err
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	side := float64(height) / float64(squares)
	band := func(i int) bool {
		return math.Mod(float64(i), 2*side) >= side
	}

	img := make(png.Image, height)
	for y := range img {
		row := make([]png.Pixel, width)
		odd := band(y)
		for x := range row {
			if odd != band(x) {
				row[x] = clone(onPx)
			} else {
				row[x] = clone(offPx)
			}
		}
		img[y] = row
	}
	return img, nil
}

// Solid returns a width x height image of a single colour
func Solid(width, height int, ct png.ColorType, c color.Color) (png.Image, error) {
	px, err := pixel(c, ct)
	if err != nil {
		return nil, err
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return png.NewImage(width, height, ct, px)
}

// ParseColor accepts an SVG colour name (black, white, cornflowerblue, ...),
// #rrggbb or #rrggbbaa
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("pattern: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("pattern: invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pattern: invalid dimensions %dx%d", width, height)
	}
	return nil
}

// pixel converts c to the channel layout of ct
func pixel(c color.Color, ct png.ColorType) (png.Pixel, error) {
	channels, err := ct.Channels()
	if err != nil {
		return nil, err
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if channels == 3 {
		return png.RGB(n.R, n.G, n.B), nil
	}
	return png.RGBA(n.R, n.G, n.B, n.A), nil
}

func clone(px png.Pixel) png.Pixel {
	return append(png.Pixel(nil), px...)
}
