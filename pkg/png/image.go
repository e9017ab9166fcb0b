package png

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel holds the 8-bit channel values of one pixel, R,G,B[,A]
type Pixel []uint8

// RGB returns a 3 channel pixel
func RGB(r, g, b uint8) Pixel {
	return Pixel{r, g, b}
}

// RGBA returns a 4 channel pixel
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{r, g, b, a}
}

// Image is a row-major grid of pixels. All rows must have the same length
// and every pixel must carry the channel count of the colour type it is
// encoded with; Validate checks both.
type Image [][]Pixel

// Width is the length of the first row
func (im Image) Width() int {
	if len(im) == 0 {
		return 0
	}
	return len(im[0])
}

// Height is the number of rows
func (im Image) Height() int {
	return len(im)
}

// Validate reports whether im can be encoded with colour type ct
func (im Image) Validate(ct ColorType) error {
	channels, err := ct.Channels()
	if err != nil {
		return err
	}
	return im.validate(channels)
}

func (im Image) validate(channels int) error {
	if len(im) == 0 {
		return ErrEmptyImage
	}
	width := len(im[0])
	for y, row := range im {
		if len(row) != width {
			return &RowError{Row: y, Column: -1, Msg: fmt.Sprintf("has %d pixels, want %d", len(row), width)}
		}
		for x, px := range row {
			if len(px) != channels {
				return &RowError{Row: y, Column: x, Msg: fmt.Sprintf("has %d channels, want %d", len(px), channels)}
			}
		}
	}
	return nil
}

// NewImage returns a width x height image filled with copies of fill.
// A nil fill yields zeroed pixels of the colour type's channel count.
func NewImage(width, height int, ct ColorType, fill Pixel) (Image, error) {
	channels, err := ct.Channels()
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("png: invalid dimensions %dx%d", width, height)
	}
	if fill != nil && len(fill) != channels {
		return nil, fmt.Errorf("%w: fill has %d channels, want %d", ErrMalformedRow, len(fill), channels)
	}
	im := make(Image, height)
	for y := range im {
		row := make([]Pixel, width)
		for x := range row {
			px := make(Pixel, channels)
			copy(px, fill)
			row[x] = px
		}
		im[y] = row
	}
	return im, nil
}

// FromImage converts src into an Image of colour type ct. Truecolour drops
// the alpha channel of the non-premultiplied colour.
func FromImage(src image.Image, ct ColorType) (Image, error) {
	channels, err := ct.Channels()
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	im := make(Image, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]Pixel, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if channels == 3 {
				row[x] = RGB(c.R, c.G, c.B)
			} else {
				row[x] = RGBA(c.R, c.G, c.B, c.A)
			}
		}
		im[y] = row
	}
	return im, nil
}

// ToNRGBA converts im to a stdlib image. 3 channel pixels are opaque.
func (im Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, im.Width(), im.Height()))
	for y, row := range im {
		for x, px := range row {
			c := color.NRGBA{A: 0xff}
			switch len(px) {
			case 4:
				c.A = px[3]
				fallthrough
			case 3:
				c.R, c.G, c.B = px[0], px[1], px[2]
			}
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
