// Package png provides a native Go encoder for a small subset of PNG.
//
// The encoder writes 8-bit truecolour and truecolour-with-alpha images as a
// signature followed by exactly one IHDR, one IDAT and one IEND chunk:
//   - Scanlines are emitted with filter type 0 (none)
//   - IDAT is a single zlib stream at the default compression level
//   - No interlacing, palettes or ancillary chunks
//
// Basic usage:
//
//	img, err := png.NewImage(4, 2, png.Truecolour, png.RGB(0, 0, 0))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := png.WriteFile("out/black.png", png.Truecolour, img); err != nil {
//		log.Fatal(err)
//	}
package png

import (
	"fmt"
	"strings"
)

// Signature is the fixed 8 byte preamble of every PNG stream
const Signature = "\x89PNG\r\n\x1a\n"

// Chunk types written by the encoder
const (
	TypeIHDR = "IHDR"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// BitDepth is the only sample depth the encoder produces
const BitDepth = 8

// ColorType is the IHDR colour type
type ColorType uint8

const (
	Greyscale           ColorType = 0
	Truecolour          ColorType = 2
	IndexedColour       ColorType = 3
	GreyscaleWithAlpha  ColorType = 4
	TruecolourWithAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case Greyscale:
		return "Greyscale"
	case Truecolour:
		return "Truecolour"
	case IndexedColour:
		return "IndexedColour"
	case GreyscaleWithAlpha:
		return "GreyscaleWithAlpha"
	case TruecolourWithAlpha:
		return "TruecolourWithAlpha"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(c))
	}
}

// Channels returns the number of 8-bit samples per pixel.
// Only Truecolour and TruecolourWithAlpha are supported.
func (c ColorType) Channels() (int, error) {
	switch c {
	case Truecolour:
		return 3, nil
	case TruecolourWithAlpha:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedColorType, c)
	}
}

// ParseColorType maps a CLI style name to a supported ColorType
func ParseColorType(s string) (ColorType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb", "truecolour", "truecolor":
		return Truecolour, nil
	case "rgba", "truecolour-alpha", "truecolor-alpha":
		return TruecolourWithAlpha, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedColorType, s)
	}
}
