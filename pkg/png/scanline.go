package png

import "fmt"

// filterNone is the scanline filter type byte for unfiltered rows
const filterNone = 0

// ScanlineLen is the size of the raw scanline stream for a width x height
// image with the given samples per pixel
func ScanlineLen(width, height, channels int) int {
	return height * (1 + width*channels)
}

// EncodeScanlines serializes img row by row, each row prefixed with a
// filter-none byte followed by the channel bytes of its pixels.
func EncodeScanlines(img Image, channels int) ([]byte, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d channels per pixel", ErrUnsupportedColorType, channels)
	}
	if err := img.validate(channels); err != nil {
		return nil, err
	}

	out := make([]byte, 0, ScanlineLen(img.Width(), img.Height(), channels))
	for _, row := range img {
		out = append(out, filterNone)
		for _, px := range row {
			out = append(out, px...)
		}
	}
	return out, nil
}
