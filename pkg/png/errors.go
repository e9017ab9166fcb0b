package png

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage is returned for an image with no rows
	ErrEmptyImage = errors.New("png: empty image")
	// ErrMalformedRow is returned when a row or pixel disagrees with the image width or colour type
	ErrMalformedRow = errors.New("png: malformed row")
	// ErrUnsupportedColorType is returned for colour types the encoder does not implement
	ErrUnsupportedColorType = errors.New("png: unsupported color type")
	// ErrChunkType is returned when a chunk type is not exactly 4 bytes
	ErrChunkType = errors.New("png: chunk type must be 4 bytes")
	// ErrSignature is returned by the reader when the stream does not start with Signature
	ErrSignature = errors.New("png: invalid signature")
	// ErrChecksum is returned by the reader when a chunk CRC does not match
	ErrChecksum = errors.New("png: chunk checksum mismatch")
)

// RowError describes the first row (and pixel, if any) that broke the
// rectangular image invariant
type RowError struct {
	Row    int
	Column int // -1 when the row length itself is wrong
	Msg    string
}

func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("%v: row %d: %s", ErrMalformedRow, e.Row, e.Msg)
	}
	return fmt.Sprintf("%v: row %d, pixel %d: %s", ErrMalformedRow, e.Row, e.Column, e.Msg)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}
