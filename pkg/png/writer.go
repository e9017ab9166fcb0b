package png

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/jpfielding/pngen.go/pkg/util"
)

// WriteFile encodes img to path. Missing parent directories are created and
// the file only appears at path once the whole stream has been written.
func WriteFile(path string, ct ColorType, img Image) (int64, error) {
	var n int64
	err := util.AtomicWriteFile(path, 0o644, func(w io.Writer) error {
		var err error
		n, err = Write(w, ct, img)
		return err
	})
	if err != nil {
		return n, err
	}
	slog.Debug("png: file written", "path", path, "bytes", n, "width", img.Width(), "height", img.Height(), "colorType", ct.String())
	return n, nil
}

// Write encodes img as a PNG stream: signature, IHDR, one IDAT, IEND.
// The image is validated and compressed before anything reaches w, so an
// encoding error leaves w untouched. Errors from w abort the stream as is.
func Write(w io.Writer, ct ColorType, img Image) (int64, error) {
	channels, err := ct.Channels()
	if err != nil {
		return 0, err
	}
	raw, err := EncodeScanlines(img, channels)
	if err != nil {
		return 0, err
	}
	idat, err := Compress(raw)
	if err != nil {
		return 0, err
	}

	cw := &CountingWriter{Writer: w}

	// 1. Signature
	if _, err := io.WriteString(cw, Signature); err != nil {
		return cw.Count.Load(), fmt.Errorf("png: writing signature: %w", err)
	}

	// 2. IHDR
	if _, err := WriteChunk(cw, TypeIHDR, headerPayload(img.Width(), img.Height(), ct)); err != nil {
		return cw.Count.Load(), err
	}

	// 3. IDAT, never split
	if _, err := WriteChunk(cw, TypeIDAT, idat); err != nil {
		return cw.Count.Load(), err
	}

	// 4. IEND
	if _, err := WriteChunk(cw, TypeIEND, nil); err != nil {
		return cw.Count.Load(), err
	}

	slog.Debug("png: encoded", "width", img.Width(), "height", img.Height(), "raw", len(raw), "idat", len(idat))
	return cw.Count.Load(), nil
}

func headerPayload(width, height int, ct ColorType) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = BitDepth
	ihdr[9] = byte(ct)
	ihdr[10] = 0 // compression method
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // interlace method
	return ihdr
}

// CountingWriter tracks the number of bytes the underlying writer accepted,
// including those of a short write that failed
type CountingWriter struct {
	Count  atomic.Int64
	Writer io.Writer
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.Writer.Write(p)
	c.Count.Add(int64(n))
	return n, err
}
