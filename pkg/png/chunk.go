package png

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

// WriteChunk frames payload as a PNG chunk of type typ:
// length (BE u32), type, payload, CRC-32 of type and payload (BE u32).
func WriteChunk(w io.Writer, typ string, payload []byte) (int64, error) {
	if len(typ) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrChunkType, typ)
	}
	cw := &CountingWriter{Writer: w}

	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
	copy(buf[4:], typ)
	if _, err := cw.Write(buf[:]); err != nil {
		return cw.Count.Load(), fmt.Errorf("png: writing %s header: %w", typ, err)
	}
	if _, err := cw.Write(payload); err != nil {
		return cw.Count.Load(), fmt.Errorf("png: writing %s payload: %w", typ, err)
	}

	crc := Checksum(Checksum(0, buf[4:]), payload)
	binary.BigEndian.PutUint32(buf[:4], crc)
	if _, err := cw.Write(buf[:4]); err != nil {
		return cw.Count.Load(), fmt.Errorf("png: writing %s crc: %w", typ, err)
	}

	slog.Debug("png: chunk written", "type", typ, "length", len(payload), "crc", fmt.Sprintf("%08x", crc))
	return cw.Count.Load(), nil
}
