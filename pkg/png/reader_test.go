package png

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, ct ColorType, img Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	_, err := Write(&buf, ct, img)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadChunks_CRCs(t *testing.T) {
	data := encoded(t, TruecolourWithAlpha, gradient(12, 12, TruecolourWithAlpha))

	chunks, err := ReadChunks(bytes.NewReader(data))
	require.NoError(t, err)
	for _, c := range chunks {
		assert.Equal(t, Checksum(Checksum(0, []byte(c.Type)), c.Data), c.CRC, c.Type)
	}
}

func TestReadChunks_BadSignature(t *testing.T) {
	data := encoded(t, Truecolour, gradient(2, 2, Truecolour))
	data[1] = 'Q'

	_, err := ReadChunks(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrSignature)
}

func TestReadChunks_CorruptPayload(t *testing.T) {
	data := encoded(t, Truecolour, gradient(2, 2, Truecolour))
	// first IHDR payload byte: signature + length + type
	data[8+4+4] ^= 0x01

	_, err := ReadChunks(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestReadChunks_Truncated(t *testing.T) {
	data := encoded(t, Truecolour, gradient(2, 2, Truecolour))

	_, err := ReadChunks(bytes.NewReader(data[:len(data)-12]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "stream without IEND")

	_, err = ReadChunks(bytes.NewReader(data[:len(data)-2]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "IEND without crc")
}

func TestReadChunks_OversizedLength(t *testing.T) {
	data := []byte(Signature + "\x7f\xff\xff\xffIHDR\x00")

	chunks, err := ReadChunks(bytes.NewReader(data))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "reading IHDR payload")
	assert.Empty(t, chunks)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	ReadChunks(bytes.NewReader(data))
	runtime.ReadMemStats(&after)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "allocation must follow the bytes present")
}

func TestParseHeader(t *testing.T) {
	_, err := ParseHeader(Chunk{Type: TypeIDAT})
	assert.Error(t, err)

	_, err = ParseHeader(Chunk{Type: TypeIHDR, Data: make([]byte, 12)})
	assert.Error(t, err)

	hdr, err := ParseHeader(Chunk{Type: TypeIHDR, Data: headerPayload(640, 480, TruecolourWithAlpha)})
	require.NoError(t, err)
	assert.Equal(t, Header{Width: 640, Height: 480, BitDepth: 8, ColorType: TruecolourWithAlpha}, hdr)
}
