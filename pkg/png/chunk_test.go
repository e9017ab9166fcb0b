package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChunk_IEND(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteChunk(&buf, TypeIEND, nil)
	require.NoError(t, err)

	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, int64(len(want)), n)
}

func TestWriteChunk_Layout(t *testing.T) {
	payload := []byte("some payload bytes")
	var buf bytes.Buffer
	_, err := WriteChunk(&buf, "tEXt", payload)
	require.NoError(t, err)

	out := buf.Bytes()
	require.Len(t, out, 12+len(payload))
	assert.Equal(t, uint32(len(payload)), binary.BigEndian.Uint32(out[0:4]))
	assert.Equal(t, "tEXt", string(out[4:8]))
	assert.Equal(t, payload, out[8:8+len(payload)])
	assert.Equal(t, Checksum(0, out[4:8+len(payload)]), binary.BigEndian.Uint32(out[8+len(payload):]))
}

func TestWriteChunk_BadType(t *testing.T) {
	for _, typ := range []string{"", "IDA", "IDATX"} {
		var buf bytes.Buffer
		_, err := WriteChunk(&buf, typ, []byte{1})
		assert.ErrorIs(t, err, ErrChunkType, "type %q", typ)
		assert.Zero(t, buf.Len())
	}
}

func TestWriteChunk_SinkFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	tests := []struct {
		name  string
		limit int
		want  int64
	}{
		{"Header", 0, 0},
		{"Payload", 8, 8},
		{"CRC", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &failWriter{limit: tt.limit, err: errDisk}
			n, err := WriteChunk(w, TypeIDAT, []byte{1, 2, 3, 4})
			require.ErrorIs(t, err, errDisk)
			assert.Equal(t, tt.want, n)
		})
	}
}

// failWriter accepts whole writes until limit bytes would be exceeded
type failWriter struct {
	limit int
	n     int
	err   error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, w.err
	}
	w.n += len(p)
	return len(p), nil
}
