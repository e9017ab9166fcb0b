package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Chunk is one length|type|payload|crc record of a PNG stream
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// Header is the decoded IHDR payload
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   ColorType
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// maxChunkLen is the largest length PNG allows (2^31-1)
const maxChunkLen = 0x7fffffff

// ReadChunks reads the signature and every chunk up to and including IEND,
// verifying each CRC
func ReadChunks(r io.Reader) ([]Chunk, error) {
	sig := make([]byte, len(Signature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return nil, fmt.Errorf("png: reading signature: %w", err)
	}
	if string(sig) != Signature {
		return nil, ErrSignature
	}

	var chunks []Chunk
	for {
		c, err := readChunk(r)
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, c)
		if c.Type == TypeIEND {
			return chunks, nil
		}
	}
}

func readChunk(r io.Reader) (Chunk, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Chunk{}, fmt.Errorf("png: missing IEND: %w", io.ErrUnexpectedEOF)
		}
		return Chunk{}, fmt.Errorf("png: reading chunk header: %w", err)
	}
	length := binary.BigEndian.Uint32(hdr[:4])
	typ := string(hdr[4:8])
	if length > maxChunkLen {
		return Chunk{}, fmt.Errorf("png: %s chunk length %d exceeds limit", typ, length)
	}

	// grow with the bytes present, not the declared length
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(length)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Chunk{}, fmt.Errorf("png: reading %s payload: %w", typ, err)
	}
	data := buf.Bytes()
	var tail [4]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return Chunk{}, fmt.Errorf("png: reading %s crc: %w", typ, err)
	}

	c := Chunk{Type: typ, Data: data, CRC: binary.BigEndian.Uint32(tail[:])}
	if want := Checksum(Checksum(0, hdr[4:8]), data); c.CRC != want {
		return c, fmt.Errorf("%w: %s has %08x, computed %08x", ErrChecksum, typ, c.CRC, want)
	}
	return c, nil
}

// ParseHeader decodes an IHDR chunk
func ParseHeader(c Chunk) (Header, error) {
	if c.Type != TypeIHDR {
		return Header{}, fmt.Errorf("png: expected IHDR, got %s", c.Type)
	}
	if len(c.Data) != 13 {
		return Header{}, fmt.Errorf("png: bad IHDR length %d", len(c.Data))
	}
	return Header{
		Width:       binary.BigEndian.Uint32(c.Data[0:4]),
		Height:      binary.BigEndian.Uint32(c.Data[4:8]),
		BitDepth:    c.Data[8],
		ColorType:   ColorType(c.Data[9]),
		Compression: c.Data[10],
		Filter:      c.Data[11],
		Interlace:   c.Data[12],
	}, nil
}

// Info summarizes a stream produced by this encoder
type Info struct {
	Header Header
	Chunks []Chunk
	// RawLen is the inflated size of all IDAT payloads
	RawLen int
	// ExpectedRawLen is H*(1+W*channels) for the header, 0 if the colour type is unsupported
	ExpectedRawLen int
}

// Inspect reads a whole stream and decodes its header and image data size
func Inspect(r io.Reader) (*Info, error) {
	chunks, err := ReadChunks(r)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 || chunks[0].Type != TypeIHDR {
		return nil, errors.New("png: first chunk is not IHDR")
	}
	hdr, err := ParseHeader(chunks[0])
	if err != nil {
		return nil, err
	}

	info := &Info{Header: hdr, Chunks: chunks}
	var idat []byte
	for _, c := range chunks {
		if c.Type == TypeIDAT {
			idat = append(idat, c.Data...)
		}
	}
	raw, err := Decompress(idat)
	if err != nil {
		return info, err
	}
	info.RawLen = len(raw)
	if channels, err := hdr.ColorType.Channels(); err == nil && hdr.BitDepth == BitDepth {
		info.ExpectedRawLen = ScanlineLen(int(hdr.Width), int(hdr.Height), channels)
	}
	return info, nil
}

// ChunkTypes lists the chunk types in stream order
func (i *Info) ChunkTypes() []string {
	types := make([]string, len(i.Chunks))
	for n, c := range i.Chunks {
		types[n] = c.Type
	}
	return types
}
