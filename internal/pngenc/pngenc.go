// Package pngenc is a minimal PNG encoder for 8-bit RGBA buffers. It emits
// the signature plus three chunks (IHDR, one zlib-compressed IDAT with filter
// type None on every scanline, IEND) and depends only on the generic zlib
// compressor and the standard CRC-32 — no PNG library.
package pngenc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// ErrBufferSizeMismatch is returned when the pixel buffer length does not
// match width*height*4. This is a programming error in the caller, never a
// recoverable condition.
var ErrBufferSizeMismatch = errors.New("pngenc: buffer size mismatch")

var signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Encode writes pix as a truecolor-with-alpha PNG. pix must hold exactly
// width*height*4 bytes of row-major RGBA data.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pngenc: invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d (want %d)",
			ErrBufferSizeMismatch, len(pix), width, height, width*height*4)
	}

	if _, err := w.Write(signature); err != nil {
		return fmt.Errorf("pngenc: write signature: %w", err)
	}

	// IHDR: dimensions, bit depth 8, color type 6 (truecolor+alpha), no
	// compression/filter/interlace extensions.
	var ihdr bytes.Buffer
	binary.Write(&ihdr, binary.BigEndian, uint32(width))
	binary.Write(&ihdr, binary.BigEndian, uint32(height))
	ihdr.Write([]byte{8, 6, 0, 0, 0})
	if err := writeChunk(w, "IHDR", ihdr.Bytes()); err != nil {
		return err
	}

	// Scanlines: a filter-type byte 0 (None) before each row of raw pixels,
	// the whole stream wrapped in one zlib-compressed IDAT.
	stride := width * 4
	raw := make([]byte, 0, height*(1+stride))
	for y := 0; y < height; y++ {
		raw = append(raw, 0)
		raw = append(raw, pix[y*stride:(y+1)*stride]...)
	}
	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("pngenc: zlib: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("pngenc: compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("pngenc: compress scanlines: %w", err)
	}
	if err := writeChunk(w, "IDAT", compressed.Bytes()); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

// writeChunk emits one PNG chunk: big-endian payload length, 4-byte type,
// payload, then CRC-32 (zlib polynomial) over type+payload.
func writeChunk(w io.Writer, chunkType string, data []byte) error {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(chunkType)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	binary.Write(&buf, binary.BigEndian, crc.Sum32())

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("pngenc: write %s chunk: %w", chunkType, err)
	}
	return nil
}
