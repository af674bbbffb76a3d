package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestEncode_SignatureAndIHDR(t *testing.T) {
	var buf bytes.Buffer
	pix := make([]byte, 3*2*4)
	if err := Encode(&buf, 3, 2, pix); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	out := buf.Bytes()

	wantSig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.Equal(out[:8], wantSig) {
		t.Errorf("signature = % X, want % X", out[:8], wantSig)
	}

	// First chunk: 13-byte IHDR.
	if got := binary.BigEndian.Uint32(out[8:12]); got != 13 {
		t.Fatalf("IHDR length = %d, want 13", got)
	}
	if got := string(out[12:16]); got != "IHDR" {
		t.Fatalf("first chunk type = %q, want IHDR", got)
	}
	if got := binary.BigEndian.Uint32(out[16:20]); got != 3 {
		t.Errorf("IHDR width = %d, want 3", got)
	}
	if got := binary.BigEndian.Uint32(out[20:24]); got != 2 {
		t.Errorf("IHDR height = %d, want 2", got)
	}
	// Bit depth 8, color type 6, compression 0, filter 0, interlace 0.
	if want := []byte{8, 6, 0, 0, 0}; !bytes.Equal(out[24:29], want) {
		t.Errorf("IHDR tail = % X, want % X", out[24:29], want)
	}
}

func TestEncode_IENDTrailerCRC(t *testing.T) {
	// The IEND chunk is fixed: zero length, type, and the well-known CRC
	// AE 42 60 82. A decoder rejects the file if this is off by a bit.
	var buf bytes.Buffer
	if err := Encode(&buf, 1, 1, make([]byte, 4)); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	out := buf.Bytes()
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if got := out[len(out)-12:]; !bytes.Equal(got, want) {
		t.Errorf("IEND trailer = % X, want % X", got, want)
	}

	if got := crc32.ChecksumIEEE([]byte("IEND")); got != 0xAE426082 {
		t.Errorf("crc32(\"IEND\") = %#08x, want 0xae426082", got)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	// 2x2, four distinct opaque colors; a conformant decoder must hand back
	// exactly the bytes we put in.
	colors := []color.NRGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {79, 70, 229, 255},
	}
	pix := make([]byte, 0, 16)
	for _, c := range colors {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, 2, 2, pix); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("stdlib decoder rejected output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("decoded bounds = %v, want 2x2", b)
	}
	for i, want := range colors {
		x, y := i%2, i/2
		got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		if got != want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
		}
	}
}

func TestEncode_ChunkCRCsVerify(t *testing.T) {
	var buf bytes.Buffer
	pix := make([]byte, 4*4*4)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	if err := Encode(&buf, 4, 4, pix); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	// Walk every chunk and recompute its CRC.
	out := buf.Bytes()[8:]
	for len(out) > 0 {
		length := binary.BigEndian.Uint32(out[:4])
		body := out[4 : 8+length] // type + payload
		wantCRC := binary.BigEndian.Uint32(out[8+length : 12+length])
		if got := crc32.ChecksumIEEE(body); got != wantCRC {
			t.Errorf("chunk %s: CRC = %#08x, want %#08x", body[:4], got, wantCRC)
		}
		out = out[12+length:]
	}
}

func TestEncode_BufferSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		bufLen        int
	}{
		{"short buffer", 2, 2, 15},
		{"long buffer", 2, 2, 17},
		{"empty buffer", 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(&bytes.Buffer{}, tt.width, tt.height, make([]byte, tt.bufLen))
			if !errors.Is(err, ErrBufferSizeMismatch) {
				t.Errorf("Encode error = %v, want ErrBufferSizeMismatch", err)
			}
		})
	}
}

func TestEncode_InvalidDimensions(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 1}, {1, 0}, {-2, 3}} {
		if err := Encode(&bytes.Buffer{}, d.w, d.h, nil); err == nil {
			t.Errorf("Encode(%d, %d) = nil error, want failure", d.w, d.h)
		}
	}
}

func TestEncode_DecodesAsOpaqueRGBA(t *testing.T) {
	// Sanity check against the stdlib decoder's image type for color type 6.
	var buf bytes.Buffer
	pix := bytes.Repeat([]byte{10, 20, 30, 255}, 9)
	if err := Encode(&buf, 3, 3, pix); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("decoded image type = %T, want *image.NRGBA", img)
	}
}
