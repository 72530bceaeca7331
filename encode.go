package brandkit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
)

const (
	pngSignatureLen = 8

	// IHDR is always the first chunk: length, type, 13 data bytes, CRC.
	ihdrChunkLen = 4 + 4 + 13 + 4

	inchesPerMetre = 1 / 0.0254
)

var errShortPNG = errors.New("brandkit: encoder produced a truncated PNG")

// EncodePNG writes img to w as a PNG whose pHYs chunk records dpi, so
// viewers and print tools pick up the intended physical size. A dpi of zero
// or less omits the chunk.
func EncodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return err
	}
	if !(dpi > 0) {
		_, err := w.Write(buf.Bytes())
		return err
	}

	data := buf.Bytes()
	head := pngSignatureLen + ihdrChunkLen
	if len(data) < head {
		return errShortPNG
	}

	if _, err := w.Write(data[:head]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(data[head:])
	return err
}

// physChunk builds a pHYs chunk with square pixels in pixels per metre.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi * inchesPerMetre))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
