package nbt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Schematic files are conventionally gzip-wrapped, but the codec accepts
// raw streams too: the reader sniffs the gzip magic and passes anything
// else through unchanged.

var gzipMagic = []byte{0x1f, 0x8b}

// IsCompressed reports whether data starts with the gzip magic bytes.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

// DecodeCompressed decodes a named tag from data, transparently
// decompressing gzip-wrapped input first.
func DecodeCompressed(data []byte) (NamedTag, error) {
	return DecodeCompressedWithLimits(data, DefaultLimits())
}

// DecodeCompressedWithLimits is DecodeCompressed with caller-supplied
// decoder limits.
func DecodeCompressedWithLimits(data []byte, lim Limits) (NamedTag, error) {
	if IsCompressed(data) {
		raw, err := gunzip(data)
		if err != nil {
			return NamedTag{}, fmt.Errorf("gzip envelope: %v: %w", err, ErrMalformed)
		}
		data = raw
	}
	return DecodeWithLimits(data, lim)
}

// EncodeCompressed encodes a named tag and wraps the result in a gzip
// stream, the form existing tools expect for .schem files.
func EncodeCompressed(t NamedTag) ([]byte, error) {
	raw, err := Encode(t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("gzip envelope: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip envelope: %w", err)
	}
	return buf.Bytes(), nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
