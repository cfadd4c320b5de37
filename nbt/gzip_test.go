package nbt

import (
	"testing"
)

func TestCompressedRoundTrip(t *testing.T) {
	orig := buildRichTree()
	data, err := EncodeCompressed(orig)
	if err != nil {
		t.Fatalf("EncodeCompressed: %v", err)
	}
	if !IsCompressed(data) {
		t.Fatalf("output should carry the gzip magic")
	}
	back, err := DecodeCompressed(data)
	if err != nil {
		t.Fatalf("DecodeCompressed: %v", err)
	}
	if !orig.Equal(back) {
		t.Fatalf("compressed round trip lost data")
	}
}

func TestDecodeCompressedPassThrough(t *testing.T) {
	// A raw stream without the gzip magic decodes as-is.
	orig := buildRichTree()
	raw, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := DecodeCompressed(raw)
	if err != nil {
		t.Fatalf("DecodeCompressed: %v", err)
	}
	if !orig.Equal(back) {
		t.Fatalf("pass-through round trip lost data")
	}
}

func TestDecodeCompressedBadGzip(t *testing.T) {
	data := []byte{0x1f, 0x8b, 0xff, 0xff, 0xff}
	if _, err := DecodeCompressed(data); err == nil {
		t.Fatalf("corrupt gzip stream must fail")
	}
}
