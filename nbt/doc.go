// Package nbt implements the NBT (Named Binary Tag) serialization format
// used by Minecraft schematic files.
//
// # Overview
//
// NBT is a recursive, strongly-typed, length-prefixed binary tree format.
// This package provides an in-memory tag value model, a big-endian binary
// codec, and a gzip compression envelope that auto-detects compressed input.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Value: the closed interface implemented by every tag variant
//   - Byte, Short, Int, Long, Float, Double: fixed-width scalar tags
//   - ByteArray, IntArray, LongArray: fixed-width integer sequences
//   - String: UTF-8 text, at most 65535 encoded bytes
//   - List: an ordered sequence of unnamed values of a single tag type
//   - Compound: an insertion-ordered mapping from names to values
//   - NamedTag: the (name, value) pair forming the root of a file
//
// # File Structure
//
// A file consists of exactly one named tag whose value is a Compound:
//
//	[type byte] [u16 name length] [name bytes] [payload...]
//
// All multi-byte integers are big-endian two's complement; floats are
// IEEE-754. See the decoder documentation for the per-type payload grammar.
//
// # Decoding and Encoding
//
//	root, err := nbt.DecodeCompressed(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := nbt.EncodeCompressed(root)
//
// Decode fails with ErrMalformed on structurally invalid input; Encode
// validates the entire tree before emitting any bytes, so a failed encode
// never produces partial output.
//
// # Thread Safety
//
// Values are not synchronized. A tree that is no longer being mutated may
// be read from multiple goroutines concurrently.
package nbt
