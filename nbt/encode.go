package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/sudolifeagain/mc-schematic-converter/internal/tagpath"
)

// MaxStringBytes is the largest UTF-8 encoding a String or name may have,
// bounded by the 16-bit length prefix.
const MaxStringBytes = math.MaxUint16

// Encode serializes a named tag to its binary form. The whole tree is
// validated before any bytes are produced, so a failed encode never emits
// partial output. The root value must be a *Compound.
func Encode(t NamedTag) ([]byte, error) {
	var root tagpath.Path
	if t.Value == nil || t.Value.Tag() != TagCompound {
		return nil, fmt.Errorf("%s: root value must be a Compound: %w", root, ErrInvalidValue)
	}
	if len(t.Name) > MaxStringBytes {
		return nil, fmt.Errorf("%s: root name of %d bytes: %w", root, len(t.Name), ErrValueTooLarge)
	}
	if err := validate(t.Value, root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte(byte(TagCompound))
	writeString(&buf, t.Name)
	writePayload(&buf, t.Value)
	return buf.Bytes(), nil
}

// validate walks the tree checking every invariant the encoder relies on:
// list homogeneity, string and name length budgets, and sequence counts
// that fit the signed 32-bit prefix.
func validate(v Value, p tagpath.Path) error {
	switch x := v.(type) {
	case String:
		if len(x) > MaxStringBytes {
			return fmt.Errorf("%s: string of %d bytes: %w", p, len(x), ErrValueTooLarge)
		}
	case ByteArray:
		if len(x) > math.MaxInt32 {
			return fmt.Errorf("%s: array of %d elements: %w", p, len(x), ErrValueTooLarge)
		}
	case IntArray:
		if len(x) > math.MaxInt32 {
			return fmt.Errorf("%s: array of %d elements: %w", p, len(x), ErrValueTooLarge)
		}
	case LongArray:
		if len(x) > math.MaxInt32 {
			return fmt.Errorf("%s: array of %d elements: %w", p, len(x), ErrValueTooLarge)
		}
	case *List:
		if x.Len() > math.MaxInt32 {
			return fmt.Errorf("%s: list of %d elements: %w", p, x.Len(), ErrValueTooLarge)
		}
		if x.elem == TagEnd && x.Len() > 0 {
			return fmt.Errorf("%s: non-empty list of End: %w", p, ErrInvalidValue)
		}
		for i, it := range x.items {
			if it == nil {
				return fmt.Errorf("%s: nil element: %w", p.Index(i), ErrInvalidValue)
			}
			if got := it.Tag(); got != x.elem {
				return fmt.Errorf("%s: %s element in list of %s: %w", p.Index(i), got, x.elem, ErrInvalidValue)
			}
			if err := validate(it, p.Index(i)); err != nil {
				return err
			}
		}
	case *Compound:
		for _, name := range x.names {
			if len(name) > MaxStringBytes {
				return fmt.Errorf("%s: entry name of %d bytes: %w", p, len(name), ErrValueTooLarge)
			}
			child := x.index[name]
			if child == nil {
				return fmt.Errorf("%s: nil value: %w", p.Field(name), ErrInvalidValue)
			}
			if child.Tag() == TagEnd {
				return fmt.Errorf("%s: End is not a storable value: %w", p.Field(name), ErrInvalidValue)
			}
			if err := validate(child, p.Field(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writePayload emits the payload of v. The tree has already been
// validated, so writes cannot fail.
func writePayload(buf *bytes.Buffer, v Value) {
	switch x := v.(type) {
	case Byte:
		buf.WriteByte(byte(x))
	case Short:
		writeU16(buf, uint16(x))
	case Int:
		writeU32(buf, uint32(x))
	case Long:
		writeU64(buf, uint64(x))
	case Float:
		writeU32(buf, math.Float32bits(float32(x)))
	case Double:
		writeU64(buf, math.Float64bits(float64(x)))
	case String:
		writeString(buf, string(x))
	case ByteArray:
		writeU32(buf, uint32(len(x)))
		buf.Write(x)
	case IntArray:
		writeU32(buf, uint32(len(x)))
		for _, n := range x {
			writeU32(buf, uint32(n))
		}
	case LongArray:
		writeU32(buf, uint32(len(x)))
		for _, n := range x {
			writeU64(buf, uint64(n))
		}
	case *List:
		buf.WriteByte(byte(x.elem))
		writeU32(buf, uint32(len(x.items)))
		for _, it := range x.items {
			writePayload(buf, it)
		}
	case *Compound:
		for _, name := range x.names {
			child := x.index[name]
			buf.WriteByte(byte(child.Tag()))
			writeString(buf, name)
			writePayload(buf, child)
		}
		buf.WriteByte(byte(TagEnd))
	}
}

func writeString(buf *bytes.Buffer, s string) {
	writeU16(buf, uint16(len(s)))
	buf.WriteString(s)
}

// Big-endian append helpers over a scratch array.

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}
