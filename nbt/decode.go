package nbt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/sudolifeagain/mc-schematic-converter/internal/tagpath"
)

// Payload grammar, big-endian, no padding:
//
//	Tag        Payload
//	Byte..Double   fixed-width value, no length prefix
//	String         u16 byte length, then UTF-8 bytes
//	ByteArray      i32 count, then count bytes
//	IntArray       i32 count, then count i32 values
//	LongArray      i32 count, then count i64 values
//	List           element type byte, i32 count, then count unnamed payloads
//	Compound       repeated (type byte, name string, payload) until a lone End byte

// Decode parses a single named tag from data using DefaultLimits. The
// root tag must be a Compound. Bytes after the root tag are ignored.
func Decode(data []byte) (NamedTag, error) {
	return DecodeWithLimits(data, DefaultLimits())
}

// DecodeWithLimits is Decode with caller-supplied resource limits.
func DecodeWithLimits(data []byte, lim Limits) (NamedTag, error) {
	if lim.MaxDepth <= 0 {
		lim.MaxDepth = DefaultMaxDepth
	}
	d := &decoder{data: data, lim: lim}
	id, err := d.readTagID()
	if err != nil {
		return NamedTag{}, err
	}
	if id != TagCompound {
		return NamedTag{}, fmt.Errorf("%s: root tag is %s, must be Compound: %w", d.path, id, ErrMalformed)
	}
	name, err := d.readString()
	if err != nil {
		return NamedTag{}, err
	}
	v, err := d.readPayload(id, 1)
	if err != nil {
		return NamedTag{}, err
	}
	return NamedTag{Name: name, Value: v}, nil
}

type decoder struct {
	data []byte
	pos  int
	lim  Limits
	path tagpath.Path
}

func (d *decoder) need(n int) error {
	if n < 0 || d.pos+n > len(d.data) {
		return fmt.Errorf("%s: need %d bytes at offset %d, have %d: %w",
			d.path, n, d.pos, len(d.data)-d.pos, ErrMalformed)
	}
	return nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) readTagID() (TagID, error) {
	b, err := d.take(1)
	if err != nil {
		return TagEnd, err
	}
	id := TagID(b[0])
	if !id.Valid() {
		return TagEnd, fmt.Errorf("%s: unknown tag id %d at offset %d: %w",
			d.path, b[0], d.pos-1, ErrMalformed)
	}
	return id, nil
}

func (d *decoder) readString() (string, error) {
	b, err := d.take(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	s, err := d.take(n)
	if err != nil {
		return "", fmt.Errorf("%s: string of %d bytes: %w", d.path, n, ErrMalformed)
	}
	return string(s), nil
}

// readCount reads a signed 32-bit array or list count and rejects
// negative values.
func (d *decoder) readCount() (int, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	n := int32(binary.BigEndian.Uint32(b))
	if n < 0 {
		return 0, fmt.Errorf("%s: negative count %d: %w", d.path, n, ErrMalformed)
	}
	return int(n), nil
}

func (d *decoder) readPayload(id TagID, depth int) (Value, error) {
	if depth > d.lim.MaxDepth {
		return nil, fmt.Errorf("%s: nesting exceeds %d levels: %w", d.path, d.lim.MaxDepth, ErrMalformed)
	}
	switch id {
	case TagByte:
		b, err := d.take(1)
		if err != nil {
			return nil, err
		}
		return Byte(b[0]), nil
	case TagShort:
		b, err := d.take(2)
		if err != nil {
			return nil, err
		}
		return Short(binary.BigEndian.Uint16(b)), nil
	case TagInt:
		b, err := d.take(4)
		if err != nil {
			return nil, err
		}
		return Int(binary.BigEndian.Uint32(b)), nil
	case TagLong:
		b, err := d.take(8)
		if err != nil {
			return nil, err
		}
		return Long(binary.BigEndian.Uint64(b)), nil
	case TagFloat:
		b, err := d.take(4)
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case TagDouble:
		b, err := d.take(8)
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case TagByteArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		b, err := d.take(n)
		if err != nil {
			return nil, err
		}
		out := make(ByteArray, n)
		copy(out, b)
		return out, nil
	case TagIntArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		b, err := d.take(n * 4)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			out[i] = int32(binary.BigEndian.Uint32(b[i*4:]))
		}
		return out, nil
	case TagLongArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		b, err := d.take(n * 8)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			out[i] = int64(binary.BigEndian.Uint64(b[i*8:]))
		}
		return out, nil
	case TagList:
		return d.readList(depth)
	case TagCompound:
		return d.readCompound(depth)
	default:
		// TagEnd never reaches here: the compound loop consumes it and
		// the list reader rejects it as an element type with count > 0.
		return nil, fmt.Errorf("%s: unexpected %s payload: %w", d.path, id, ErrMalformed)
	}
}

func (d *decoder) readList(depth int) (Value, error) {
	elem, err := d.readTagID()
	if err != nil {
		return nil, err
	}
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if elem == TagEnd && n > 0 {
		return nil, fmt.Errorf("%s: list of End with count %d: %w", d.path, n, ErrMalformed)
	}
	// Cap the pre-allocation by the bytes left: every payload occupies at
	// least one byte, so a count beyond that is malformed anyway and the
	// element loop reports it without a huge up-front allocation.
	capHint := n
	if rem := len(d.data) - d.pos; capHint > rem {
		capHint = rem
	}
	l := &List{elem: elem, items: make([]Value, 0, capHint)}
	for i := 0; i < n; i++ {
		parent := d.path
		d.path = parent.Index(i)
		v, err := d.readPayload(elem, depth+1)
		d.path = parent
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, v)
	}
	return l, nil
}

func (d *decoder) readCompound(depth int) (Value, error) {
	c := NewCompound()
	for {
		id, err := d.readTagID()
		if err != nil {
			return nil, fmt.Errorf("%s: compound not terminated: %w", d.path, err)
		}
		if id == TagEnd {
			return c, nil
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		if c.Has(name) {
			return nil, fmt.Errorf("%s: duplicate entry %q: %w", d.path, name, ErrMalformed)
		}
		parent := d.path
		d.path = parent.Field(name)
		v, err := d.readPayload(id, depth+1)
		d.path = parent
		if err != nil {
			return nil, err
		}
		c.Set(name, v)
	}
}
