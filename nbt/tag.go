package nbt

import "fmt"

// TagID identifies an NBT tag type on the wire.
type TagID byte

// Tag type IDs as they appear in the binary stream.
const (
	TagEnd TagID = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	"End", "Byte", "Short", "Int", "Long", "Float", "Double",
	"ByteArray", "String", "List", "Compound", "IntArray", "LongArray",
}

// Valid reports whether id is one of the defined tag types.
func (id TagID) Valid() bool {
	return id <= TagLongArray
}

// String returns the conventional name of the tag type.
func (id TagID) String() string {
	if id.Valid() {
		return tagNames[id]
	}
	return fmt.Sprintf("TagID(%d)", byte(id))
}

// Value is the closed set of NBT tag payloads. Every variant defined by
// the format implements it; consumers can switch exhaustively over the
// concrete types. External packages cannot add variants.
type Value interface {
	// Tag returns the wire type ID of this value.
	Tag() TagID

	value()
}

// NamedTag is a (name, value) pair. The outermost unit of a file is a
// single NamedTag whose value is a *Compound; the name may be empty.
type NamedTag struct {
	Name  string
	Value Value
}

// Scalar tag variants. Integer types are two's complement at the declared
// width; Float and Double are IEEE-754.
type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	// String holds UTF-8 text. Its encoded form carries a 16-bit length
	// prefix, so values above 65535 bytes fail at encode time.
	String string

	// ByteArray, IntArray, and LongArray are ordered sequences of
	// fixed-width integers. Their length is part of the encoding.
	ByteArray []byte
	IntArray  []int32
	LongArray []int64
)

func (Byte) Tag() TagID      { return TagByte }
func (Short) Tag() TagID     { return TagShort }
func (Int) Tag() TagID       { return TagInt }
func (Long) Tag() TagID      { return TagLong }
func (Float) Tag() TagID     { return TagFloat }
func (Double) Tag() TagID    { return TagDouble }
func (String) Tag() TagID    { return TagString }
func (ByteArray) Tag() TagID { return TagByteArray }
func (IntArray) Tag() TagID  { return TagIntArray }
func (LongArray) Tag() TagID { return TagLongArray }

func (Byte) value()      {}
func (Short) value()     {}
func (Int) value()       {}
func (Long) value()      {}
func (Float) value()     {}
func (Double) value()    {}
func (String) value()    {}
func (ByteArray) value() {}
func (IntArray) value()  {}
func (LongArray) value() {}

// AsInt64 returns the widened value of an integer scalar tag. The second
// return is false for non-integer variants.
func AsInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case Byte:
		return int64(n), true
	case Short:
		return int64(n), true
	case Int:
		return int64(n), true
	case Long:
		return int64(n), true
	default:
		return 0, false
	}
}
