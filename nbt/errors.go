package nbt

import "errors"

var (
	// ErrMalformed indicates structurally invalid input bytes: a truncated
	// field, a length running past end of stream, a negative count, a
	// missing compound terminator, or a wrong root type.
	ErrMalformed = errors.New("nbt: malformed stream")
	// ErrInvalidValue indicates a tree that violates a model invariant,
	// such as a heterogeneous list, detected before any bytes are written.
	ErrInvalidValue = errors.New("nbt: invalid value")
	// ErrValueTooLarge indicates a string or sequence that does not fit
	// its length prefix.
	ErrValueTooLarge = errors.New("nbt: value too large")
)
