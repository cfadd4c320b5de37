package schem

import "errors"

var (
	// ErrSchemaMismatch indicates the input tree does not have the shape
	// the version 3 format requires at some path.
	ErrSchemaMismatch = errors.New("schem: schema mismatch")
	// ErrValueOutOfRange indicates a narrowing conversion would lose
	// information, such as an item count above 127.
	ErrValueOutOfRange = errors.New("schem: value out of range")
)
