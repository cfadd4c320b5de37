package nbt

// Limits bounds decoder resource use against adversarial input. The codec
// itself is total over in-memory bytes, so depth is the only dimension
// that needs a guard: a deeply nested stream would otherwise exhaust the
// goroutine stack before running out of input.
type Limits struct {
	// MaxDepth is the maximum nesting depth of lists and compounds.
	// The root compound counts as depth 1.
	MaxDepth int
}

// DefaultMaxDepth is deeper than any real schematic while still keeping
// recursion bounded.
const DefaultMaxDepth = 512

// DefaultLimits returns the limits applied by Decode.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth}
}
