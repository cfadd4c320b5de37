package nbt

// Compound is a mapping from names to values. Names are unique within a
// compound; insertion order is preserved and reproduced by the encoder,
// so a decoded file round-trips byte-identically.
type Compound struct {
	names []string
	index map[string]Value
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]Value)}
}

// Tag returns TagCompound.
func (c *Compound) Tag() TagID { return TagCompound }

func (*Compound) value() {}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Get returns the value stored under name.
func (c *Compound) Get(name string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.index[name]
	return v, ok
}

// Has reports whether an entry exists under name.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Set stores v under name. A new name is appended at the end; overwriting
// an existing name keeps its position in the insertion order.
func (c *Compound) Set(name string, v Value) {
	if _, ok := c.index[name]; !ok {
		c.names = append(c.names, name)
	}
	c.index[name] = v
}

// Delete removes the entry under name, reporting whether it existed.
func (c *Compound) Delete(name string) bool {
	if _, ok := c.index[name]; !ok {
		return false
	}
	delete(c.index, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the entry names in insertion order. The slice is a copy.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
