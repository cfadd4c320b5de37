// Package tagpath builds structural paths into an NBT tree for error
// reporting. A path is a sequence of compound field names and list
// indices from the root, rendered as "(root).Schematic.BlockEntities[2].Data".
package tagpath

import (
	"strconv"
	"strings"
)

// Path is an immutable chain of segments from the root of a tree.
// The zero value addresses the root itself.
type Path []string

// Field returns a new path descending into the named compound field.
func (p Path) Field(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, "."+name)
}

// Index returns a new path descending into the i-th element of a list.
func (p Path) Index(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, "["+strconv.Itoa(i)+"]")
}

// String renders the path with a "(root)" anchor so that an empty root
// name still produces a readable location.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("(root)")
	for _, seg := range p {
		b.WriteString(seg)
	}
	return b.String()
}
