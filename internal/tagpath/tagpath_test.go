package tagpath

import "testing"

func TestPathString(t *testing.T) {
	var p Path
	if got := p.String(); got != "(root)" {
		t.Fatalf("empty path = %q", got)
	}
	q := p.Field("Schematic").Field("BlockEntities").Index(2).Field("Data")
	if got := q.String(); got != "(root).Schematic.BlockEntities[2].Data" {
		t.Fatalf("path = %q", got)
	}
	// The original path must be unaffected by derived paths.
	if got := p.String(); got != "(root)" {
		t.Fatalf("base path mutated: %q", got)
	}
}

func TestPathDerivationIsImmutable(t *testing.T) {
	base := Path{}.Field("a")
	b := base.Field("b")
	c := base.Field("c")
	if b.String() != "(root).a.b" || c.String() != "(root).a.c" {
		t.Fatalf("derived paths interfere: %q vs %q", b, c)
	}
}
