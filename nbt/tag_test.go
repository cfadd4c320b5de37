package nbt

import (
	"errors"
	"testing"
)

func TestNewListRejectsMixedTypes(t *testing.T) {
	_, err := NewList(TagInt, Int(1), String("two"))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewList: got %v, want ErrInvalidValue", err)
	}
}

func TestNewListEmptyUntyped(t *testing.T) {
	l, err := NewList(TagEnd)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	if l.Elem() != TagEnd || l.Len() != 0 {
		t.Fatalf("unexpected list: elem=%s len=%d", l.Elem(), l.Len())
	}
}

func TestNewListEndWithItems(t *testing.T) {
	// An End-typed list adopts the tag of its first item.
	l, err := NewList(TagEnd, Int(1))
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	if l.Elem() != TagInt {
		t.Fatalf("elem = %s, want Int", l.Elem())
	}
	if err := l.Append(String("nope")); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Append: got %v, want ErrInvalidValue", err)
	}
}

func TestCompoundOrderAndOverwrite(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("c", Int(3))
	c.Set("b", Int(20)) // overwrite keeps position

	keys := c.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if v, _ := c.Get("b"); v != Int(20) {
		t.Fatalf("b = %v, want 20", v)
	}

	if !c.Delete("a") || c.Delete("a") {
		t.Fatalf("Delete should succeed once")
	}
	if c.Len() != 2 || c.Keys()[0] != "b" {
		t.Fatalf("unexpected state after delete: %v", c.Keys())
	}
}

func TestEqualIgnoresCompoundOrder(t *testing.T) {
	a := NewCompound()
	a.Set("x", Byte(1))
	a.Set("y", String("s"))
	b := NewCompound()
	b.Set("y", String("s"))
	b.Set("x", Byte(1))

	if !Equal(a, b) {
		t.Fatalf("compounds with same entries in different order must be equal")
	}
	b.Set("y", String("t"))
	if Equal(a, b) {
		t.Fatalf("compounds with different values must not be equal")
	}
}

func TestEqualListOrderSignificant(t *testing.T) {
	a := MustList(TagInt, Int(1), Int(2))
	b := MustList(TagInt, Int(2), Int(1))
	if Equal(a, b) {
		t.Fatalf("lists with reordered items must not be equal")
	}
}
