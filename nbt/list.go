package nbt

import "fmt"

// List is an ordered sequence of unnamed values that all share one tag
// type. Homogeneity is enforced at construction, so a List obtained from
// NewList or the decoder is always well formed.
//
// An empty list still carries an element type; element type End is the
// "untyped empty list" and is only valid while the list has no items.
type List struct {
	elem  TagID
	items []Value
}

// NewList builds a homogeneous list of the given element type. It fails
// with ErrInvalidValue when an item's tag differs from elem, or when elem
// is End and items is non-empty.
func NewList(elem TagID, items ...Value) (*List, error) {
	if !elem.Valid() {
		return nil, fmt.Errorf("list element type %s: %w", elem, ErrInvalidValue)
	}
	l := &List{elem: elem}
	if err := l.Append(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// MustList is NewList for statically known-good lists, typically fixtures.
// It panics on a heterogeneity error.
func MustList(elem TagID, items ...Value) *List {
	l, err := NewList(elem, items...)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns TagList.
func (l *List) Tag() TagID { return TagList }

func (*List) value() {}

// Elem returns the element tag type.
func (l *List) Elem() TagID { return l.elem }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Index returns the i-th item. The index must be in range.
func (l *List) Index(i int) Value { return l.items[i] }

// Items returns the backing slice. Callers must not mutate it.
func (l *List) Items() []Value { return l.items }

// Append adds items to the list, enforcing homogeneity. Appending the
// first item to an End-typed empty list adopts that item's tag type.
func (l *List) Append(items ...Value) error {
	for _, it := range items {
		if it == nil {
			return fmt.Errorf("nil list item: %w", ErrInvalidValue)
		}
		if l.elem == TagEnd && len(l.items) == 0 {
			l.elem = it.Tag()
		}
		if got := it.Tag(); got != l.elem {
			return fmt.Errorf("list of %s: cannot hold %s: %w", l.elem, got, ErrInvalidValue)
		}
		l.items = append(l.items, it)
	}
	return nil
}
