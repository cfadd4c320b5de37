package schem

import (
	"fmt"

	"github.com/sudolifeagain/mc-schematic-converter/internal/tagpath"
	"github.com/sudolifeagain/mc-schematic-converter/nbt"
)

// Schematic format versions at the two ends of the migration.
const (
	SourceVersion = 3
	TargetVersion = 2
)

// Field names of the two schemas.
const (
	rootName = "Schematic"

	fieldVersion       = "Version"
	fieldBlocks        = "Blocks"
	fieldData          = "Data"
	fieldPalette       = "Palette"
	fieldPaletteMax    = "PaletteMax"
	fieldBlockData     = "BlockData"
	fieldBlockEntities = "BlockEntities"
	fieldTileEntities  = "TileEntities"
	fieldCountV3       = "count"
	fieldCountV2       = "Count"
	fieldComponents    = "components"
	fieldID            = "Id"
	fieldIDLower       = "id"
)

// Migrate converts a decoded version 3 schematic tree into its version 2
// equivalent. The input is never mutated; the result is a fresh tree that
// may share unchanged subtrees with the input.
//
// The conversion is a sequence of independent structural passes:
//
//  1. Unwrap the root: Root("") -> Schematic -> ... becomes Root("Schematic") -> ...
//  2. Flatten the Blocks compound: Data -> BlockData, Palette hoisted,
//     PaletteMax synthesized from the palette entry count.
//  3. Overwrite Version with 2.
//  4. Unwrap each block entity's Data compound and rename the list to
//     TileEntities.
//  5. Convert item stacks: count (Int) -> Count (Byte), drop components.
//
// Fields not covered by a pass copy through unchanged.
func Migrate(root nbt.NamedTag) (nbt.NamedTag, error) {
	sc, err := reshapeRoot(root)
	if err != nil {
		return nbt.NamedTag{}, err
	}
	base := tagpath.Path{}.Field(rootName)
	sc, err = flattenBlocks(sc, base)
	if err != nil {
		return nbt.NamedTag{}, err
	}
	sc = setVersion(sc)
	sc, err = unwrapBlockEntities(sc, base)
	if err != nil {
		return nbt.NamedTag{}, err
	}
	v, err := convertItems(sc, base)
	if err != nil {
		return nbt.NamedTag{}, err
	}
	return nbt.NamedTag{Name: rootName, Value: v.(*nbt.Compound)}, nil
}

// reshapeRoot merges the inner Schematic compound with any other fields
// of the outer root compound.
func reshapeRoot(root nbt.NamedTag) (*nbt.Compound, error) {
	var p tagpath.Path
	outer, ok := root.Value.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("%s: root is not a compound: %w", p, ErrSchemaMismatch)
	}
	v, ok := outer.Get(rootName)
	if !ok {
		return nil, fmt.Errorf("%s: missing %q compound: %w", p, rootName, ErrSchemaMismatch)
	}
	inner, ok := v.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("%s: %s tag, expected Compound: %w", p.Field(rootName), v.Tag(), ErrSchemaMismatch)
	}
	out := nbt.NewCompound()
	for _, name := range inner.Keys() {
		cv, _ := inner.Get(name)
		out.Set(name, cv)
	}
	for _, name := range outer.Keys() {
		if name == rootName {
			continue
		}
		cv, _ := outer.Get(name)
		out.Set(name, cv)
	}
	return out, nil
}

// flattenBlocks hoists the children of the Blocks compound to the top
// level: Data becomes BlockData, Palette keeps its name and gains a
// PaletteMax sibling holding the palette entry count, and anything else
// (version 3 keeps BlockEntities here) is hoisted unchanged. The emptied
// Blocks compound is dropped.
func flattenBlocks(sc *nbt.Compound, base tagpath.Path) (*nbt.Compound, error) {
	out := nbt.NewCompound()
	for _, name := range sc.Keys() {
		v, _ := sc.Get(name)
		if name != fieldBlocks {
			out.Set(name, v)
			continue
		}
		blocks, ok := v.(*nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%s: %s tag, expected Compound: %w", base.Field(fieldBlocks), v.Tag(), ErrSchemaMismatch)
		}
		for _, bn := range blocks.Keys() {
			bv, _ := blocks.Get(bn)
			switch bn {
			case fieldPalette:
				pal, ok := bv.(*nbt.Compound)
				if !ok {
					return nil, fmt.Errorf("%s: %s tag, expected Compound: %w",
						base.Field(fieldBlocks).Field(fieldPalette), bv.Tag(), ErrSchemaMismatch)
				}
				out.Set(fieldPalette, pal)
				out.Set(fieldPaletteMax, nbt.Int(pal.Len()))
			case fieldData:
				out.Set(fieldBlockData, bv)
			default:
				out.Set(bn, bv)
			}
		}
	}
	return out, nil
}

// setVersion overwrites the Version field with the target version. The
// value is a constant of the migration, not derived from the input.
func setVersion(sc *nbt.Compound) *nbt.Compound {
	out := nbt.NewCompound()
	for _, name := range sc.Keys() {
		v, _ := sc.Get(name)
		out.Set(name, v)
	}
	out.Set(fieldVersion, nbt.Int(TargetVersion))
	return out
}

// unwrapBlockEntities removes the Data wrapper from every element of the
// BlockEntities list and renames the list to TileEntities. While hoisting
// a Data compound's children, a lowercase "id" is skipped when the element
// already carries "Id", and a "components" field is dropped outright:
// block-entity data has no v2 representation for it.
func unwrapBlockEntities(sc *nbt.Compound, base tagpath.Path) (*nbt.Compound, error) {
	v, ok := sc.Get(fieldBlockEntities)
	if !ok {
		return sc, nil
	}
	listPath := base.Field(fieldBlockEntities)
	list, ok := v.(*nbt.List)
	if !ok {
		return nil, fmt.Errorf("%s: %s tag, expected List: %w", listPath, v.Tag(), ErrSchemaMismatch)
	}
	items := make([]nbt.Value, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		elPath := listPath.Index(i)
		el, ok := list.Index(i).(*nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%s: %s tag, expected Compound: %w", elPath, list.Index(i).Tag(), ErrSchemaMismatch)
		}
		dv, ok := el.Get(fieldData)
		if !ok {
			return nil, fmt.Errorf("%s: missing %s wrapper: %w", elPath, fieldData, ErrSchemaMismatch)
		}
		data, ok := dv.(*nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%s: %s tag, expected Compound: %w", elPath.Field(fieldData), dv.Tag(), ErrSchemaMismatch)
		}
		flat := nbt.NewCompound()
		for _, name := range el.Keys() {
			if name == fieldData {
				continue
			}
			cv, _ := el.Get(name)
			flat.Set(name, cv)
		}
		for _, name := range data.Keys() {
			if name == fieldIDLower && flat.Has(fieldID) {
				continue
			}
			if name == fieldComponents {
				continue
			}
			cv, _ := data.Get(name)
			flat.Set(name, cv)
		}
		items = append(items, flat)
	}
	renamed, err := nbt.NewList(nbt.TagCompound, items...)
	if err != nil {
		return nil, err
	}
	out := nbt.NewCompound()
	for _, name := range sc.Keys() {
		cv, _ := sc.Get(name)
		if name == fieldBlockEntities {
			out.Set(fieldTileEntities, renamed)
			continue
		}
		out.Set(name, cv)
	}
	return out, nil
}

// convertItems walks the whole tree. Any compound holding an integer
// "count" field is an item stack: count is renamed to Count and narrowed
// to a Byte, and a "components" sibling (1.20.5+ per-item metadata) is
// dropped without replacement. A count outside -128..127 fails the
// migration; clamping would silently corrupt stack sizes.
func convertItems(v nbt.Value, p tagpath.Path) (nbt.Value, error) {
	switch x := v.(type) {
	case *nbt.Compound:
		isStack := false
		if cv, ok := x.Get(fieldCountV3); ok {
			_, isStack = nbt.AsInt64(cv)
		}
		out := nbt.NewCompound()
		for _, name := range x.Keys() {
			cv, _ := x.Get(name)
			if isStack {
				if name == fieldCountV3 {
					n, _ := nbt.AsInt64(cv)
					if n < -128 || n > 127 {
						return nil, fmt.Errorf("%s: count %d does not fit in Byte: %w",
							p.Field(fieldCountV3), n, ErrValueOutOfRange)
					}
					out.Set(fieldCountV2, nbt.Byte(n))
					continue
				}
				if name == fieldComponents {
					continue
				}
			}
			conv, err := convertItems(cv, p.Field(name))
			if err != nil {
				return nil, err
			}
			out.Set(name, conv)
		}
		return out, nil
	case *nbt.List:
		items := make([]nbt.Value, 0, x.Len())
		for i := 0; i < x.Len(); i++ {
			conv, err := convertItems(x.Index(i), p.Index(i))
			if err != nil {
				return nil, err
			}
			items = append(items, conv)
		}
		return nbt.NewList(x.Elem(), items...)
	default:
		return v, nil
	}
}
