// Package schem migrates Sponge Schematic trees from format version 3
// (Minecraft 1.20.5+) down to version 2, the newest format WorldEdit
// 7.2.x can load.
//
// Version 3 restructured the format: the schematic body moved under a
// root "Schematic" compound, block data moved under a "Blocks" compound,
// block-entity NBT gained a "Data" wrapper, and item stacks switched from
// Count (Byte) to count (Int) plus a components compound.
//
// Migrate reverses those changes structurally. The conversion is lossy by
// design: item components (enchantments, damage, custom names) are
// stripped, and the 1.20.5+ sign text layout is left as-is. Item counts
// that do not fit in the v2 Byte field fail the migration rather than
// being silently clamped.
package schem
