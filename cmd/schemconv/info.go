package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sudolifeagain/mc-schematic-converter/nbt"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.schem>",
	Short: "Print structural information about a schematic file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runInfo(args[0])
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := nbt.DecodeCompressed(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Gzipped:    %v\n", nbt.IsCompressed(data))
	fmt.Printf("Root name:  %q\n", root.Name)

	// v3 nests the body under Schematic; v2 is the body itself.
	body := root.Value.(*nbt.Compound)
	if inner, ok := body.Get("Schematic"); ok {
		if c, ok := inner.(*nbt.Compound); ok {
			body = c
		}
	}
	if v, ok := body.Get("Version"); ok {
		if n, ok := nbt.AsInt64(v); ok {
			fmt.Printf("Version:    %d\n", n)
		}
	}
	for _, name := range body.Keys() {
		v, _ := body.Get(name)
		fmt.Printf("  %-14s %s%s\n", name, v.Tag(), describe(v))
	}
	return nil
}

// describe adds a short size annotation for container values.
func describe(v nbt.Value) string {
	switch x := v.(type) {
	case *nbt.Compound:
		return fmt.Sprintf(" (%d entries)", x.Len())
	case *nbt.List:
		return fmt.Sprintf(" (%d x %s)", x.Len(), x.Elem())
	case nbt.ByteArray:
		return fmt.Sprintf(" (%d bytes)", len(x))
	case nbt.IntArray:
		return fmt.Sprintf(" (%d ints)", len(x))
	case nbt.LongArray:
		return fmt.Sprintf(" (%d longs)", len(x))
	default:
		return ""
	}
}
