package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sudolifeagain/mc-schematic-converter/internal/writer"
	"github.com/sudolifeagain/mc-schematic-converter/nbt"
	"github.com/sudolifeagain/mc-schematic-converter/schem"
)

var noVerify bool

var convertCmd = &cobra.Command{
	Use:   "convert <input.schem> <output.schem>",
	Short: "Convert a v3 schematic file to v2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		log := newLogger()
		defer log.Sync()
		return runConvert(log, args[0], args[1], !noVerify)
	},
}

func init() {
	convertCmd.Flags().
		BoolVar(&noVerify, "no-verify", false, "Skip re-decoding the output to check its structure")
	rootCmd.AddCommand(convertCmd)
}

// runConvert is the whole pipeline: read, decode, migrate, re-encode
// gzipped, write atomically, and optionally verify the written file.
func runConvert(log *zap.Logger, inPath, outPath string, verify bool) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	log.Debug("read input",
		zap.String("path", inPath),
		zap.Int("bytes", len(data)),
		zap.Bool("gzipped", nbt.IsCompressed(data)))

	root, err := nbt.DecodeCompressed(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}
	logSourceVersion(log, root)

	migrated, err := schem.Migrate(root)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", inPath, err)
	}
	log.Info("migrated", zap.Int("target_version", schem.TargetVersion))

	out, err := nbt.EncodeCompressed(migrated)
	if err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	w := &writer.FileWriter{Path: outPath}
	if err := w.WriteSchematic(out); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	log.Info("wrote output", zap.String("path", outPath), zap.Int("bytes", len(out)))

	if !verify {
		return nil
	}
	return verifyOutput(log, outPath)
}

// logSourceVersion reports the declared version of the input, if present.
func logSourceVersion(log *zap.Logger, root nbt.NamedTag) {
	outer, ok := root.Value.(*nbt.Compound)
	if !ok {
		return
	}
	sc, ok := outer.Get("Schematic")
	body, ok2 := sc.(*nbt.Compound)
	if !ok || !ok2 {
		return
	}
	if v, ok := body.Get("Version"); ok {
		if n, ok := nbt.AsInt64(v); ok {
			log.Info("decoded input", zap.Int64("source_version", n))
			if n != schem.SourceVersion {
				log.Warn("unexpected source version",
					zap.Int64("got", n), zap.Int("want", schem.SourceVersion))
			}
		}
	}
}

// verifyOutput re-decodes the written file and checks the v2 landmarks:
// root name, Version, and the presence of Palette and BlockData.
func verifyOutput(log *zap.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := nbt.DecodeCompressed(data)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if root.Name != "Schematic" {
		return fmt.Errorf("verify %s: root name %q, want \"Schematic\"", path, root.Name)
	}
	body := root.Value.(*nbt.Compound)
	if v, ok := body.Get("Version"); !ok || !nbt.Equal(v, nbt.Int(schem.TargetVersion)) {
		return fmt.Errorf("verify %s: Version is not %d", path, schem.TargetVersion)
	}
	for _, name := range []string{"Palette", "BlockData"} {
		if !body.Has(name) {
			log.Warn("verify: field missing in output", zap.String("field", name))
		}
	}
	log.Info("verified output", zap.String("path", path))
	return nil
}
