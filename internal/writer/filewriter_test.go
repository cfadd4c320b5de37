package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriterWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.schem")

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteSchematic([]byte("first")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	// Overwrite in place.
	require.NoError(t, w.WriteSchematic([]byte("second")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.schem", entries[0].Name())
}

func TestMemWriterCopies(t *testing.T) {
	var w MemWriter
	buf := []byte{1, 2, 3}
	require.NoError(t, w.WriteSchematic(buf))
	buf[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, w.Buf)
}
