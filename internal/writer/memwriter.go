package writer

// MemWriter captures schematic bytes in memory. Used by tests and by
// callers that post-process the output themselves.
type MemWriter struct {
	Buf []byte
}

// WriteSchematic stores a copy of buf.
func (w *MemWriter) WriteSchematic(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
