// Package output writes probe reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Entry is one probed position as reported: the probe result plus the
// 1-based number of an earlier identical position, or 0.
type Entry struct {
	worker.Result
	SameAs int
}

// ReportWriter is the interface for writing probe reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteEntry writes a single entry to the output.
	WriteEntry(e Entry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one line per entry.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteEntry writes e as a single line.
func (tw *TextWriter) WriteEntry(e Entry) error {
	_, err := fmt.Fprintln(tw.w, FormatEntry(e))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatEntry renders an entry as a single line, e.g.
// "3: white to move, 3 legal moves, check (king is threatened by a black rook on e2)".
func FormatEntry(e Entry) string {
	if e.Err != nil {
		return fmt.Sprintf("%d: error: %v", e.Index+1, e.Err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: %s to move, %d legal moves", e.Index+1, e.ToMove, len(e.LegalMoves))
	if e.Checked {
		fmt.Fprintf(&sb, ", check (%s)", e.Threat)
	}
	switch {
	case e.Checkmate:
		sb.WriteString(", checkmate")
	case e.Stalemate:
		sb.WriteString(", stalemate")
	}
	if e.SameAs > 0 {
		fmt.Fprintf(&sb, ", same position as %d", e.SameAs)
	}
	return sb.String()
}

// JSONWriter writes entries in JSON format.
// It buffers entries and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	entries []JSONPosition
	single  bool // If true, write each entry immediately as one line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches entries and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		entries: make([]JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each entry
// immediately, one compact object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteEntry buffers an entry for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteEntry(e Entry) error {
	pos := EntryToJSON(e)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(pos)
	}

	jw.entries = append(jw.entries, pos)
	return nil
}

// Flush writes all buffered entries as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.entries) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONReport{Positions: jw.entries})

	// Clear buffer after writing
	jw.entries = jw.entries[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
