// Package document provides the Document interface abstraction, for code
// that works with different document implementations (String, Rope, etc.).
package document

// Document represents an immutable text document.
// All operations that modify the document return a new Document instance.
type Document interface {
	// Length returns the number of characters (Unicode code points) in the document.
	Length() int

	// Slice returns a substring from start to end (exclusive).
	// The indices are character positions (not byte positions).
	// Panics if indices are out of bounds.
	Slice(start, end int) string

	// String returns the complete document content as a string.
	String() string

	// Bytes returns the complete document content as a byte slice.
	Bytes() []byte

	// Clone creates a copy of the document.
	// For immutable implementations, this may return the same instance.
	Clone() Document
}

// LineCounter is an optional capability a Document implementation can
// advertise: a line-break count that doesn't require materializing the
// document's content to compute. A caller can check for it with a type
// assertion before falling back to counting newlines in String() itself, so
// a structure that already tracks line breaks internally (a
// metric-summarized tree, say) never pays to recompute what it already
// knows.
type LineCounter interface {
	// LineBreakCount returns the number of line break characters in the
	// document.
	LineBreakCount() int
}
