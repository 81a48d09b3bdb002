package rope

import "github.com/ropecore/rope/pkg/document"

// AsDocument adapts r to the document.Document interface that code written
// against that narrower abstraction expects. It
// exists as a separate type rather than a method directly on *Rope because
// document.Document.Clone returns document.Document while Cloneable.Clone
// returns *Rope — Go does not allow two methods on the same type named
// Clone with different return types, so the two interfaces need two
// receivers.
type AsDocument struct {
	*Rope
}

// Slice satisfies document.Document's panic-on-error contract by converting
// the facade's error return into a panic, matching document.Document's own
// documented behavior ("Panics if indices are out of bounds").
func (d AsDocument) Slice(start, end int) string {
	s, err := d.Rope.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Clone returns a document.Document wrapping a cloned Rope.
func (d AsDocument) Clone() document.Document {
	return AsDocument{d.Rope.Clone()}
}

// LineBreakCount satisfies document.LineCounter off the tree's cached
// summary, the same field Stats and LineCount read, rather than scanning
// content the way a plain string-backed Document would have to.
func (d AsDocument) LineBreakCount() int {
	if d.Rope == nil {
		return 0
	}
	return d.Rope.tree.Summary().LineBreaks
}

var (
	_ document.Document    = AsDocument{}
	_ document.LineCounter = AsDocument{}
)
