package rope

import (
	"unicode/utf8"

	"github.com/ropecore/rope/internal/textleaf"
	"github.com/ropecore/rope/internal/tree"
)

// ========== Rune iteration ==========

// Iterator walks a Rope one rune at a time. It materializes the rope's
// runes once at construction (Go slice indexing is simplest ground truth
// for a cursor that also needs Previous/Seek/Peek), trading one allocation
// proportional to content size for O(1) random access during the walk.
type Iterator struct {
	runes []rune
	pos   int
}

// NewIterator returns a forward rune iterator over r's content.
func (r *Rope) NewIterator() *Iterator {
	return &Iterator{runes: runesOf(r), pos: -1}
}

func runesOf(r *Rope) []rune {
	if r == nil {
		return nil
	}
	data := r.Bytes()
	out := make([]rune, 0, r.Length())
	for len(data) > 0 {
		ru, size := utf8.DecodeRune(data)
		out = append(out, ru)
		data = data[size:]
	}
	return out
}

func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.runes) {
		it.pos = len(it.runes)
		return false
	}
	it.pos++
	return true
}

func (it *Iterator) Current() rune { return it.runes[it.pos] }

// Position returns one past the index of the current rune: after Next()
// lands on the rune at index i, Position() reports i+1, the offset of the
// next rune. IndexOfChar subtracts one to report the rune's own index.
func (it *Iterator) Position() int { return it.pos + 1 }

func (it *Iterator) HasNext() bool     { return it.pos+1 < len(it.runes) }
func (it *Iterator) IsExhausted() bool { return it.pos >= len(it.runes) }

func (it *Iterator) Reset() { it.pos = -1 }

func (it *Iterator) HasPrevious() bool { return it.pos > 0 }

func (it *Iterator) Previous() bool {
	if it.pos <= 0 {
		return false
	}
	it.pos--
	return true
}

func (it *Iterator) Skip(n int) int {
	skipped := 0
	for skipped < n && it.Next() {
		skipped++
	}
	return skipped
}

func (it *Iterator) Seek(pos int) bool {
	if pos < 0 || pos > len(it.runes) {
		return false
	}
	it.pos = pos - 1
	return true
}

func (it *Iterator) Peek() (rune, bool) {
	if it.pos+1 >= len(it.runes) {
		return 0, false
	}
	return it.runes[it.pos+1], true
}

func (it *Iterator) Collect() []rune {
	out := append([]rune{}, it.runes[it.pos+1:]...)
	it.pos = len(it.runes)
	return out
}

var _ RuneIteratorBehavior = (*Iterator)(nil)

// ========== Reverse rune iteration ==========

// ReverseIterator walks a Rope's runes from the last to the first.
type ReverseIterator struct {
	runes []rune
	pos   int // index one past the rune Next() will return next
}

// IterReverse returns a reverse rune iterator over r's content.
func (r *Rope) IterReverse() *ReverseIterator {
	runes := runesOf(r)
	return &ReverseIterator{runes: runes, pos: len(runes)}
}

func (it *ReverseIterator) Next() bool {
	if it.pos <= 0 {
		return false
	}
	it.pos--
	return true
}

// Current returns the current rune, matching the error-returning shape the
// free IterReverse adapter function expects of its concrete iterator type
// rather than the single-value Seq[rune] shape (which an index-exhausted
// reverse walk has no natural zero-cost way to signal without one).
func (it *ReverseIterator) Current() (rune, error) {
	if it.pos < 0 || it.pos >= len(it.runes) {
		return 0, ErrIteratorExhausted
	}
	return it.runes[it.pos], nil
}

func (it *ReverseIterator) Position() int            { return len(it.runes) - it.pos }
func (it *ReverseIterator) PositionFromStart() int   { return it.pos }
func (it *ReverseIterator) HasNext() bool            { return it.pos > 0 }
func (it *ReverseIterator) IsExhausted() bool        { return it.pos <= 0 }
func (it *ReverseIterator) Reset()                   { it.pos = len(it.runes) }

func (it *ReverseIterator) SeekFromStart(pos int) bool {
	if pos < 0 || pos > len(it.runes) {
		return false
	}
	it.pos = pos + 1
	if it.pos > len(it.runes) {
		it.pos = len(it.runes)
	}
	return true
}

func (it *ReverseIterator) Skip(n int) bool {
	for i := 0; i < n; i++ {
		if !it.Next() {
			return false
		}
	}
	return true
}

func (it *ReverseIterator) Peek() (rune, bool) {
	if it.pos <= 0 {
		return 0, false
	}
	return it.runes[it.pos-1], true
}

func (it *ReverseIterator) Collect() []rune {
	out := make([]rune, it.pos)
	copy(out, it.runes[:it.pos])
	it.pos = 0
	return out
}

// ========== Byte iteration ==========

// BytesIterator walks a Rope one byte at a time.
type BytesIterator struct {
	data []byte
	pos  int
}

// NewBytesIterator returns a forward byte iterator over r's content.
func (r *Rope) NewBytesIterator() *BytesIterator {
	return &BytesIterator{data: r.Bytes(), pos: -1}
}

func (it *BytesIterator) Next() bool {
	if it.pos+1 >= len(it.data) {
		it.pos = len(it.data)
		return false
	}
	it.pos++
	return true
}

func (it *BytesIterator) Current() byte     { return it.data[it.pos] }
func (it *BytesIterator) Position() int     { return it.pos }
func (it *BytesIterator) BytePosition() int { return it.pos }
func (it *BytesIterator) HasNext() bool     { return it.pos+1 < len(it.data) }
func (it *BytesIterator) IsExhausted() bool { return it.pos >= len(it.data) }
func (it *BytesIterator) Reset()            { it.pos = -1 }

func (it *BytesIterator) Skip(n int) bool {
	for i := 0; i < n; i++ {
		if !it.Next() {
			return false
		}
	}
	return true
}

func (it *BytesIterator) Seek(byteIdx int) bool {
	if byteIdx < 0 || byteIdx > len(it.data) {
		return false
	}
	it.pos = byteIdx - 1
	return true
}

func (it *BytesIterator) HasPeek() bool { return it.pos+1 < len(it.data) }

func (it *BytesIterator) Peek() (byte, bool) {
	if it.pos+1 >= len(it.data) {
		return 0, false
	}
	return it.data[it.pos+1], true
}

func (it *BytesIterator) Collect() []byte {
	out := append([]byte{}, it.data[it.pos+1:]...)
	it.pos = len(it.data)
	return out
}

var _ BytesIteratorBehavior = (*BytesIterator)(nil)

// ========== Chunk iteration ==========

// ChunkIterator walks a Rope one physical leaf chunk at a time, in tree
// order, without flattening them into a single buffer first. Unlike
// Iterator/BytesIterator it holds no materialized copy of the content: each
// Next() pulls the next leaf straight from the tree's own LeavesIter.
type ChunkIterator struct {
	leaves     *tree.LeavesIter[*textleaf.GapBuffer, textleaf.ChunkSummary]
	current    string
	byteOffset int
	nextOffset int
}

// NewChunkIterator returns a forward iterator over r's physical leaf chunks.
func (r *Rope) NewChunkIterator() *ChunkIterator {
	if r == nil {
		return &ChunkIterator{}
	}
	return &ChunkIterator{leaves: tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)}
}

func (it *ChunkIterator) Next() bool {
	if it.leaves == nil {
		return false
	}
	leaf, ok := it.leaves.Next()
	if !ok {
		return false
	}
	it.byteOffset = it.nextOffset
	it.current = string(leaf.Bytes())
	it.nextOffset += len(it.current)
	return true
}

func (it *ChunkIterator) Current() string { return it.current }
func (it *ChunkIterator) ByteOffset() int { return it.byteOffset }

var _ ChunkIteratorBehavior = (*ChunkIterator)(nil)

// ========== Builder ==========

// Builder accumulates text and produces a Rope in one chunking pass,
// cheaper than repeated Insert/Append calls when assembling content
// piece by piece.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder using the default rope tuning.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append appends s to the builder's pending content.
func (b *Builder) Append(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

// AppendRune appends a single rune to the builder's pending content.
func (b *Builder) AppendRune(r rune) *Builder {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	b.buf = append(b.buf, buf[:n]...)
	return b
}

// Build returns a Rope holding everything appended so far.
func (b *Builder) Build() (*Rope, error) {
	return New(string(b.buf)), nil
}
