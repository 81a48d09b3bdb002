package rope

import (
	"bytes"
	"hash/fnv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ropecore/rope/internal/ropeconfig"
	"github.com/ropecore/rope/internal/textleaf"
	"github.com/ropecore/rope/internal/tree"
)

// Rope is a persistent, copy-on-write text buffer backed by a generic
// metric-summarized B-tree. Every mutating method returns a new Rope and
// leaves the receiver untouched; sharing between versions happens at the
// node level, not the byte level.
//
// A nil *Rope behaves as the empty rope for every read-only method; several
// write methods accept a nil receiver too (documented per method) so chains
// like (*Rope)(nil).Insert(0, "x") work the way an empty zero value should.
type Rope struct {
	id     uuid.UUID
	tree   *tree.Tree[*textleaf.GapBuffer, textleaf.ChunkSummary]
	config ropeconfig.Config

	runeCount         int
	lastByteIsNewline bool
}

func defaultLeaf(maxBytes int) func() *textleaf.GapBuffer {
	return func() *textleaf.GapBuffer { return textleaf.NewGapBuffer(maxBytes, nil) }
}

// newFromTree wraps an already-built tree in a Rope, deriving the cached
// rune count and trailing-newline flag the facade needs for O(1) Length()
// and LineCount() without re-decoding the whole content on every
// call.
func newFromTree(t *tree.Tree[*textleaf.GapBuffer, textleaf.ChunkSummary], cfg ropeconfig.Config) *Rope {
	r := &Rope{id: uuid.New(), tree: t, config: cfg}

	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](t)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		r.runeCount += utf8.RuneCount(leaf.Bytes())
	}

	if n := t.BaseLen(); n > 0 {
		leaf, _ := tree.LeafAtMeasure[*textleaf.GapBuffer, textleaf.ChunkSummary, int](t, textleaf.ByteMetric{}, n-1)
		r.lastByteIsNewline = leaf.HasTrailingNewline()
	}

	return r
}

// New builds a Rope from s using the default tuning (ropeconfig.Default()).
func New(s string) *Rope {
	cfg := ropeconfig.Default()
	leaves := textleaf.Chunk(cfg.ChunkCapacity, []byte(s))
	t := tree.FromLeaves[*textleaf.GapBuffer, textleaf.ChunkSummary](cfg.Fanout, leaves, defaultLeaf(cfg.ChunkCapacity))
	return newFromTree(t, cfg)
}

// NewWithConfig builds a Rope from s using an explicit tuning, e.g. one
// loaded via ropeconfig.Load.
func NewWithConfig(s string, cfg ropeconfig.Config) *Rope {
	leaves := textleaf.Chunk(cfg.ChunkCapacity, []byte(s))
	t := tree.FromLeaves[*textleaf.GapBuffer, textleaf.ChunkSummary](cfg.Fanout, leaves, defaultLeaf(cfg.ChunkCapacity))
	return newFromTree(t, cfg)
}

// Empty returns a Rope with no content.
func Empty() *Rope {
	return New("")
}

// FromReader reads src to completion and builds a Rope from its content
// using the default tuning.
func FromReader(src io.Reader) (*Rope, error) {
	return FromReaderWithConfig(src, ropeconfig.Default())
}

// FromReaderWithConfig reads src to completion and builds a Rope using an
// explicit tuning.
func FromReaderWithConfig(src io.Reader, cfg ropeconfig.Config) (*Rope, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(string(data), cfg), nil
}

// ID returns this rope's session-scoped identity. Two ropes sharing content
// have different IDs; the ID survives through edits derived from the same
// lineage only if the caller tracks it itself, the same way a document's
// editor-assigned identity is independent of the text inside it.
func (r *Rope) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// ========== Read-only content access ==========

// Length returns the number of Unicode code points in the rope.
func (r *Rope) Length() int {
	if r == nil {
		return 0
	}
	return r.runeCount
}

// LengthChars is an alias for Length, named explicitly for callers that
// distinguish it from LengthBytes at the call site.
func (r *Rope) LengthChars() int { return r.Length() }

// LengthBytes returns the number of bytes in the rope's UTF-8 encoding.
func (r *Rope) LengthBytes() int {
	if r == nil {
		return 0
	}
	return r.tree.BaseLen()
}

// String returns the rope's full content.
func (r *Rope) String() string {
	if r == nil {
		return ""
	}
	return string(r.Bytes())
}

// Bytes returns the rope's full content as a freshly copied byte slice.
func (r *Rope) Bytes() []byte {
	if r == nil {
		return nil
	}
	buf := make([]byte, 0, r.tree.BaseLen())
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		buf = append(buf, leaf.Bytes()...)
	}
	return buf
}

// Slice returns the substring spanning character positions [start, end).
func (r *Rope) Slice(start, end int) (s string, err error) {
	defer recoverToError(&err)

	n := r.Length()
	if err := errSliceOutOfBounds(start, end, n); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}

	startByte := r.charToByte(start)
	endByte := r.charToByte(end)
	ts := tree.SliceRange[*textleaf.GapBuffer, textleaf.ChunkSummary, int](r.tree, textleaf.ByteMetric{}, startByte, endByte)

	var buf bytes.Buffer
	buf.Write(ts.FirstSlice().Bytes())
	ts.Interior(func(leaf *textleaf.GapBuffer) { buf.Write(leaf.Bytes()) })
	if ts.LeafCount() > 1 {
		buf.Write(ts.LastSlice().Bytes())
	}
	return buf.String(), nil
}

// CharAt returns the rune at character position pos.
func (r *Rope) CharAt(pos int) (ru rune, err error) {
	defer recoverToError(&err)

	n := r.Length()
	if err := errCharOutOfBounds(pos, n); err != nil {
		return 0, err
	}
	byteOff := r.charToByte(pos)
	leaf, leafStart := tree.LeafAtMeasure[*textleaf.GapBuffer, textleaf.ChunkSummary, int](r.tree, textleaf.ByteMetric{}, byteOff)
	ru, _ = utf8.DecodeRune(leaf.Bytes()[byteOff-leafStart:])
	return ru, nil
}

// ByteAt returns the byte at byte position pos.
func (r *Rope) ByteAt(pos int) (b byte, err error) {
	defer recoverToError(&err)

	n := r.LengthBytes()
	if err := errByteOutOfBounds(pos, n); err != nil {
		return 0, err
	}
	leaf, leafStart := tree.LeafAtMeasure[*textleaf.GapBuffer, textleaf.ChunkSummary, int](r.tree, textleaf.ByteMetric{}, pos)
	return leaf.Bytes()[pos-leafStart], nil
}

// charToByte converts a character (rune) position into the corresponding
// byte offset by decoding runes chunk by chunk. The tree's only metrics are
// byte- and line-based; there is no rune metric, so this walk is the
// facade's own cost to pay, not the core's.
func (r *Rope) charToByte(charPos int) int {
	if charPos == 0 {
		return 0
	}
	if charPos == r.runeCount {
		return r.tree.BaseLen()
	}

	seen := 0
	byteOff := 0
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		data := leaf.Bytes()
		count := utf8.RuneCount(data)
		if seen+count <= charPos {
			seen += count
			byteOff += len(data)
			continue
		}
		for len(data) > 0 {
			if seen == charPos {
				return byteOff
			}
			_, size := utf8.DecodeRune(data)
			data = data[size:]
			byteOff += size
			seen++
		}
	}
	return byteOff
}

// byteToChar converts a byte offset into the corresponding character (rune)
// position, the reverse of charToByte. Leaf summaries carry no rune count
// (only bytes and line breaks), so locating the rune boundary still costs a
// scan of the leaves up to byteOff — but that scan is over whole chunks, not
// a tree descent per character the way repeated CharAt calls would be.
func (r *Rope) byteToChar(byteOff int) int {
	if byteOff == 0 {
		return 0
	}
	if byteOff == r.tree.BaseLen() {
		return r.runeCount
	}

	seen := 0
	pos := 0
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		data := leaf.Bytes()
		if pos+len(data) <= byteOff {
			pos += len(data)
			seen += utf8.RuneCount(data)
			continue
		}
		for len(data) > 0 && pos < byteOff {
			_, size := utf8.DecodeRune(data)
			data = data[size:]
			pos += size
			seen++
		}
		return seen
	}
	return seen
}

// lineBreakByteOffset returns the byte offset immediately after the n-th
// line break in the rope (n == 0 returns 0), found via a single descent
// through LineBreakMetric/ByteMetric rather than a content scan.
func (r *Rope) lineBreakByteOffset(n int) int {
	if n == 0 {
		return 0
	}
	return tree.ConvertMeasure[*textleaf.GapBuffer, textleaf.ChunkSummary, int, int](
		r.tree, textleaf.LineBreakMetric{}, n, textleaf.ByteMetric{},
	)
}

// ========== Search ==========

// Contains reports whether substring occurs anywhere in the rope.
func (r *Rope) Contains(substring string) bool {
	return strings.Contains(r.String(), substring)
}

// Index returns the byte offset of the first occurrence of substring, or -1.
func (r *Rope) Index(substring string) int {
	return strings.Index(r.String(), substring)
}

// LastIndex returns the byte offset of the last occurrence of substring, or -1.
func (r *Rope) LastIndex(substring string) int {
	return strings.LastIndex(r.String(), substring)
}

// ========== Cloning and equality ==========

// Clone returns a Rope referencing the same tree; because every mutation
// already produces a new Rope rather than touching the receiver, cloning an
// immutable value needs no deep copy.
func (r *Rope) Clone() *Rope {
	if r == nil {
		return nil
	}
	clone := *r
	clone.id = uuid.New()
	return &clone
}

// Equals reports whether r and other hold the same content. The fast path
// is a byte-exact comparison (hash agreement plus a String() check); ropes
// that fail it are compared again after NFC-normalizing both sides, so two
// ropes built from differently-composed Unicode input (e.g. "é" as one
// precomposed rune versus "e" + a combining acute accent) still compare
// equal by content.
func (r *Rope) Equals(other *Rope) bool {
	if r.HashEquals(other) && r.String() == other.String() {
		return true
	}
	return textleaf.NormalizeForCompare(r.String()) == textleaf.NormalizeForCompare(other.String())
}

// ========== Validation ==========

// Validate reports whether the rope's content is well-formed UTF-8 and its
// underlying tree passes tree.AssertInvariants (internal-node child counts
// within the branching bounds).
func (r *Rope) Validate() (err error) {
	if r == nil {
		return nil
	}
	defer recoverToError(&err)
	r.tree.AssertInvariants()
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		if !utf8.Valid(leaf.Bytes()) {
			return &ErrInvalidInput{Parameter: "content", Value: nil, Reason: "not valid UTF-8"}
		}
	}
	return nil
}

// ========== Balance ==========
//
// The underlying B-tree enforces its fill and depth invariants at every
// construction site (FromLeaves, ToTree), so a Rope is always balanced by
// construction; there is no separate rebalancing pass to run.

// Balance returns r unchanged: every Rope is already balanced.
func (r *Rope) Balance() *Rope { return r }

// Optimize returns r unchanged, for the same reason as Balance.
func (r *Rope) Optimize() *Rope { return r }

// IsBalanced always reports true, for the same reason as Balance.
func (r *Rope) IsBalanced() bool { return true }

// ========== Structural metrics ==========

// Size returns the rope's content size in bytes.
func (r *Rope) Size() int { return r.LengthBytes() }

// Depth returns the number of levels in the underlying tree.
func (r *Rope) Depth() int {
	if r == nil {
		return 0
	}
	return tree.Depth[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
}

// TreeStats summarizes the shape of a Rope's backing tree.
type TreeStats struct {
	Bytes      int
	Runes      int
	LineBreaks int
	LeafCount  int
	Depth      int
}

// Stats returns a snapshot of the rope's tree shape.
func (r *Rope) Stats() *TreeStats {
	if r == nil {
		return &TreeStats{}
	}
	return &TreeStats{
		Bytes:      r.tree.BaseLen(),
		Runes:      r.runeCount,
		LineBreaks: r.tree.Summary().LineBreaks,
		LeafCount:  r.tree.LeafCount(),
		Depth:      r.Depth(),
	}
}

// ========== Hashing ==========
//
// Hashing uses hash/fnv rather than a pack dependency: content hashing for
// identity comparison has no transport, storage, or parsing shape for a
// third-party library to own, and fnv is the standard library's own answer
// to "fast, non-cryptographic hash of a byte string".

// HashCode64 returns a 64-bit FNV-1a hash of the rope's content.
func (r *Rope) HashCode64() uint64 {
	if r == nil {
		return fnv.New64a().Sum64()
	}
	h := fnv.New64a()
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		h.Write(leaf.Bytes())
	}
	return h.Sum64()
}

// HashCode32 returns a 32-bit FNV-1a hash of the rope's content.
func (r *Rope) HashCode32() uint32 {
	if r == nil {
		return fnv.New32a().Sum32()
	}
	h := fnv.New32a()
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		h.Write(leaf.Bytes())
	}
	return h.Sum32()
}

// HashEquals reports whether r and other have equal content hashes. Equal
// hashes strongly suggest, but do not prove, equal content; callers that
// need certainty should compare String() too.
func (r *Rope) HashEquals(other *Rope) bool {
	if r.LengthBytes() != other.LengthBytes() {
		return false
	}
	return r.HashCode64() == other.HashCode64()
}

// ChunkHashes returns a 32-bit FNV-1a hash of each leaf chunk's bytes, in
// order. Two ropes built from the same content but chunked differently will
// generally produce different ChunkHashes even though HashCode64 agrees.
func (r *Rope) ChunkHashes() []uint32 {
	if r == nil {
		return nil
	}
	var hashes []uint32
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.tree)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		h := fnv.New32a()
		h.Write(leaf.Bytes())
		hashes = append(hashes, h.Sum32())
	}
	return hashes
}

// CombinedChunkHash folds ChunkHashes into a single 32-bit value, order
// sensitive so that two ropes with the same chunks in different orders hash
// differently.
func (r *Rope) CombinedChunkHash() uint32 {
	h := fnv.New32a()
	for _, c := range r.ChunkHashes() {
		var b [4]byte
		b[0] = byte(c)
		b[1] = byte(c >> 8)
		b[2] = byte(c >> 16)
		b[3] = byte(c >> 24)
		h.Write(b[:])
	}
	return h.Sum32()
}

var (
	_ ReadOnlyDocument = (*Rope)(nil)
	_ CharAtAccessor   = (*Rope)(nil)
	_ ByteAtAccessor   = (*Rope)(nil)
	_ Cloneable        = (*Rope)(nil)
	_ Searchable       = (*Rope)(nil)
	_ Validatable      = (*Rope)(nil)
	_ Balanceable      = (*Rope)(nil)
	_ DocumentMetrics  = (*Rope)(nil)
)
