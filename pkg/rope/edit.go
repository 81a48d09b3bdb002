package rope

import (
	"github.com/ropecore/rope/internal/textleaf"
	"github.com/ropecore/rope/internal/tree"
)

// Every edit in this file follows the same shape: slice the receiver's tree
// into the pieces that survive the edit, chunk any new text, and hand the
// whole leaf sequence to tree.FromLeaves. There is no in-place mutation of
// a published tree anywhere in this package — the B-tree core is the only
// thing that ever holds a node, and it never hands one back out mutable.

// collectLeaves drains an iterator into a slice, used to re-flatten a tree
// (or a materialized TreeSlice) before handing it back to FromLeaves.
func collectLeaves(t *tree.Tree[*textleaf.GapBuffer, textleaf.ChunkSummary]) []*textleaf.GapBuffer {
	var out []*textleaf.GapBuffer
	leaves := tree.Leaves[*textleaf.GapBuffer, textleaf.ChunkSummary](t)
	for leaf, ok := leaves.Next(); ok; leaf, ok = leaves.Next() {
		out = append(out, leaf)
	}
	return out
}

// leavesOfByteRange returns the leaves spanning byte range [start, end) of
// t, or nil if the range is empty. SliceRange special-cases an empty range
// into a degenerate TreeSlice with a nil leaf value, so the empty case is
// handled here rather than passed through ToTree.
func leavesOfByteRange(t *tree.Tree[*textleaf.GapBuffer, textleaf.ChunkSummary], fanout, start, end int) []*textleaf.GapBuffer {
	if start == end {
		return nil
	}
	ts := tree.SliceRange[*textleaf.GapBuffer, textleaf.ChunkSummary, int](t, textleaf.ByteMetric{}, start, end)
	return collectLeaves(tree.ToTree[*textleaf.GapBuffer, textleaf.ChunkSummary](ts, fanout))
}

func (r *Rope) rebuild(leaves []*textleaf.GapBuffer) *Rope {
	t := tree.FromLeaves[*textleaf.GapBuffer, textleaf.ChunkSummary](r.config.Fanout, leaves, defaultLeaf(r.config.ChunkCapacity))
	return newFromTree(t, r.config)
}

// Insert returns a new Rope with text inserted at character position pos.
// A nil receiver behaves as Empty(), so Insert is valid at pos 0 on a nil
// *Rope.
func (r *Rope) Insert(pos int, text string) (out *Rope, err error) {
	defer recoverToError(&err)

	if r == nil {
		if pos != 0 {
			return nil, errInsertOutOfBounds(pos, 0)
		}
		return New(text), nil
	}
	if err := errInsertOutOfBounds(pos, r.Length()); err != nil {
		return nil, err
	}

	byteOff := r.charToByte(pos)
	leaves := leavesOfByteRange(r.tree, r.config.Fanout, 0, byteOff)
	leaves = append(leaves, textleaf.Chunk(r.config.ChunkCapacity, []byte(text))...)
	leaves = append(leaves, leavesOfByteRange(r.tree, r.config.Fanout, byteOff, r.tree.BaseLen())...)

	return r.rebuild(leaves), nil
}

// Delete returns a new Rope with the characters in [start, end) removed.
func (r *Rope) Delete(start, end int) (out *Rope, err error) {
	defer recoverToError(&err)

	if r == nil {
		return nil, nil
	}
	if err := errDeleteOutOfBounds(start, end, r.Length()); err != nil {
		return nil, err
	}

	startByte, endByte := r.charToByte(start), r.charToByte(end)
	leaves := leavesOfByteRange(r.tree, r.config.Fanout, 0, startByte)
	leaves = append(leaves, leavesOfByteRange(r.tree, r.config.Fanout, endByte, r.tree.BaseLen())...)

	return r.rebuild(leaves), nil
}

// Replace returns a new Rope with the characters in [start, end) replaced
// by text.
func (r *Rope) Replace(start, end int, text string) (out *Rope, err error) {
	defer recoverToError(&err)

	if r == nil {
		if start != 0 || end != 0 {
			return nil, errDeleteOutOfBounds(start, end, 0)
		}
		return New(text), nil
	}
	if err := errDeleteOutOfBounds(start, end, r.Length()); err != nil {
		return nil, err
	}

	startByte, endByte := r.charToByte(start), r.charToByte(end)
	leaves := leavesOfByteRange(r.tree, r.config.Fanout, 0, startByte)
	leaves = append(leaves, textleaf.Chunk(r.config.ChunkCapacity, []byte(text))...)
	leaves = append(leaves, leavesOfByteRange(r.tree, r.config.Fanout, endByte, r.tree.BaseLen())...)

	return r.rebuild(leaves), nil
}

// Split divides the rope at character position pos into two independent
// ropes, leaving the receiver unchanged.
func (r *Rope) Split(pos int) (left, right *Rope, err error) {
	defer recoverToError(&err)

	if r == nil {
		if pos != 0 {
			return nil, nil, errSplitOutOfBounds(pos, 0)
		}
		return Empty(), Empty(), nil
	}
	if err := errSplitOutOfBounds(pos, r.Length()); err != nil {
		return nil, nil, err
	}

	byteOff := r.charToByte(pos)
	left = r.rebuild(leavesOfByteRange(r.tree, r.config.Fanout, 0, byteOff))
	right = r.rebuild(leavesOfByteRange(r.tree, r.config.Fanout, byteOff, r.tree.BaseLen()))
	return left, right, nil
}

// Concat returns a new Rope holding r's content followed by other's.
func (r *Rope) Concat(other *Rope) *Rope {
	if r == nil {
		return other
	}
	if other == nil {
		return r
	}
	leaves := collectLeaves(r.tree)
	leaves = append(leaves, collectLeaves(other.tree)...)
	return r.rebuild(leaves)
}

// AppendRope is an alias for Concat, named for symmetry with Append.
func (r *Rope) AppendRope(other *Rope) *Rope { return r.Concat(other) }

// Append returns a new Rope with s appended to r's content.
func (r *Rope) Append(s string) *Rope { return r.Concat(New(s)) }

var (
	_ MutableDocument    = (*Rope)(nil)
	_ SplittableDocument = (*Rope)(nil)
	_ Concatenable       = (*Rope)(nil)
)
