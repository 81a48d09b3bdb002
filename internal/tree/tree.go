package tree

// Tree is a handle to a shared, persistent B-tree root. Nodes are plain Go
// pointers rather than Rust's Arc<Node>: Go's garbage collector already
// reclaims a node once nothing references it, so the only discipline a
// reference-counted handle buys on top of that — "never mutate a node once
// it might be shared" — is enforced here by convention instead of a runtime
// check. Every construction path (FromLeaves, slice materialization,
// rebalancing) builds fresh Inode/Lnode values and only ever Pushes into an
// Inode that has not yet been handed to anything else; once a Tree or
// TreeSlice is returned to a caller, its nodes are never mutated again.
type Tree[L Leaf[L, S], S Summary[S]] struct {
	root   Node[L, S]
	fanout int
}

// FromLeaves builds a Tree from a sequence of leaves. If leaves is empty the
// result is a single leaf holding defaultLeaf() — constructing from an empty
// stream is a well-defined boundary case, not an error.
func FromLeaves[L Leaf[L, S], S Summary[S]](fanout int, leaves []L, defaultLeaf func() L) *Tree[L, S] {
	if fanout < 2 {
		panic("tree: fanout must be at least 2")
	}

	if len(leaves) == 0 {
		d := defaultLeaf()
		return &Tree[L, S]{root: Node[L, S](LnodeFromValue[L, S](d)), fanout: fanout}
	}

	if len(leaves) == 1 {
		return &Tree[L, S]{root: Node[L, S](LnodeFromValue[L, S](leaves[0])), fanout: fanout}
	}

	level := make([]Node[L, S], len(leaves))
	for i, l := range leaves {
		level[i] = Node[L, S](LnodeFromValue[L, S](l))
	}

	// Each pass groups level into runs of up to fanout, with no attempt to
	// keep a trailing run above the minimum child count — a trailing run
	// can end up as short as 1. That's fine: every such under-filled node
	// only ever occurs nested along the tree's rightmost spine (the chunking
	// always puts the leftover at the end), and the single root.BalanceRightSide()
	// call below walks that whole spine top to bottom, repairing every level
	// of it in one pass.
	for len(level) > fanout {
		next := make([]Node[L, S], 0, len(level)/fanout+1)
		i := 0
		for i < len(level) {
			end := i + fanout
			if end > len(level) {
				end = len(level)
			}
			next = append(next, Node[L, S](InodeFromChildren[L, S](fanout, level[i:end])))
			i = end
		}
		level = next
	}

	root := InodeFromChildren[L, S](fanout, level)
	root.BalanceRightSide()

	t := &Tree[L, S]{root: Node[L, S](root), fanout: fanout}
	t.pullUpRoot()
	return t
}

// Root returns the tree's root node handle. Exported within the package for
// use by the free navigation functions and by TreeSlice conversion; callers
// outside package tree only ever see *Tree and *TreeSlice.
func (t *Tree[L, S]) Root() Node[L, S] { return t.root }

func (t *Tree[L, S]) Fanout() int { return t.fanout }

// Summary returns the root's cached summary.
func (t *Tree[L, S]) Summary() S { return t.root.Summary() }

// BaseLen returns the tree's total length along the base metric (e.g. total
// byte count for text).
func (t *Tree[L, S]) BaseLen() int { return t.root.BaseLen() }

// LeafCount returns the number of leaves in the tree.
func (t *Tree[L, S]) LeafCount() int { return t.root.LeafCount() }

// pullUpRoot continuously replaces the root with its sole child as long as
// the root is an internal node with exactly one child. This is the only
// mechanism by which the tree's depth shrinks.
func (t *Tree[L, S]) pullUpRoot() {
	for {
		in, ok := t.root.asInode()
		if !ok || len(in.children) != 1 {
			return
		}
		t.root = in.children[0]
	}
}

// AssertInvariants panics if an internal node's child count is outside the
// branching bounds (2..fanout at the root, ceil(fanout/2)..fanout below it).
// It does not check summary accuracy, leaf fill, or depth uniformity. It
// is a debugging aid, analogous to the Rust source's #[cfg(debug_assertions)]
// assert_invariants, and is exercised directly by tests rather than wired
// into every public call.
func (t *Tree[L, S]) AssertInvariants() {
	assertNode[L, S](t.root, true)
}

func assertNode[L Leaf[L, S], S Summary[S]](n Node[L, S], isRoot bool) {
	if in, ok := n.asInode(); ok {
		min := 2
		if !isRoot {
			min = minChildren(in.fanout)
		}
		if len(in.children) < min || len(in.children) > in.fanout {
			panic("tree: inode child count violates FANOUT invariant")
		}
		for _, c := range in.children {
			assertNode[L, S](c, false)
		}
		return
	}
	ln := mustLnode[L, S](n)
	want := ln.value.Summarize()
	_ = want // equality left to the concrete summary type's own tests;
	// tree package has no Equal constraint on S.
}
