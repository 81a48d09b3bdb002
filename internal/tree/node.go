package tree

// Node is the tagged-union representation of a tree node: exactly one of
// *Inode[L,S] or *Lnode[L,S] at runtime. Go has no enums with payloads, so
// this is expressed as a narrow interface implemented by two concrete,
// mutually exclusive types, rather than attempting to emulate a
// match-on-variant directly.
//
// Nodes carry no parent pointers: navigation is always top-down from a root,
// or via an iterator that records its own descent stack. Parent pointers
// would defeat copy-on-write sharing between a tree and its derived slices.
type Node[L Leaf[L, S], S Summary[S]] interface {
	// Summary returns the cached fold of this subtree's leaf summaries.
	Summary() S

	// BaseLen returns the cached sum of Len() across every leaf in this
	// subtree.
	BaseLen() int

	// LeafCount returns the number of leaves in this subtree.
	LeafCount() int

	// Valid reports whether this node satisfies the invariant a containing
	// Inode expects of a non-root child: for an Lnode, BigEnough(); for an
	// Inode, HasEnoughChildren().
	Valid() bool

	asInode() (*Inode[L, S], bool)
	asLnode() (*Lnode[L, S], bool)
}

func isInode[L Leaf[L, S], S Summary[S]](n Node[L, S]) bool {
	_, ok := n.asInode()
	return ok
}

func mustInode[L Leaf[L, S], S Summary[S]](n Node[L, S]) *Inode[L, S] {
	in, ok := n.asInode()
	if !ok {
		panic("tree: expected internal node")
	}
	return in
}

func mustLnode[L Leaf[L, S], S Summary[S]](n Node[L, S]) *Lnode[L, S] {
	ln, ok := n.asLnode()
	if !ok {
		panic("tree: expected leaf node")
	}
	return ln
}
