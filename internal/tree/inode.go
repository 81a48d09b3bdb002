package tree

// Inode is an internal node: a bounded run of child handles plus a cached
// fold of their summaries. fanout is the branching factor this particular
// tree was built with (8 in production, 2 in tests exercising rebalancing
// with small trees) — carried as a field rather than a type parameter
// because Go has no const generics.
type Inode[L Leaf[L, S], S Summary[S]] struct {
	fanout   int
	children []Node[L, S]
	summary  S
	baseLen  int
	leaves   int
}

// EmptyInode builds an Inode with no children. Only ever used as scratch
// space during construction or cutting; it is never a valid, published node
// on its own — the caller must Push at least two children (or one, only
// transiently at the root) before it can appear in a Tree.
func EmptyInode[L Leaf[L, S], S Summary[S]](fanout int) *Inode[L, S] {
	return &Inode[L, S]{fanout: fanout, children: make([]Node[L, S], 0, fanout)}
}

// InodeFromChildren builds an Inode from at most fanout children, caching
// the folded summary.
func InodeFromChildren[L Leaf[L, S], S Summary[S]](fanout int, children []Node[L, S]) *Inode[L, S] {
	if len(children) > fanout {
		panic("tree: too many children for fanout")
	}
	in := EmptyInode[L, S](fanout)
	for _, c := range children {
		in.Push(c)
	}
	return in
}

func (in *Inode[L, S]) Children() []Node[L, S] { return in.children }

func (in *Inode[L, S]) Fanout() int { return in.fanout }

// Push appends a child, updating the cached summary, base length, and leaf
// count. It panics if the node is already at capacity. It does not check
// the new child's depth: depth uniformity is left to the caller — Push only
// enforces the FANOUT capacity bound.
func (in *Inode[L, S]) Push(child Node[L, S]) {
	if len(in.children) >= in.fanout {
		panic("tree: inode at capacity")
	}
	if len(in.children) == 0 {
		in.summary = child.Summary()
	} else {
		in.summary = in.summary.Add(child.Summary())
	}
	in.baseLen += child.BaseLen()
	in.leaves += child.LeafCount()
	in.children = append(in.children, child)
}

func (in *Inode[L, S]) Summary() S { return in.summary }

func (in *Inode[L, S]) BaseLen() int { return in.baseLen }

func (in *Inode[L, S]) LeafCount() int { return in.leaves }

// HasEnoughChildren reports the branching invariant for a non-root inode:
// at least ceil(FANOUT/2) children.
func (in *Inode[L, S]) HasEnoughChildren() bool {
	return len(in.children) >= minChildren(in.fanout)
}

func (in *Inode[L, S]) Valid() bool { return in.HasEnoughChildren() }

func (in *Inode[L, S]) asInode() (*Inode[L, S], bool) { return in, true }

func (in *Inode[L, S]) asLnode() (*Lnode[L, S], bool) { return nil, false }

func minChildren(fanout int) int {
	return (fanout + 1) / 2
}

// recompute rebuilds the cached summary/baseLen/leafCount from the current
// children slice. Needed after a rebalance mutates in.children directly
// rather than through Push (e.g. replacing the first two children with
// their rebalanced output).
func (in *Inode[L, S]) recompute() {
	var summary S
	baseLen, leaves := 0, 0
	for i, c := range in.children {
		if i == 0 {
			summary = c.Summary()
		} else {
			summary = summary.Add(c.Summary())
		}
		baseLen += c.BaseLen()
		leaves += c.LeafCount()
	}
	in.summary, in.baseLen, in.leaves = summary, baseLen, leaves
}

// BalanceFirstChildWithSecond repairs an under-filled first child against
// its immediate right sibling. If the first child is an Lnode, the two
// leaves are merged/redistributed via L.BalanceSlices; if it is an Inode,
// children are moved across the boundary (or the two inodes merged) the
// same way, one level down. Rebalancing is always local: it never touches
// more than these two positions.
func (in *Inode[L, S]) BalanceFirstChildWithSecond() {
	balancePair(in, 0, 1)
}

// BalanceLastChildWithPenultimate is the symmetric operation on the last
// two children.
func (in *Inode[L, S]) BalanceLastChildWithPenultimate() {
	n := len(in.children)
	balancePair(in, n-2, n-1)
}

func balancePair[L Leaf[L, S], S Summary[S]](in *Inode[L, S], i, j int) {
	first, second := in.children[i], in.children[j]

	if fl, ok := first.asLnode(); ok {
		sl := mustLnode[L, S](second)
		merged, mergedSummary, second2, second2Summary :=
			fl.value.BalanceSlices(fl.summary, sl.value, sl.summary)

		newChildren := make([]Node[L, S], 0, len(in.children)-1)
		newChildren = append(newChildren, in.children[:i]...)
		newChildren = append(newChildren, Node[L, S](NewLnode[L, S](merged, mergedSummary)))
		if second2 != nil {
			newChildren = append(newChildren, Node[L, S](NewLnode[L, S](*second2, *second2Summary)))
		}
		newChildren = append(newChildren, in.children[j+1:]...)
		in.children = newChildren
		in.recompute()
		return
	}

	fi := mustInode[L, S](first)
	si := mustInode[L, S](second)

	combined := make([]Node[L, S], 0, len(fi.children)+len(si.children))
	combined = append(combined, fi.children...)
	combined = append(combined, si.children...)

	if len(combined) <= in.fanout {
		merged := InodeFromChildren[L, S](in.fanout, combined)
		newChildren := make([]Node[L, S], 0, len(in.children)-1)
		newChildren = append(newChildren, in.children[:i]...)
		newChildren = append(newChildren, Node[L, S](merged))
		newChildren = append(newChildren, in.children[j+1:]...)
		in.children = newChildren
	} else {
		// Too many to merge into one node: split evenly so both halves
		// satisfy HasEnoughChildren.
		mid := len(combined) / 2
		left := InodeFromChildren[L, S](in.fanout, combined[:mid])
		right := InodeFromChildren[L, S](in.fanout, combined[mid:])
		newChildren := make([]Node[L, S], 0, len(in.children))
		newChildren = append(newChildren, in.children[:i]...)
		newChildren = append(newChildren, Node[L, S](left), Node[L, S](right))
		newChildren = append(newChildren, in.children[j+1:]...)
		in.children = newChildren
	}
	in.recompute()
}

// BalanceLeftSide walks the leftmost spine, applying the pairwise balance
// at each level, repairing any under-filled nodes a cut introduced along
// the way from the root down to (and including) the first child.
func (in *Inode[L, S]) BalanceLeftSide() {
	if len(in.children) < 2 {
		return
	}
	if !in.children[0].Valid() {
		in.BalanceFirstChildWithSecond()
	}
	if child, ok := in.children[0].asInode(); ok {
		child.BalanceLeftSide()
	}
}

// BalanceRightSide is the symmetric walk down the rightmost spine.
func (in *Inode[L, S]) BalanceRightSide() {
	if len(in.children) < 2 {
		return
	}
	last := len(in.children) - 1
	if !in.children[last].Valid() {
		in.BalanceLastChildWithPenultimate()
	}
	last = len(in.children) - 1
	if child, ok := in.children[last].asInode(); ok {
		child.BalanceRightSide()
	}
}
