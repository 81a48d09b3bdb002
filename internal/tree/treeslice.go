package tree

// TreeSlice is a non-owning window into a contiguous range of a Tree.
// Interior leaves are never copied; FirstSlice/LastSlice are the leaf
// fragments the metric's Split returns, so whether they share storage with
// the source leaves depends on the leaf type (textleaf's splits return
// fresh copies).
//
// root is the smallest subtree of the source tree that fully contains the
// range (as the Rust source's from_range_in_root does), and baseOffset is
// the slice's start within root. ToTree's cutTreeSlice relies on this: it
// cuts the first and last children of root that the range touches, which
// is only right when the range spans more than one of root's children.
type TreeSlice[L Leaf[L, S], S Summary[S]] struct {
	root         Node[L, S]
	baseOffset   int
	firstSlice   L
	firstSummary S
	lastSlice    L
	lastSummary  S
	leafCount    int
	baseMeasure  int
	summary      S
}

func (ts *TreeSlice[L, S]) LeafCount() int   { return ts.leafCount }
func (ts *TreeSlice[L, S]) BaseMeasure() int { return ts.baseMeasure }
func (ts *TreeSlice[L, S]) Summary() S       { return ts.summary }
func (ts *TreeSlice[L, S]) Root() Node[L, S] { return ts.root }

// FirstSlice returns the slice's first (possibly only) leaf fragment.
func (ts *TreeSlice[L, S]) FirstSlice() L { return ts.firstSlice }

// LastSlice returns the slice's last leaf fragment. Equal to FirstSlice
// when LeafCount() is 1.
func (ts *TreeSlice[L, S]) LastSlice() L { return ts.lastSlice }

// Interior calls fn for every leaf strictly between the first and last
// fragments, in order. Used by callers (the rope facade's Slice) that need
// the full materialized content of a multi-leaf range without going through
// ToTree's rebalancing.
func (ts *TreeSlice[L, S]) Interior(fn func(L)) {
	if ts.leafCount <= 2 || ts.root == nil {
		return
	}
	start := ts.baseOffset + ts.firstSlice.Len()
	end := ts.baseOffset + ts.baseMeasure - ts.lastSlice.Len()
	walkInteriorLeaves[L, S](ts.root, start, end, fn)
}

func walkInteriorLeaves[L Leaf[L, S], S Summary[S]](n Node[L, S], start, end int, fn func(L)) {
	if ln, ok := n.asLnode(); ok {
		if start < end {
			fn(ln.value)
		}
		return
	}
	in := mustInode[L, S](n)
	offset := 0
	for _, c := range in.children {
		clen := c.BaseLen()
		lo, hi := start-offset, end-offset
		if hi > 0 && lo < clen {
			if lo < 0 {
				lo = 0
			}
			if hi > clen {
				hi = clen
			}
			walkInteriorLeaves[L, S](c, lo, hi, fn)
		}
		offset += clen
		if offset >= end {
			break
		}
	}
}

// locate descends n looking for the leaf whose M-span contains target,
// returning it alongside the M-offset and base-offset of that leaf's start
// within n. Both offsets are tracked in the same pass since cutting needs
// base-metric coordinates but the caller navigates by an arbitrary metric M.
func locate[L Leaf[L, S], S Summary[S], M Numeric](n Node[L, S], metric Metric[S, M], target M) (leaf L, mOffset M, baseOffset int) {
	if ln, ok := n.asLnode(); ok {
		return ln.value, 0, 0
	}
	in := mustInode[L, S](n)
	var mOff M
	baseOff := 0
	for _, child := range in.children {
		m := metric.Measure(child.Summary())
		if mOff+m > target {
			leaf, childM, childBase := locate[L, S, M](child, metric, target-mOff)
			return leaf, mOff + childM, baseOff + childBase
		}
		mOff += m
		baseOff += child.BaseLen()
	}
	last := in.children[len(in.children)-1]
	lastM := metric.Measure(last.Summary())
	leaf, childM, childBase := locate[L, S, M](last, metric, lastM)
	return leaf, (mOff - lastM) + childM, (baseOff - last.BaseLen()) + childBase
}

// SliceRange builds a TreeSlice covering [start, end) of t measured in M.
func SliceRange[L Leaf[L, S], S Summary[S], M Numeric](t *Tree[L, S], metric SlicingMetric[L, S, M], start, end M) *TreeSlice[L, S] {
	if start == end {
		var zero L
		var zeroS S
		return &TreeSlice[L, S]{firstSlice: zero, lastSlice: zero, firstSummary: zeroS, lastSummary: zeroS}
	}

	startLeaf, startM, startBase := locate[L, S, M](t.root, metric, start)
	_, _, rightOfStart, rightOfStartSummary := metric.Split(startLeaf, start-startM, startLeaf.Summarize())
	absoluteStart := startBase + (startLeaf.Len() - rightOfStart.Len())

	// The end leaf is the one holding the range's last unit (end-1), so an
	// end that falls on a leaf boundary keeps that whole leaf as LastSlice.
	endLeaf, endM, endBase := locate[L, S, M](t.root, metric, end-1)
	leftOfEnd, leftOfEndSummary, _, _ := metric.Split(endLeaf, end-endM, endLeaf.Summarize())
	absoluteEnd := endBase + leftOfEnd.Len()

	if startBase == endBase {
		// Both endpoints fall inside the same leaf: split the right part
		// of the first cut again at (end - start) to get the single
		// fragment the slice spans.
		mid, midSummary, _, _ := metric.Split(rightOfStart, end-start, rightOfStartSummary)
		return &TreeSlice[L, S]{
			root:         t.root,
			baseOffset:   absoluteStart,
			firstSlice:   mid,
			firstSummary: midSummary,
			lastSlice:    mid,
			lastSummary:  midSummary,
			leafCount:    1,
			baseMeasure:  mid.Len(),
			summary:      midSummary,
		}
	}

	leafCount := countLeavesInRange[L, S](t.root, absoluteStart, absoluteEnd)

	summary := rightOfStartSummary.Add(leftOfEndSummary)
	if leafCount > 2 {
		summary = sumInteriorSummaries[L, S](t.root, absoluteStart+rightOfStart.Len(), absoluteEnd-leftOfEnd.Len(), rightOfStartSummary).Add(leftOfEndSummary)
	}

	// Narrow root to the smallest subtree that contains the whole range.
	root, rootOffset := t.root, 0
	for in, ok := root.asInode(); ok; in, ok = root.asInode() {
		off, narrowed := rootOffset, false
		for _, c := range in.children {
			if absoluteStart >= off && absoluteEnd <= off+c.BaseLen() {
				root, rootOffset, narrowed = c, off, true
				break
			}
			off += c.BaseLen()
		}
		if !narrowed {
			break
		}
	}

	return &TreeSlice[L, S]{
		root:         root,
		baseOffset:   absoluteStart - rootOffset,
		firstSlice:   rightOfStart,
		firstSummary: rightOfStartSummary,
		lastSlice:    leftOfEnd,
		lastSummary:  leftOfEndSummary,
		leafCount:    leafCount,
		baseMeasure:  absoluteEnd - absoluteStart,
		summary:      summary,
	}
}

func countLeavesInRange[L Leaf[L, S], S Summary[S]](n Node[L, S], start, end int) int {
	if _, ok := n.asLnode(); ok {
		return 1
	}
	in := mustInode[L, S](n)
	offset := 0
	count := 0
	for _, c := range in.children {
		clen := c.BaseLen()
		lo, hi := start-offset, end-offset
		if hi > 0 && lo < clen {
			if lo < 0 {
				lo = 0
			}
			if hi > clen {
				hi = clen
			}
			count += countLeavesInRange[L, S](c, lo, hi)
		}
		offset += clen
		if offset >= end {
			break
		}
	}
	return count
}

// sumInteriorSummaries folds the summaries of every leaf strictly between
// the first and last fragments of a slice. acc seeds the fold with the
// already-known first-fragment summary so the recursion can just keep
// adding as it walks past it.
func sumInteriorSummaries[L Leaf[L, S], S Summary[S]](n Node[L, S], start, end int, acc S) S {
	if ln, ok := n.asLnode(); ok {
		if start < end {
			return acc.Add(ln.summary)
		}
		return acc
	}
	in := mustInode[L, S](n)
	offset := 0
	for _, c := range in.children {
		clen := c.BaseLen()
		lo, hi := start-offset, end-offset
		if hi > 0 && lo < clen {
			if lo < 0 {
				lo = 0
			}
			if hi > clen {
				hi = clen
			}
			acc = sumInteriorSummaries[L, S](c, lo, hi, acc)
		}
		offset += clen
		if offset >= end {
			break
		}
	}
	return acc
}

// ToTree materializes a TreeSlice into an independent, fully balanced Tree.
func ToTree[L Leaf[L, S], S Summary[S]](ts *TreeSlice[L, S], fanout int) *Tree[L, S] {
	switch {
	case ts.root != nil && ts.baseMeasure == ts.root.BaseLen():
		// The slice spans the whole source tree: share the root handle.
		return &Tree[L, S]{root: ts.root, fanout: fanout}

	case ts.leafCount <= 1:
		return &Tree[L, S]{root: Node[L, S](NewLnode[L, S](ts.firstSlice, ts.firstSummary)), fanout: fanout}

	case ts.leafCount == 2:
		first, firstSummary, second, secondSummary := ts.firstSlice.BalanceSlices(ts.firstSummary, ts.lastSlice, ts.lastSummary)
		firstNode := Node[L, S](NewLnode[L, S](first, firstSummary))
		if second == nil {
			return &Tree[L, S]{root: firstNode, fanout: fanout}
		}
		secondNode := Node[L, S](NewLnode[L, S](*second, *secondSummary))
		root := InodeFromChildren[L, S](fanout, []Node[L, S]{firstNode, secondNode})
		return &Tree[L, S]{root: Node[L, S](root), fanout: fanout}

	default:
		root, invalidFirst, invalidLast := cutTreeSlice[L, S](ts, fanout)
		t := &Tree[L, S]{root: Node[L, S](root), fanout: fanout}

		if invalidFirst > 0 {
			mustInode[L, S](t.root).BalanceLeftSide()
			t.pullUpRoot()
		}
		if invalidLast > 0 {
			mustInode[L, S](t.root).BalanceRightSide()
			t.pullUpRoot()
		}
		return t
	}
}

// cutTreeSlice removes every node entirely before the slice's start and
// entirely after its end, replacing the nodes straddling each edge with
// freshly cut spines that bottom out in the slice's FirstSlice/LastSlice
// fragments. Requires ts.leafCount >= 3.
func cutTreeSlice[L Leaf[L, S], S Summary[S]](ts *TreeSlice[L, S], fanout int) (*Inode[L, S], int, int) {
	root := EmptyInode[L, S](fanout)
	invalidFirst, invalidLast := 0, 0

	in := mustInode[L, S](ts.root)
	start, end := ts.baseOffset, ts.baseOffset+ts.baseMeasure
	offset := 0

	children := in.children
	i := 0
	for ; i < len(children); i++ {
		child := children[i]
		this := child.BaseLen()
		if offset+this > start {
			if start == 0 {
				root.Push(child)
			} else {
				first := cutFirstRec[L, S](child, start-offset, ts.firstSlice, ts.firstSummary, &invalidFirst)
				root.Push(first)
			}
			offset += this
			i++
			break
		}
		offset += this
	}

	for ; i < len(children); i++ {
		child := children[i]
		this := child.BaseLen()
		if offset+this >= end {
			if end == ts.root.BaseLen() {
				root.Push(child)
			} else {
				last := cutLastRec[L, S](child, end-offset, ts.lastSlice, ts.lastSummary, &invalidLast)
				root.Push(last)
			}
			break
		}
		root.Push(child)
		offset += this
	}

	return root, invalidFirst, invalidLast
}

func cutFirstRec[L Leaf[L, S], S Summary[S]](n Node[L, S], takeFrom int, startSlice L, startSummary S, invalidNodes *int) Node[L, S] {
	if in, ok := n.asInode(); ok {
		out := EmptyInode[L, S](in.fanout)
		offset := 0
		children := in.children
		for idx, child := range children {
			this := child.BaseLen()
			if offset+this > takeFrom {
				first := cutFirstRec[L, S](child, takeFrom-offset, startSlice, startSummary, invalidNodes)
				firstValid := first.Valid()
				out.Push(first)
				for _, rest := range children[idx+1:] {
					out.Push(rest)
				}
				if !firstValid && len(out.children) > 1 {
					out.BalanceFirstChildWithSecond()
					*invalidNodes--
				}
				if !out.HasEnoughChildren() {
					*invalidNodes++
				}
				return Node[L, S](out)
			}
			offset += this
		}
		panic("tree: cutFirstRec fell off the end of children")
	}

	ln := NewLnode[L, S](startSlice, startSummary)
	if !ln.value.BigEnough() {
		*invalidNodes++
	}
	return Node[L, S](ln)
}

func cutLastRec[L Leaf[L, S], S Summary[S]](n Node[L, S], takeUpTo int, endSlice L, endSummary S, invalidNodes *int) Node[L, S] {
	if in, ok := n.asInode(); ok {
		out := EmptyInode[L, S](in.fanout)
		offset := 0
		for _, child := range in.children {
			this := child.BaseLen()
			if offset+this >= takeUpTo {
				last := cutLastRec[L, S](child, takeUpTo-offset, endSlice, endSummary, invalidNodes)
				lastValid := last.Valid()
				out.Push(last)
				if !lastValid && len(out.children) > 1 {
					out.BalanceLastChildWithPenultimate()
					*invalidNodes--
				}
				if !out.HasEnoughChildren() {
					*invalidNodes++
				}
				return Node[L, S](out)
			}
			out.Push(child)
			offset += this
		}
		panic("tree: cutLastRec fell off the end of children")
	}

	ln := NewLnode[L, S](endSlice, endSummary)
	if !ln.value.BigEnough() {
		// The Rust source sets this to 1 instead of incrementing, which the
		// spec identifies as a bug: an outer invalid count from deeper
		// recursion would be overwritten here. += keeps the count accurate
		// across both spines.
		*invalidNodes++
	}
	return Node[L, S](ln)
}
