package tree

// UnitsIter walks a Tree one discrete unit of a UnitMetric at a time (e.g.
// one line at a time under the line metric), carrying the "remainder" of the
// current leaf from one Next call to the next. A unit that spans more than
// one leaf comes out as one unit per leaf fragment (see Next).
type UnitsIter[L Leaf[L, S], S Summary[S], M Numeric] struct {
	leaves    *LeavesIter[L, S]
	metric    UnitMetric[L, S, M]
	remainder L
	hasRemain bool
	done      bool
}

// Units returns an iterator over every M-unit of t, left to right.
func Units[L Leaf[L, S], S Summary[S], M Numeric](t *Tree[L, S], metric UnitMetric[L, S, M]) *UnitsIter[L, S, M] {
	return &UnitsIter[L, S, M]{leaves: Leaves[L, S](t), metric: metric}
}

// Next advances to the next unit and reports whether one was produced. A
// returned unit is a leaf-shaped value: for units spanning multiple leaves,
// callers that need the concatenated content must accumulate further up the
// stack (the tree package has no way to concatenate two arbitrary L values
// itself — only the leaf type knows how).
func (it *UnitsIter[L, S, M]) Next() (L, bool) {
	var zero L
	if it.done {
		return zero, false
	}

	chunk, summary, ok := it.nextChunk()
	if !ok {
		it.done = true
		return zero, false
	}

	first, _, _, rest, restSummary := it.metric.FirstUnit(chunk, summary)
	if it.metric.Measure(restSummary) == 0 && rest.Len() == 0 {
		// The whole chunk was consumed by this unit; nothing to carry over.
		return first, true
	}
	it.remainder = rest
	it.hasRemain = true
	return first, true
}

// nextChunk returns the next leaf to feed the metric: either a carried-over
// remainder from a previous unit that spanned a leaf boundary, or a fresh
// leaf from the underlying LeavesIter.
func (it *UnitsIter[L, S, M]) nextChunk() (L, S, bool) {
	if it.hasRemain {
		it.hasRemain = false
		return it.remainder, it.remainder.Summarize(), true
	}
	leaf, ok := it.leaves.Next()
	if !ok {
		var zero L
		var zeroS S
		return zero, zeroS, false
	}
	return leaf, leaf.Summarize(), true
}
