package tree

// Measure returns the M-measure of the whole tree: metric.Measure folded
// over the root summary. A free function, not a method, because Go forbids
// attaching a new type parameter (M) to a method of the already-generic
// *Tree[L, S] receiver.
func Measure[L Leaf[L, S], S Summary[S], M Numeric](t *Tree[L, S], metric Metric[S, M]) M {
	return metric.Measure(t.root.Summary())
}

// LeafAtMeasure returns the leaf containing the measure-th unit of the
// M-metric, plus the M-measure of every leaf before it. It performs no
// bounds checking beyond what panics naturally when descent runs off the
// end of a node's children.
func LeafAtMeasure[L Leaf[L, S], S Summary[S], M Numeric](t *Tree[L, S], metric Metric[S, M], measure M) (L, M) {
	return leafAtMeasure[L, S, M](t.root, metric, measure)
}

func leafAtMeasure[L Leaf[L, S], S Summary[S], M Numeric](n Node[L, S], metric Metric[S, M], measure M) (L, M) {
	if ln, ok := n.asLnode(); ok {
		return ln.value, M(0)
	}

	in := mustInode[L, S](n)
	var offset M
	for _, child := range in.children {
		m := metric.Measure(child.Summary())
		if offset+m > measure {
			leaf, childOffset := leafAtMeasure[L, S, M](child, metric, measure-offset)
			return leaf, offset + childOffset
		}
		offset += m
	}
	// measure landed exactly at the end of the subtree: return the last
	// leaf, consistent with the "no bounds checks" contract (the caller is
	// responsible for measure <= Measure(t) + one unit).
	last := in.children[len(in.children)-1]
	lastMeasure := metric.Measure(last.Summary())
	leaf, childOffset := leafAtMeasure[L, S, M](last, metric, lastMeasure)
	return leaf, (offset - lastMeasure) + childOffset
}

// Depth returns the number of node levels from the root down to a leaf
// (a tree with a single leaf has depth 1). Every leaf in a well-formed tree
// sits at the same depth, so walking the leftmost spine is sufficient.
func Depth[L Leaf[L, S], S Summary[S]](t *Tree[L, S]) int {
	depth := 1
	n := t.root
	for {
		in, ok := n.asInode()
		if !ok {
			return depth
		}
		depth++
		if len(in.children) == 0 {
			return depth
		}
		n = in.children[0]
	}
}

// ConvertMeasure finds the leaf containing the M1-coordinate upTo, splits it
// at upTo using m1's SlicingMetric, and sums m2.Measure over everything to
// the left (the left partial leaf plus every whole leaf before it).
func ConvertMeasure[L Leaf[L, S], S Summary[S], M1 Numeric, M2 Numeric](
	t *Tree[L, S],
	m1 SlicingMetric[L, S, M1],
	upTo M1,
	m2 Metric[S, M2],
) M2 {
	return convertMeasure[L, S, M1, M2](t.root, m1, upTo, m2)
}

func convertMeasure[L Leaf[L, S], S Summary[S], M1 Numeric, M2 Numeric](
	n Node[L, S],
	m1 SlicingMetric[L, S, M1],
	upTo M1,
	m2 Metric[S, M2],
) M2 {
	if ln, ok := n.asLnode(); ok {
		left, leftSummary, _, _ := m1.Split(ln.value, upTo, ln.summary)
		_ = left
		return m2.Measure(leftSummary)
	}

	in := mustInode[L, S](n)
	var offset M1
	var total M2
	for _, child := range in.children {
		m := m1.Measure(child.Summary())
		if offset+m >= upTo {
			total += convertMeasure[L, S, M1, M2](child, m1, upTo-offset, m2)
			return total
		}
		offset += m
		total += m2.Measure(child.Summary())
	}
	return total
}
