package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countSummary and intLeaf are a minimal leaf/summary pair used only by this
// package's own tests, mirroring the Rust source's own #[cfg(test)] Count
// leaf: a handful of ints per leaf, base metric = element count.
type countSummary struct {
	Count int
}

func (c countSummary) Add(o countSummary) countSummary { return countSummary{c.Count + o.Count} }
func (c countSummary) Sub(o countSummary) countSummary { return countSummary{c.Count - o.Count} }

const (
	testMinFill = 2
	testMaxFill = 4
)

type intLeaf struct {
	values []int
}

func (l intLeaf) Summarize() countSummary { return countSummary{Count: len(l.values)} }
func (l intLeaf) BigEnough() bool         { return len(l.values) >= testMinFill }
func (l intLeaf) Len() int                { return len(l.values) }

func (l intLeaf) BalanceSlices(firstSummary countSummary, second intLeaf, secondSummary countSummary) (intLeaf, countSummary, *intLeaf, *countSummary) {
	combined := append(append([]int{}, l.values...), second.values...)
	if len(combined) <= testMaxFill {
		merged := intLeaf{values: combined}
		return merged, merged.Summarize(), nil, nil
	}
	mid := len(combined) / 2
	first := intLeaf{values: combined[:mid]}
	rest := intLeaf{values: combined[mid:]}
	firstS, restS := first.Summarize(), rest.Summarize()
	return first, firstS, &rest, &restS
}

// countMetric measures the base metric itself (element count), useful as a
// stand-in for a byte-offset-style SlicingMetric.
type countMetric struct{}

func (countMetric) Measure(s countSummary) int { return s.Count }

func (countMetric) Split(chunk intLeaf, offset int, summary countSummary) (intLeaf, countSummary, intLeaf, countSummary) {
	left := intLeaf{values: append([]int{}, chunk.values[:offset]...)}
	right := intLeaf{values: append([]int{}, chunk.values[offset:]...)}
	return left, left.Summarize(), right, right.Summarize()
}

// elementMetric peels one element at a time, standing in for a line-style
// UnitMetric.
type elementMetric struct{}

func (elementMetric) Measure(s countSummary) int { return s.Count }

func (elementMetric) FirstUnit(chunk intLeaf, summary countSummary) (intLeaf, countSummary, countSummary, intLeaf, countSummary) {
	first := intLeaf{values: chunk.values[:1]}
	rest := intLeaf{values: chunk.values[1:]}
	firstS, restS := first.Summarize(), rest.Summarize()
	return first, firstS, firstS, rest, restS
}

func leavesOf(n int) []intLeaf {
	leaves := make([]intLeaf, 0, (n+1)/2)
	for i := 0; i < n; i += 2 {
		end := i + 2
		if end > n {
			end = n
		}
		vals := make([]int, 0, end-i)
		for v := i; v < end; v++ {
			vals = append(vals, v)
		}
		leaves = append(leaves, intLeaf{values: vals})
	}
	return leaves
}

func defaultIntLeaf() intLeaf { return intLeaf{} }

func buildTree(t *testing.T, n int) *Tree[intLeaf, countSummary] {
	t.Helper()
	tr := FromLeaves[intLeaf, countSummary](2, leavesOf(n), defaultIntLeaf)
	tr.AssertInvariants()
	return tr
}

func collect(t *Tree[intLeaf, countSummary]) []int {
	var out []int
	it := Leaves[intLeaf, countSummary](t)
	for {
		leaf, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, leaf.values...)
	}
	return out
}

func TestFromLeavesEmpty(t *testing.T) {
	tr := buildTree(t, 0)
	require.Equal(t, 0, tr.BaseLen())
	require.Equal(t, 1, tr.LeafCount())
}

func TestFromLeavesSingle(t *testing.T) {
	tr := buildTree(t, 1)
	require.Equal(t, []int{0}, collect(tr))
}

func TestFromLeavesManySizes(t *testing.T) {
	for n := 0; n < 40; n++ {
		tr := buildTree(t, n)
		var want []int
		for i := 0; i < n; i++ {
			want = append(want, i)
		}
		require.Equal(t, want, collect(tr))
		require.Equal(t, n, tr.BaseLen())
	}
}

func TestMeasureAndLeafAtMeasure(t *testing.T) {
	tr := buildTree(t, 23)
	require.Equal(t, 23, Measure[intLeaf, countSummary, int](tr, countMetric{}))

	for i := 0; i < 23; i++ {
		leaf, offset := LeafAtMeasure[intLeaf, countSummary, int](tr, countMetric{}, i)
		require.LessOrEqual(t, offset, i)
		require.Less(t, i-offset, len(leaf.values))
		require.Equal(t, i, leaf.values[i-offset])
	}
}

func TestSliceRangeRoundTrip(t *testing.T) {
	tr := buildTree(t, 37)
	for _, rng := range [][2]int{{0, 37}, {0, 0}, {5, 5}, {1, 2}, {0, 1}, {36, 37}, {3, 30}, {10, 11}} {
		ts := SliceRange[intLeaf, countSummary, int](tr, countMetric{}, rng[0], rng[1])
		require.Equal(t, rng[1]-rng[0], ts.BaseMeasure())

		sliced := ToTree[intLeaf, countSummary](ts, 2)
		sliced.AssertInvariants()

		var want []int
		for i := rng[0]; i < rng[1]; i++ {
			want = append(want, i)
		}
		require.Equal(t, want, collect(sliced))
	}
}

func TestSliceRangeWholeTreeShares(t *testing.T) {
	tr := buildTree(t, 12)
	ts := SliceRange[intLeaf, countSummary, int](tr, countMetric{}, 0, 12)
	sliced := ToTree[intLeaf, countSummary](ts, 2)
	require.Same(t, tr.Root(), sliced.Root())
}

func TestUnitsIterVisitsEveryElement(t *testing.T) {
	tr := buildTree(t, 9)
	it := Units[intLeaf, countSummary, int](tr, elementMetric{})
	var got []int
	for {
		unit, ok := it.Next()
		if !ok {
			break
		}
		require.Len(t, unit.values, 1)
		got = append(got, unit.values[0])
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestConvertMeasure(t *testing.T) {
	tr := buildTree(t, 20)
	for i := 0; i <= 20; i++ {
		got := ConvertMeasure[intLeaf, countSummary, int, int](tr, countMetric{}, i, countMetric{})
		require.Equal(t, i, got)
	}
}
