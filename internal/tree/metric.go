package tree

// Metric is a monoid homomorphism from a leaf summary onto a scalar
// coordinate: Measure(a.Add(b)) must equal Measure(a) + Measure(b) for all
// summaries a, b. Implementations are typically zero-sized marker types
// (e.g. textleaf.ByteMetric{}) passed around as witness values, since Go
// has no generic methods: a type parameter can be attached to a function or
// a type, never added on top of a method's existing receiver. Tree exposes
// its metric-aware operations (Measure, LeafAtMeasure, Slice, Units,
// ConvertMeasure) as free functions in this package that take such a
// witness instead of as generic methods on *Tree.
type Metric[S any, M Numeric] interface {
	Measure(S) M
}

// SlicingMetric additionally knows how to split a leaf at a coordinate
// along its metric. The implementation is free to compute whichever half's
// summary is cheaper to scan and derive the other by subtraction.
type SlicingMetric[L any, S Summary[S], M Numeric] interface {
	Metric[S, M]
	Split(chunk L, offset M, summary S) (left L, leftSummary S, right L, rightSummary S)
}

// UnitMetric treats its coordinate space as a stream of discrete units and
// can peel the leading one off a chunk. Advance may differ from the
// returned unit's own summary when a unit's on-disk footprint differs from
// what navigation should treat as consumed (e.g. a line metric that strips
// the trailing newline from the unit it returns but still advances past it).
type UnitMetric[L any, S Summary[S], M Numeric] interface {
	Metric[S, M]
	FirstUnit(chunk L, summary S) (first L, firstSummary S, advance S, rest L, restSummary S)
}

// DoubleEndedUnitMetric adds symmetric access from the end of a chunk and a
// Remainder operation that peels off any trailing partial (unterminated)
// unit.
type DoubleEndedUnitMetric[L any, S Summary[S], M Numeric] interface {
	UnitMetric[L, S, M]
	LastUnit(chunk L, summary S) (rest L, restSummary S, last L, lastSummary S, advance S)
	Remainder(chunk L, summary S) (rest L, restSummary S, last L, lastSummary S)
}
