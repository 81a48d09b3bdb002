package tree

// Leaf is the capability bundle a user type must provide to be stored at the
// leaves of a Tree. It plays both roles the Rust source splits across
// Leaf::Slice and Leaf: a "borrowed slice view" of L is just another value
// of L, not a distinct type. Whether it shares storage with the leaf it was
// cut from is up to L's own split operations.
//
// BigEnough reports whether the leaf satisfies the leaf-fill invariant
// (every leaf except possibly a tree's sole leaf must be "big enough").
// Summarize must agree exactly with whatever the leaf's split/balance
// operations produce; the tree never recomputes a summary it can instead
// derive by subtraction.
//
// BalanceSlices redistributes or merges two adjacent (possibly under-filled)
// leaf fragments into one or two leaves that each satisfy BigEnough. In the
// Rust source this is an associated function (L::balance_slices) with no
// privileged operand; here it is a method on the first operand purely so Go
// has somewhere to hang it, and it must not depend on the receiver's own
// content beyond what was passed explicitly.
type Leaf[L any, S Summary[S]] interface {
	Summarize() S
	BigEnough() bool
	BalanceSlices(firstSummary S, second L, secondSummary S) (L, S, *L, *S)

	// Len returns this leaf's value along the base metric: the canonical
	// linear coordinate leaves concatenate along (byte count, for text).
	// Exposed directly on Leaf, rather than requiring callers to supply a
	// base-metric witness, because every node in the tree needs it for
	// plain structural bookkeeping (descent arithmetic, pull-up checks)
	// independent of which higher-level Metric the caller is navigating by.
	Len() int
}
