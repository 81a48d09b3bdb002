// Package textleaf supplies the concrete leaf type the generic B-tree core
// is instantiated with for text storage: a fixed-capacity gap buffer chunk,
// summarized by byte count and line-break count, with byte- and line-based
// metrics for navigation.
package textleaf

// ChunkSummary is the per-leaf summary folded up the tree: total byte
// count and total line-break count of everything beneath a node.
type ChunkSummary struct {
	Bytes      int
	LineBreaks int
}

// Add folds two adjacent summaries together.
func (c ChunkSummary) Add(o ChunkSummary) ChunkSummary {
	return ChunkSummary{Bytes: c.Bytes + o.Bytes, LineBreaks: c.LineBreaks + o.LineBreaks}
}

// Sub removes a previously-folded-in summary. Only ever called with an o
// that was actually added to c at some point; it is not a saturating or
// checked subtraction.
func (c ChunkSummary) Sub(o ChunkSummary) ChunkSummary {
	return ChunkSummary{Bytes: c.Bytes - o.Bytes, LineBreaks: c.LineBreaks - o.LineBreaks}
}
