package textleaf

import "github.com/ropecore/rope/internal/tree"

// ByteMetric measures and slices chunks by raw byte offset. It doubles as
// the tree's base metric for text: a chunk's Len() already returns its byte
// count, so ByteMetric.Measure just mirrors that at the summary level.
type ByteMetric struct{}

func (ByteMetric) Measure(s ChunkSummary) int { return s.Bytes }

func (ByteMetric) Split(chunk *GapBuffer, offset int, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary) {
	if offset == chunk.Len() {
		return chunk, summary, NewGapBuffer(chunk.maxBytes, nil), ChunkSummary{}
	}
	left, right := chunk.SplitAtByte(offset)

	// Summarize whichever side is cheaper to scan and derive the other by
	// subtraction.
	var leftSummary, rightSummary ChunkSummary
	if offset < chunk.Len()/2 {
		leftSummary = left.Summarize()
		rightSummary = summary.Sub(leftSummary)
	} else {
		rightSummary = right.Summarize()
		leftSummary = summary.Sub(rightSummary)
	}
	return left, leftSummary, right, rightSummary
}

// LineBreakMetric counts and splits on line breaks, treating the terminator
// itself as part of the line it ends (so a unit's advance equals its own
// summary). Unlike LineMetric it is also a SlicingMetric: Split finds the
// byte offset of the n-th line break directly, which is what lets
// tree.ConvertMeasure translate a line number into a byte offset in one
// descent instead of materializing lines one at a time. LineMetric stays the
// metric callers iterate by for display (it strips the terminator from the
// unit it returns); LineBreakMetric is the one navigation routes through.
type LineBreakMetric struct{}

func (LineBreakMetric) Measure(s ChunkSummary) int { return s.LineBreaks }

func (LineBreakMetric) Split(chunk *GapBuffer, lineOffset int, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary) {
	left, right := chunk.SplitAtLine(lineOffset)
	leftSummary := ChunkSummary{Bytes: left.Len(), LineBreaks: lineOffset}
	rightSummary := summary.Sub(leftSummary)
	return left, leftSummary, right, rightSummary
}

func (m LineBreakMetric) FirstUnit(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, ChunkSummary, *GapBuffer, ChunkSummary) {
	first, firstSummary, rest, restSummary := m.Split(chunk, 1, summary)
	return first, firstSummary, firstSummary, rest, restSummary
}

func (m LineBreakMetric) LastUnit(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary, ChunkSummary) {
	var rest, last *GapBuffer
	var lastSummary ChunkSummary
	if chunk.HasTrailingNewline() {
		rest, last = chunk.SplitAtLine(summary.LineBreaks - 1)
		lastSummary = ChunkSummary{Bytes: last.Len(), LineBreaks: 1}
	} else {
		rest, last = chunk.SplitAtLine(summary.LineBreaks)
		lastSummary = ChunkSummary{Bytes: last.Len(), LineBreaks: 0}
	}
	restSummary := summary.Sub(lastSummary)
	return rest, restSummary, last, lastSummary, lastSummary
}

func (m LineBreakMetric) Remainder(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary) {
	if chunk.HasTrailingNewline() {
		return chunk, summary, NewGapBuffer(chunk.maxBytes, nil), ChunkSummary{}
	}
	rest, restSummary, last, lastSummary, _ := m.LastUnit(chunk, summary)
	return rest, restSummary, last, lastSummary
}

// LineMetric counts and yields lines with their trailing terminator
// stripped: the unit FirstUnit/LastUnit return is the line's own text, but
// advance still reflects the terminator so navigation steps past it.
type LineMetric struct{}

func (LineMetric) Measure(s ChunkSummary) int { return s.LineBreaks }

func (LineMetric) FirstUnit(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, ChunkSummary, *GapBuffer, ChunkSummary) {
	first, firstSummary, advance, rest, restSummary := (LineBreakMetric{}).FirstUnit(chunk, summary)

	removed := first.TruncateTrailingLineBreak()
	firstSummary.Bytes -= removed
	firstSummary.LineBreaks = 0

	return first, firstSummary, advance, rest, restSummary
}

func (LineMetric) LastUnit(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary, ChunkSummary) {
	rest, restSummary, last, lastSummary, advance := (LineBreakMetric{}).LastUnit(chunk, summary)

	if lastSummary.LineBreaks == 0 {
		return rest, restSummary, last, lastSummary, lastSummary
	}

	removed := last.TruncateTrailingLineBreak()
	lastSummary.Bytes -= removed
	lastSummary.LineBreaks = 0

	return rest, restSummary, last, lastSummary, advance
}

func (LineMetric) Remainder(chunk *GapBuffer, summary ChunkSummary) (*GapBuffer, ChunkSummary, *GapBuffer, ChunkSummary) {
	return (LineBreakMetric{}).Remainder(chunk, summary)
}

var (
	_ tree.SlicingMetric[*GapBuffer, ChunkSummary, int]         = ByteMetric{}
	_ tree.SlicingMetric[*GapBuffer, ChunkSummary, int]         = LineBreakMetric{}
	_ tree.DoubleEndedUnitMetric[*GapBuffer, ChunkSummary, int] = LineBreakMetric{}
	_ tree.DoubleEndedUnitMetric[*GapBuffer, ChunkSummary, int] = LineMetric{}
)
