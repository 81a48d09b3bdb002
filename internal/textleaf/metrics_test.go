package textleaf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteMetricSplit(t *testing.T) {
	g := NewGapBuffer(64, []byte("hello world"))
	var m ByteMetric
	left, leftSummary, right, rightSummary := m.Split(g, 5, g.Summarize())
	require.Equal(t, "hello", string(left.Bytes()))
	require.Equal(t, " world", string(right.Bytes()))
	require.Equal(t, 5, leftSummary.Bytes)
	require.Equal(t, 6, rightSummary.Bytes)
}

func TestByteMetricSplitAtEnd(t *testing.T) {
	g := NewGapBuffer(64, []byte("hi"))
	var m ByteMetric
	left, _, right, rightSummary := m.Split(g, 2, g.Summarize())
	require.Equal(t, "hi", string(left.Bytes()))
	require.Equal(t, "", string(right.Bytes()))
	require.Equal(t, 0, rightSummary.Bytes)
}

func TestLineMetricFirstUnitStripsTerminator(t *testing.T) {
	g := NewGapBuffer(64, []byte("first\nsecond\nthird"))
	var m LineMetric
	first, firstSummary, _, rest, restSummary := m.FirstUnit(g, g.Summarize())
	require.Equal(t, "first", string(first.Bytes()))
	require.Equal(t, 0, firstSummary.LineBreaks)
	require.Equal(t, "second\nthird", string(rest.Bytes()))
	require.Equal(t, 1, restSummary.LineBreaks)
}

func TestLineMetricLastUnitNoTrailingNewline(t *testing.T) {
	g := NewGapBuffer(64, []byte("first\nsecond"))
	var m LineMetric
	rest, _, last, lastSummary, _ := m.LastUnit(g, g.Summarize())
	require.Equal(t, "second", string(last.Bytes()))
	require.Equal(t, 0, lastSummary.LineBreaks)
	require.Equal(t, "first\n", string(rest.Bytes()))
}

func TestLineMetricLastUnitWithTrailingNewline(t *testing.T) {
	g := NewGapBuffer(64, []byte("first\nsecond\n"))
	var m LineMetric
	rest, _, last, lastSummary, _ := m.LastUnit(g, g.Summarize())
	require.Equal(t, "second", string(last.Bytes()))
	require.Equal(t, 0, lastSummary.LineBreaks)
	require.Equal(t, "first\n", string(rest.Bytes()))
}

func TestLineMetricRemainder(t *testing.T) {
	m := LineMetric{}
	withTrailing := NewGapBuffer(64, []byte("a\nb\n"))
	_, _, last, _ := m.Remainder(withTrailing, withTrailing.Summarize())
	require.Equal(t, 0, last.Len())

	withoutTrailing := NewGapBuffer(64, []byte("a\nb"))
	_, _, last, lastSummary := m.Remainder(withoutTrailing, withoutTrailing.Summarize())
	require.Equal(t, "b", string(last.Bytes()))
	require.Equal(t, 0, lastSummary.LineBreaks)
}
