package textleaf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGapBufferRoundTrip(t *testing.T) {
	g := NewGapBuffer(64, []byte("hello world"))
	require.Equal(t, "hello world", string(g.Bytes()))
	require.Equal(t, 11, g.Len())
}

func TestGapBufferInsertAt(t *testing.T) {
	g := NewGapBuffer(64, []byte("helloworld"))
	ok := g.InsertAt(5, []byte(", "))
	require.True(t, ok)
	require.Equal(t, "hello, world", string(g.Bytes()))

	ok = g.InsertAt(0, []byte(">> "))
	require.True(t, ok)
	require.Equal(t, ">> hello, world", string(g.Bytes()))
}

func TestGapBufferInsertAtRejectsOverflow(t *testing.T) {
	g := NewGapBuffer(4, []byte("abcd"))
	require.False(t, g.InsertAt(2, []byte("x")))
	require.Equal(t, "abcd", string(g.Bytes()))
}

func TestGapBufferDeleteRange(t *testing.T) {
	g := NewGapBuffer(64, []byte("hello, world"))
	g.DeleteRange(5, 7)
	require.Equal(t, "helloworld", string(g.Bytes()))
}

func TestGapBufferSplitAtByte(t *testing.T) {
	g := NewGapBuffer(64, []byte("hello world"))
	left, right := g.SplitAtByte(5)
	require.Equal(t, "hello", string(left.Bytes()))
	require.Equal(t, " world", string(right.Bytes()))
}

func TestGapBufferSplitAtLine(t *testing.T) {
	g := NewGapBuffer(64, []byte("a\nb\nc"))
	left, right := g.SplitAtLine(1)
	require.Equal(t, "a\n", string(left.Bytes()))
	require.Equal(t, "b\nc", string(right.Bytes()))

	left, right = g.SplitAtLine(0)
	require.Equal(t, "", string(left.Bytes()))
	require.Equal(t, "a\nb\nc", string(right.Bytes()))
}

func TestGapBufferHasTrailingNewline(t *testing.T) {
	require.True(t, NewGapBuffer(8, []byte("a\n")).HasTrailingNewline())
	require.False(t, NewGapBuffer(8, []byte("a")).HasTrailingNewline())
	require.False(t, NewGapBuffer(8, nil).HasTrailingNewline())
}

func TestGapBufferTruncateTrailingLineBreak(t *testing.T) {
	g := NewGapBuffer(8, []byte("abc\n"))
	removed := g.TruncateTrailingLineBreak()
	require.Equal(t, 1, removed)
	require.Equal(t, "abc", string(g.Bytes()))

	g = NewGapBuffer(8, []byte("abc\r\n"))
	removed = g.TruncateTrailingLineBreak()
	require.Equal(t, 2, removed)
	require.Equal(t, "abc", string(g.Bytes()))
}

func TestGapBufferBalanceSlicesMerges(t *testing.T) {
	a := NewGapBuffer(64, []byte("short"))
	b := NewGapBuffer(64, []byte("er"))
	merged, summary, second, _ := a.BalanceSlices(a.Summarize(), b, b.Summarize())
	require.Nil(t, second)
	require.Equal(t, "shorter", string(merged.Bytes()))
	require.Equal(t, 7, summary.Bytes)
}

func TestGapBufferBalanceSlicesSplitsEvenly(t *testing.T) {
	a := NewGapBuffer(8, []byte("aaaaaaaa"))
	b := NewGapBuffer(8, []byte("bbbbbbbb"))
	first, _, second, _ := a.BalanceSlices(a.Summarize(), b, b.Summarize())
	require.NotNil(t, second)
	require.Equal(t, 8, first.Len())
	require.Equal(t, 8, (*second).Len())
	require.Equal(t, "aaaaaaaa", string(first.Bytes()))
	require.Equal(t, "bbbbbbbb", string((*second).Bytes()))
}

func TestChunkSplitsOnCapacity(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 'x'
	}
	chunks := Chunk(30, data)
	require.Len(t, chunks, 4)
	total := 0
	for _, c := range chunks {
		require.LessOrEqual(t, c.Len(), 30)
		total += c.Len()
	}
	require.Equal(t, 100, total)
}

func TestChunkEmpty(t *testing.T) {
	require.Nil(t, Chunk(30, nil))
}
