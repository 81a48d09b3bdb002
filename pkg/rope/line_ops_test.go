package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ropecore/rope/internal/ropeconfig"
)

func TestRange_GetLine(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := New(text)

	lines, err := r.SplitLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"Line 1", "Line 2", "Line 3"}, lines)
}

func TestRange_LineAt(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := New(text)

	line, err := r.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "Line 1", line)

	line, err = r.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "Line 2", line)

	line, err = r.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "Line 3", line)
}

func TestLineCount_TrailingNewline(t *testing.T) {
	assert.Equal(t, 3, New("Line 1\nLine 2\nLine 3").LineCount())
	assert.Equal(t, 3, New("Line 1\nLine 2\nLine 3\n").LineCount())
	assert.Equal(t, 1, New("no newline here").LineCount())
	assert.Equal(t, 0, New("").LineCount())
}

func TestLineStartEnd_MatchLineCount(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3\n"
	r := New(text)

	assert.Equal(t, 0, r.LineStart(0))
	assert.Equal(t, 7, r.LineStart(1))
	assert.Equal(t, 14, r.LineStart(2))

	end, err := r.LineEnd(0)
	require.NoError(t, err)
	assert.Equal(t, 6, end)

	end, err = r.LineEnd(2)
	require.NoError(t, err)
	assert.Equal(t, r.Length()-1, end)
}

func TestLineStartEnd_ManyLines(t *testing.T) {
	// Exercises the tree.ConvertMeasure descent across several leaf/inode
	// boundaries rather than just a single-chunk rope.
	cfg := ropeconfig.Default()
	cfg.ChunkCapacity = 8
	cfg.Fanout = 3

	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, strings.Repeat("x", i%5+1))
	}
	text := strings.Join(lines, "\n")
	r := NewWithConfig(text, cfg)

	require.Equal(t, len(lines), r.LineCount())
	for i, want := range lines {
		line, err := r.Line(i)
		require.NoError(t, err)
		assert.Equal(t, want, line, "line %d", i)
	}
}

func TestLineInfo_LineAtChar(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	r := New(text)

	assert.Equal(t, 0, r.LineAtChar(0))
	assert.Equal(t, 0, r.LineAtChar(4))
	assert.Equal(t, 0, r.LineAtChar(5))
	assert.Equal(t, 0, r.LineAtChar(6))
	assert.Equal(t, 1, r.LineAtChar(12))
	assert.Equal(t, 1, r.LineAtChar(13))
}
