package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ropecore/rope/internal/ropeconfig"
)

func TestChunkIterator_ReassemblesContent(t *testing.T) {
	text := strings.Repeat("0123456789", 50)
	cfg := ropeconfig.Default()
	cfg.ChunkCapacity = 16
	cfg.Fanout = 4
	r := NewWithConfig(text, cfg)

	var buf strings.Builder
	chunkCount := 0
	offsets := []int{}
	it := r.NewChunkIterator()
	for it.Next() {
		chunkCount++
		offsets = append(offsets, it.ByteOffset())
		buf.WriteString(it.Current())
	}

	require.Greater(t, chunkCount, 1, "expected content to span multiple leaf chunks")
	assert.Equal(t, text, buf.String())

	for i := 1; i < len(offsets); i++ {
		assert.Greater(t, offsets[i], offsets[i-1])
	}
}

func TestIterChunks_StopsOnFalse(t *testing.T) {
	text := strings.Repeat("ab", 200)
	cfg := ropeconfig.Default()
	cfg.ChunkCapacity = 8
	cfg.Fanout = 3
	r := NewWithConfig(text, cfg)

	seen := 0
	for range IterChunks(r) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestChunkIterator_EmptyRope(t *testing.T) {
	it := Empty().NewChunkIterator()
	require.True(t, it.Next())
	assert.Equal(t, "", it.Current())
	assert.False(t, it.Next())
}
