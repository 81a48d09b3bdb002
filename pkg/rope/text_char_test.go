package rope

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ropecore/rope/internal/ropeconfig"
)

func TestTextChar_InsertDeleteSwap(t *testing.T) {
	r := New("hello")

	r2, err := r.InsertChar(5, '!')
	require.NoError(t, err)
	assert.Equal(t, "hello!", r2.String())

	r3, err := r2.DeleteChar(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", r3.String())

	r4, err := r3.SwapChar(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "oellh", r4.String())
}

func TestTextChar_CollectMapFilterReverse(t *testing.T) {
	r := New("Hello, World!")

	assert.Equal(t, []rune("Hello, World!"), r.CollectChars())

	upper, err := r.MapChars(unicode.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, "HELLO, WORLD!", upper.String())

	letters, err := r.FilterChars(IsLetter)
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld", letters.String())

	reversed, err := r.ReverseChars()
	require.NoError(t, err)
	assert.Equal(t, "!dlroW ,olleH", reversed.String())
}

func TestTextChar_ForEachCharSpansChunks(t *testing.T) {
	// Forces multiple leaf chunks so forEachChar's ChunkIterator-based walk
	// has to cross a chunk boundary mid-scan.
	text := "abcdefghijklmnopqrstuvwxyz0123456789"
	cfg := ropeconfig.Default()
	cfg.ChunkCapacity = 4
	cfg.Fanout = 3
	r := NewWithConfig(text, cfg)

	assert.Equal(t, len([]rune(text)), len(r.CollectChars()))
	assert.Equal(t, 26, r.CountLetters())
	assert.Equal(t, 10, r.CountDigits())
	assert.True(t, r.ContainsChar('m'))
	assert.False(t, r.ContainsChar('!'))
}

func TestTextChar_TrimWhitespace(t *testing.T) {
	r := New("   padded text   ")
	trimmed, err := r.TrimWhitespace()
	require.NoError(t, err)
	assert.Equal(t, "padded text", trimmed.String())
}

func TestTextChar_RemoveCharsAndCountChar(t *testing.T) {
	r := New("mississippi")
	assert.Equal(t, 4, r.CountChar('i'))

	removed, err := r.RemoveChars('s', 'i')
	require.NoError(t, err)
	assert.Equal(t, "mpp", removed.String())
}
