package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHash_Consistency_Small verifies that ropes with the same content but
// different chunk boundaries produce the same hash.
func TestHash_Consistency_Small(t *testing.T) {
	b1 := NewBuilder()
	b1.Append("Hello w")
	b1.Append("orld")
	r1, err := b1.Build()
	require.NoError(t, err)

	b2 := NewBuilder()
	b2.Append("Hell")
	b2.Append("o world")
	r2, err := b2.Build()
	require.NoError(t, err)

	assert.Equal(t, r1.HashCode64(), r2.HashCode64())
	assert.Equal(t, r1.String(), r2.String())
}

// TestHash_Consistency_Medium tests hash consistency with larger text.
func TestHash_Consistency_Medium(t *testing.T) {
	text := "Hello World! This is a test string for hashing. " +
		"It should produce the same hash regardless of chunk boundaries. " +
		"The quick brown fox jumps over the lazy dog. " +
		"こんにちは世界 🌍"

	b1 := NewBuilder()
	for i := 0; i < len(text); i += 5 {
		end := min(i+5, len(text))
		b1.Append(text[i:end])
	}
	r1, err := b1.Build()
	require.NoError(t, err)

	b2 := NewBuilder()
	for i := 0; i < len(text); i += 7 {
		end := min(i+7, len(text))
		b2.Append(text[i:end])
	}
	r2, err := b2.Build()
	require.NoError(t, err)

	assert.Equal(t, r1.HashCode64(), r2.HashCode64())
	assert.Equal(t, r1.String(), r2.String())
}

// TestHash_Consistency_Large tests hash consistency with large text.
func TestHash_Consistency_Large(t *testing.T) {
	text := ""
	for i := 0; i < 100; i++ {
		text += "Hello World! " +
			"The quick brown fox jumps over the lazy dog. " +
			"こんにちは世界 🌍🌎🌏\n"
	}

	b1 := NewBuilder()
	for i := 0; i < len(text); i += 521 {
		end := min(i+521, len(text))
		b1.Append(text[i:end])
	}
	r1, err := b1.Build()
	require.NoError(t, err)

	b2 := NewBuilder()
	for i := 0; i < len(text); i += 547 {
		end := min(i+547, len(text))
		b2.Append(text[i:end])
	}
	r2, err := b2.Build()
	require.NoError(t, err)

	assert.Equal(t, r1.HashCode64(), r2.HashCode64())
	assert.Equal(t, r1.String(), r2.String())
}

func TestHash_DifferentContent(t *testing.T) {
	r1 := New("Hello World")
	r2 := New("Hello World!")
	assert.NotEqual(t, r1.HashCode64(), r2.HashCode64())
}

func TestHash_EmptyRope(t *testing.T) {
	assert.Equal(t, Empty().HashCode64(), New("").HashCode64())
}

func TestHash_HashCode32(t *testing.T) {
	assert.Equal(t, New("Hello World").HashCode32(), New("Hello World").HashCode32())
}

func TestHash_HashEquals(t *testing.T) {
	r1 := New("Hello World")
	r2 := New("Hello World")
	r3 := New("Hello World!")

	assert.True(t, r1.HashEquals(r2))
	assert.False(t, r1.HashEquals(r3))
}

func TestHash_SingleInsert(t *testing.T) {
	r1 := New("Hello World")
	hash1 := r1.HashCode64()

	r2, err := r1.Insert(5, "XXX")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, r2.HashCode64())
}

func TestHash_Delete(t *testing.T) {
	r1 := New("Hello World")
	hash1 := r1.HashCode64()

	r2, err := r1.Delete(5, 6)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, r2.HashCode64())
}

func TestHash_SplitMerge(t *testing.T) {
	text := "Hello World Test String"
	r := New(text)
	hash1 := r.HashCode64()

	left, right, err := r.Split(6)
	require.NoError(t, err)
	merged := left.AppendRope(right)

	assert.Equal(t, hash1, merged.HashCode64())
	assert.Equal(t, text, merged.String())
}

func TestHash_ChunkHashes(t *testing.T) {
	r1 := New("Hello")
	r2 := r1.Append(" World")

	hashes := r2.ChunkHashes()
	assert.True(t, len(hashes) >= 1)
	for _, h := range hashes {
		assert.NotEqual(t, uint32(0), h)
	}
}

func TestHash_CombinedChunkHash(t *testing.T) {
	r := New("Hello World")
	r = r.Append(" Test")

	assert.NotEqual(t, uint32(0), r.CombinedChunkHash())
}

func TestHash_Unicode(t *testing.T) {
	text := "Hello 世界 🌍"
	assert.Equal(t, New(text).HashCode64(), New(text).HashCode64())
}

func TestHash_CRLF(t *testing.T) {
	text := "Line 1\r\nLine 2\r\nLine 3"
	assert.Equal(t, New(text).HashCode64(), New(text).HashCode64())
}

func TestHash_Integrity(t *testing.T) {
	r := New("Hello World Test")
	hash1 := r.HashCode64()
	hash2 := r.HashCode64()
	hash3 := r.HashCode64()

	assert.Equal(t, hash1, hash2)
	assert.Equal(t, hash2, hash3)
}
