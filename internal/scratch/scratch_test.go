package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocWords(t *testing.T) {
	t.Run("heap backed", func(t *testing.T) {
		w := AllocWords(128)
		defer w.Release()

		require.Len(t, w.Slice(), 128)
		assert.False(t, w.OffHeap())

		for _, v := range w.Slice() {
			require.Zero(t, v)
		}

		w.Slice()[0] = 1
		w.Slice()[127] = ^uint64(0)
		assert.Equal(t, uint64(1), w.Slice()[0])
	})

	t.Run("off heap backed", func(t *testing.T) {
		n := OffHeapMinBytes / 8 // exactly at the threshold
		w := AllocWords(n)
		defer w.Release()

		require.Len(t, w.Slice(), n)

		if w.OffHeap() {
			for i := 0; i < n; i += 4096 {
				require.Zero(t, w.Slice()[i])
			}
			w.Slice()[n-1] = 42
			assert.Equal(t, uint64(42), w.Slice()[n-1])
		}
	})

	t.Run("zero words", func(t *testing.T) {
		w := AllocWords(0)
		assert.Empty(t, w.Slice())
		assert.False(t, w.OffHeap())
		require.NoError(t, w.Release())
	})

	t.Run("release clears slice", func(t *testing.T) {
		w := AllocWords(8)
		require.NoError(t, w.Release())
		assert.Nil(t, w.Slice())
		require.NoError(t, w.Release()) // idempotent
	})
}

func TestWordsForBits(t *testing.T) {
	assert.Equal(t, 0, WordsForBits(0))
	assert.Equal(t, 1, WordsForBits(1))
	assert.Equal(t, 1, WordsForBits(64))
	assert.Equal(t, 2, WordsForBits(65))
	assert.Equal(t, 2, WordsForBits(128))
	assert.Equal(t, 3, WordsForBits(129))
}
