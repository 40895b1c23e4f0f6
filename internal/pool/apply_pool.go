// Package pool provides object pools for zero-allocation apply operations.
// Uses sync.Pool for automatic memory reuse and bitsets for efficient visited tracking.
package pool

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/permugo/internal/scratch"
)

const (
	// DefaultMaxPositions is the default initial capacity for visited bitsets.
	// Set large enough to avoid reallocations for most use cases
	DefaultMaxPositions = 1 << 20

	// DefaultSwapCapacity is the default capacity for pending swap lists.
	DefaultSwapCapacity = 1024

	// offHeapMinBits is the visited size at which the bitset backing moves
	// off-heap. Matches scratch.OffHeapMinBytes.
	offHeapMinBits = scratch.OffHeapMinBytes * 8
)

// Swap is a pending exchange of the elements at positions A and B.
type Swap struct {
	A, B int
}

// ApplyContext contains pre-allocated buffers for cycle-swap apply operations.
// All fields are reusable across multiple applies to eliminate allocations.
type ApplyContext struct {
	Visited *bitset.BitSet
	Swaps   []Swap

	words *scratch.Words // non-nil when Visited is scratch-backed
}

// applyContextPool is the global pool of ApplyContext objects.
var applyContextPool = sync.Pool{
	New: func() interface{} {
		return &ApplyContext{
			Visited: bitset.New(DefaultMaxPositions),
			Swaps:   make([]Swap, 0, DefaultSwapCapacity),
		}
	},
}

// Get retrieves an ApplyContext from the pool, sized to track n positions.
//
// For very large n the visited bitmap is backed by off-heap scratch words so
// the bookkeeping for huge permutations never lands on the GC heap.
func Get(n int) *ApplyContext {
	ac := applyContextPool.Get().(*ApplyContext)

	if n >= offHeapMinBits {
		w := scratch.AllocWords(scratch.WordsForBits(n))
		ac.words = w
		ac.Visited = bitset.FromWithLength(uint(n), w.Slice())
	} else {
		if ac.Visited == nil || ac.Visited.Len() < uint(n) {
			ac.Visited = bitset.New(uint(n))
		} else {
			ac.Visited.ClearAll()
		}
	}

	ac.Swaps = ac.Swaps[:0]
	return ac
}

// Put returns an ApplyContext to the pool for reuse.
func Put(ac *ApplyContext) {
	if ac.words != nil {
		// Detach the bitset before releasing its backing words.
		ac.Visited = nil
		_ = ac.words.Release()
		ac.words = nil
	}
	if ac.Visited != nil && ac.Visited.Len() > DefaultMaxPositions*10 {
		ac.Visited = bitset.New(DefaultMaxPositions)
	}
	if cap(ac.Swaps) > DefaultSwapCapacity*64 {
		ac.Swaps = make([]Swap, 0, DefaultSwapCapacity)
	}
	applyContextPool.Put(ac)
}

// MarkVisited marks a position as visited.
// Returns true if the position was already visited, false otherwise.
func (ac *ApplyContext) MarkVisited(pos int) bool {
	if ac.Visited.Test(uint(pos)) {
		return true
	}
	ac.Visited.Set(uint(pos))
	return false
}

// IsVisited checks if a position has been visited.
func (ac *ApplyContext) IsVisited(pos int) bool {
	return ac.Visited.Test(uint(pos))
}

// PushSwap records a pending swap of positions a and b.
func (ac *ApplyContext) PushSwap(a, b int) {
	ac.Swaps = append(ac.Swaps, Swap{A: a, B: b})
}
