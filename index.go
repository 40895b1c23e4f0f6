package permugo

import (
	"cmp"
	"math/rand"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/permugo/internal/conv"
	"github.com/hupe1980/permugo/internal/scratch"
)

// Index is a validated permutation index: a bijection from destination
// position to source position over 0..Len().
//
// An Index is immutable once constructed (the raw slice is copied) and can be
// reused across any number of applies, against any dataset whose length
// matches. The apply entry points re-check the length on every call, since
// the same Index value may be handed a differently sized dataset.
type Index struct {
	pos []int

	// moved holds the non-fixed-point positions. It drives cycle discovery
	// and IsIdentity. nil when the index is too long for 32-bit containers;
	// cycle tracing then falls back to a plain scan.
	moved *roaring.Bitmap
}

// NewIndex validates raw as a permutation of 0..len(raw) and returns the
// Index for it.
//
// Validation allocates a seen-set of len(raw) bits; a value outside [0, len)
// fails with an ErrIndexOutOfRange, a repeated value with an
// ErrIndexDuplicate. Both match ErrInvalidIndex via errors.Is.
func NewIndex(raw []int) (*Index, error) {
	n := len(raw)

	words := scratch.AllocWords(scratch.WordsForBits(n))
	defer func() { _ = words.Release() }()
	seen := bitset.FromWithLength(uint(n), words.Slice())

	for i, v := range raw {
		if v < 0 || v >= n {
			return nil, &ErrIndexOutOfRange{Position: i, Value: v, Len: n}
		}
		if seen.Test(uint(v)) {
			return nil, &ErrIndexDuplicate{Position: i, Value: v}
		}
		seen.Set(uint(v))
	}

	return newIndex(raw), nil
}

// NewIndexUnchecked returns the Index for raw without validating it.
//
// Precondition: raw must be a permutation of 0..len(raw). This is an escape
// hatch for callers that validated elsewhere; if the precondition is
// violated, every subsequent apply has undefined behavior (out-of-range
// positions panic, duplicates silently duplicate and drop elements).
func NewIndexUnchecked(raw []int) *Index {
	return newIndex(raw)
}

// MustIndex is like NewIndex but panics on an invalid raw index.
func MustIndex(raw []int) *Index {
	ix, err := NewIndex(raw)
	if err != nil {
		panic(err)
	}
	return ix
}

func newIndex(raw []int) *Index {
	pos := make([]int, len(raw))
	copy(pos, raw)

	return &Index{
		pos:   pos,
		moved: movedBitmap(pos),
	}
}

// movedBitmap builds the set of non-fixed-point positions, or nil when the
// positions do not fit 32-bit bitmap containers.
func movedBitmap(pos []int) *roaring.Bitmap {
	if len(pos) > 0 {
		if _, err := conv.IntToUint32(len(pos) - 1); err != nil {
			return nil
		}
	}

	rb := roaring.New()
	for i, v := range pos {
		if v != i {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// Identity returns the identity permutation of length n. Applying it is a
// no-op.
func Identity(n int) *Index {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}
	return &Index{pos: pos, moved: movedBitmap(pos)}
}

// Random returns a uniformly random permutation of length n, shuffled with
// rng. A nil rng uses the global math/rand source.
func Random(n int, rng *rand.Rand) *Index {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}

	// Fisher-Yates
	for i := n - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1) //nolint:gosec // not used for security
		}
		pos[i], pos[j] = pos[j], pos[i]
	}

	return &Index{pos: pos, moved: movedBitmap(pos)}
}

// SortIndex returns the permutation that sorts keys ascending: applying the
// result to keys (or to any dataset aligned with keys) yields sorted order.
// Equal keys keep their relative order.
func SortIndex[E cmp.Ordered](keys []E) *Index {
	pos := make([]int, len(keys))
	for i := range pos {
		pos[i] = i
	}

	sort.SliceStable(pos, func(a, b int) bool {
		return keys[pos[a]] < keys[pos[b]]
	})

	return &Index{pos: pos, moved: movedBitmap(pos)}
}

// Len returns the length of the permutation.
func (ix *Index) Len() int {
	return len(ix.pos)
}

// At returns the source position for destination position i.
func (ix *Index) At(i int) int {
	return ix.pos[i]
}

// Positions returns a copy of the full destination-to-source mapping.
func (ix *Index) Positions() []int {
	out := make([]int, len(ix.pos))
	copy(out, ix.pos)
	return out
}

// IsIdentity reports whether the permutation has no effect.
func (ix *Index) IsIdentity() bool {
	if ix.moved != nil {
		return ix.moved.IsEmpty()
	}
	for i, v := range ix.pos {
		if v != i {
			return false
		}
	}
	return true
}

// Inverse returns the reverse mapping: if applying ix moves the element at
// source s to destination d, applying the inverse moves it back.
func (ix *Index) Inverse() *Index {
	inv := make([]int, len(ix.pos))
	for i, v := range ix.pos {
		inv[v] = i
	}
	return &Index{pos: inv, moved: movedBitmap(inv)}
}

// Cycles returns the cycle decomposition of the permutation, excluding fixed
// points. Cycles are reported in order of their smallest member, each
// starting at that member.
func (ix *Index) Cycles() [][]int {
	n := len(ix.pos)
	visited := bitset.New(uint(n))

	var cycles [][]int
	walk := func(start int) {
		if visited.Test(uint(start)) {
			return
		}
		cycle := []int{start}
		visited.Set(uint(start))
		for x := ix.pos[start]; x != start; x = ix.pos[x] {
			visited.Set(uint(x))
			cycle = append(cycle, x)
		}
		cycles = append(cycles, cycle)
	}

	if ix.moved != nil {
		it := ix.moved.Iterator()
		for it.HasNext() {
			walk(int(it.Next()))
		}
		return cycles
	}

	for i, v := range ix.pos {
		if v != i {
			walk(i)
		}
	}
	return cycles
}

// IndexStats summarizes the structure of a permutation.
type IndexStats struct {
	Len          int
	FixedPoints  int
	MovedCount   int
	CycleCount   int
	LongestCycle int
}

// Stats returns structural statistics for the permutation.
func (ix *Index) Stats() IndexStats {
	stats := IndexStats{Len: len(ix.pos)}

	if ix.moved != nil {
		moved, err := conv.Uint64ToInt(ix.moved.GetCardinality())
		if err == nil {
			stats.MovedCount = moved
		}
	} else {
		for i, v := range ix.pos {
			if v != i {
				stats.MovedCount++
			}
		}
	}
	stats.FixedPoints = stats.Len - stats.MovedCount

	for _, cycle := range ix.Cycles() {
		stats.CycleCount++
		if len(cycle) > stats.LongestCycle {
			stats.LongestCycle = len(cycle)
		}
	}

	return stats
}

// checkLen verifies the reusable index against the dataset it is about to
// reorder. Called on every apply, before any mutation.
func (ix *Index) checkLen(dataLen int) error {
	if len(ix.pos) != dataLen {
		return &ErrIndexLength{IndexLen: len(ix.pos), DataLen: dataLen}
	}
	return nil
}
