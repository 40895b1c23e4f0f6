package permugo

import (
	"github.com/hupe1980/permugo/internal/pool"
)

// Swapper is the minimal mutable-container surface for ApplySwapper. It is a
// subset of sort.Interface, so any sortable container already satisfies it.
type Swapper interface {
	Len() int
	Swap(i, j int)
}

// Apply reorders data in place so that data[i] becomes dataOld[ix.At(i)] for
// every i.
//
// The permutation is decomposed into disjoint cycles and realized as a chain
// of pairwise swaps, so elements are relocated without ever being duplicated.
// Extra memory is limited to a pooled visited bitmap and the pending swap
// list. Fixed points cost nothing; the identity permutation performs zero
// swaps.
//
// Returns an error matching ErrLengthMismatch when ix.Len() != len(data),
// leaving data unmodified.
func Apply[T any](data []T, ix *Index) error {
	if err := ix.checkLen(len(data)); err != nil {
		return err
	}

	ac := pool.Get(len(data))
	defer pool.Put(ac)

	ix.traceCycles(ac)

	// The swap chain realizes the permutation when applied in the reverse
	// of discovery order. Cycles are disjoint, so reversing the combined
	// list is equivalent to reversing each cycle's chain.
	swaps := ac.Swaps
	for k := len(swaps) - 1; k >= 0; k-- {
		s := swaps[k]
		data[s.A], data[s.B] = data[s.B], data[s.A]
	}

	return nil
}

// MustApply is like Apply but panics on error. Suitable only when the caller
// has already guaranteed that the index and data lengths match.
func MustApply[T any](data []T, ix *Index) {
	if err := Apply(data, ix); err != nil {
		panic(err)
	}
}

// ApplySwapper reorders an arbitrary container through its Len/Swap surface,
// using the same cycle-swap engine as Apply. Since mutation happens only via
// Swap, the container's element type never needs to be copied by this
// package.
func ApplySwapper(s Swapper, ix *Index) error {
	if err := ix.checkLen(s.Len()); err != nil {
		return err
	}

	ac := pool.Get(s.Len())
	defer pool.Put(ac)

	ix.traceCycles(ac)

	swaps := ac.Swaps
	for k := len(swaps) - 1; k >= 0; k-- {
		s.Swap(swaps[k].A, swaps[k].B)
	}

	return nil
}

// traceCycles walks every cycle of the permutation once, recording the swap
// chain into ac. Fixed points are skipped entirely: cycle starts come from
// the moved-position bitmap when available, from a plain scan otherwise.
func (ix *Index) traceCycles(ac *pool.ApplyContext) {
	if ix.moved != nil {
		it := ix.moved.Iterator()
		for it.HasNext() {
			ix.traceFrom(int(it.Next()), ac)
		}
		return
	}

	for i, v := range ix.pos {
		if v != i {
			ix.traceFrom(i, ac)
		}
	}
}

// traceFrom records the swap chain for the cycle through start: pairs
// (start, x) for each successive x along the cycle, stopping when the walk
// returns to start. Cycles are disjoint, so one unvisited member means the
// whole cycle is unvisited.
func (ix *Index) traceFrom(start int, ac *pool.ApplyContext) {
	if ac.IsVisited(start) {
		return
	}

	x := start
	for {
		ac.MarkVisited(x)
		x = ix.pos[x]
		if x == start {
			break
		}
		ac.PushSwap(start, x)
	}
}
