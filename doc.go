// Package permugo reorders slices in place by a validated permutation index,
// without ever duplicating elements.
//
// A permutation index is a bijection from destination position to source
// position over 0..len: after applying, data[i] holds what data[index[i]]
// held before. Permugo validates the index once, then applies it any number
// of times, with:
//
//   - A sequential cycle-swap algorithm: O(1) extra memory beyond a pooled
//     visited bitmap, every element relocated exactly once via pairwise swaps
//   - A parallel buffered-move algorithm for large datasets: lock-free
//     fork-join over disjoint buffer chunks
//   - Swap-only reordering of arbitrary containers through a Len/Swap
//     interface
//   - Index constructors and introspection: Identity, Random, SortIndex,
//     Inverse, cycle decomposition, structural stats
//   - A configurable Permuter engine with structured logging, metrics, and
//     resource limits (buffer memory, concurrent applies, move throughput)
//
// # Quick Start
//
// Build an index once, apply it in place:
//
//	ix, err := permugo.NewIndex([]int{2, 0, 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := []string{"a", "b", "c"}
//	if err := permugo.Apply(data, ix); err != nil {
//	    log.Fatal(err)
//	}
//	// data is now ["c", "a", "b"]
//
// # Choosing an Entry Point
//
//   - Apply: the default; sequential, zero-copy, cheapest for most sizes
//   - ApplyParallel / ApplyParallelN: large datasets (>= 10k elements) with
//     expensive-to-move element types
//   - ApplySwapper: containers that only expose Len/Swap
//   - Permuter: reusing one index across many datasets with logging,
//     metrics, or resource limits
//
// # Errors
//
// NewIndex fails with an error matching ErrInvalidIndex when the raw index
// is not a bijection (out-of-range value or duplicate). Every apply re-checks
// the length and fails with an error matching ErrLengthMismatch before any
// mutation, since one index may be reused against differently sized
// datasets. MustApply and MustIndex are panicking variants for callers that
// have already guaranteed validity.
//
// # Reordering Aligned Columns
//
// One sort order can be propagated across parallel slices:
//
//	keys := []int{30, 10, 20}
//	vals := []string{"thirty", "ten", "twenty"}
//
//	ix := permugo.SortIndex(keys)
//	permugo.MustApply(keys, ix)
//	permugo.MustApply(vals, ix)
//	// keys is [10 20 30], vals is ["ten" "twenty" "thirty"]
//
// See Permuter.ApplyAll for the concurrent fan-out form.
package permugo
