package permugo

import (
	"runtime"
	"sync"
)

// DefaultParallelThreshold is the dataset length below which the parallel
// entry points delegate to the sequential algorithm. Below this size the
// fork-join overhead dominates the work.
const DefaultParallelThreshold = 10_000

// ApplyParallel is ApplyParallelN with the host's available parallelism
// (runtime.GOMAXPROCS) as the worker count.
func ApplyParallel[T any](data []T, ix *Index) error {
	return ApplyParallelN(data, ix, runtime.GOMAXPROCS(0))
}

// ApplyParallelN reorders data in place like Apply, splitting the work
// across numWorkers goroutines for large datasets.
//
// When len(data) < DefaultParallelThreshold or numWorkers <= 1, it delegates
// entirely to the sequential Apply. Otherwise it runs two phases: phase 1
// forks one worker per contiguous chunk, each moving elements from the
// shared, read-only dataset into its exclusive chunk of a transient buffer;
// after the join barrier, phase 2 relocates the buffer back into data in a
// single pass. Chunk ownership is disjoint by construction, so the phases
// need no locks or atomics.
//
// Returns an error matching ErrLengthMismatch when ix.Len() != len(data),
// leaving data unmodified. With a validated Index the phases themselves
// cannot fail, so a call that passes the length check always completes the
// full permutation; partially-moved states are reachable only by violating
// the NewIndexUnchecked precondition, which voids the contract.
func ApplyParallelN[T any](data []T, ix *Index, numWorkers int) error {
	return applyParallel(data, ix, numWorkers, DefaultParallelThreshold)
}

func applyParallel[T any](data []T, ix *Index, numWorkers, threshold int) error {
	n := len(data)
	if n < threshold || numWorkers <= 1 {
		return Apply(data, ix)
	}

	if err := ix.checkLen(n); err != nil {
		return err
	}

	if numWorkers > n {
		numWorkers = n
	}

	buffer := make([]T, n)
	chunkSize := (n + numWorkers - 1) / numWorkers

	// Phase 1: every worker reads from the whole dataset but writes only its
	// own buffer chunk. data is not mutated until all workers have joined.
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(dst []T, src []int) {
			defer wg.Done()
			for k, srcIdx := range src {
				dst[k] = data[srcIdx]
			}
		}(buffer[lo:hi:hi], ix.pos[lo:hi])
	}
	wg.Wait()

	// Phase 2: bulk relocation back into the original storage. Ownership of
	// every element has passed to data once this returns; the buffer is
	// surrendered to the GC with no per-element work.
	copy(data, buffer)

	return nil
}
