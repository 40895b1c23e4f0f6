// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go garbage
// collector's control. Scratch buffers for very large permutations (visited
// bitmaps, validator seen-sets) live here so that applying a permutation to
// hundreds of millions of elements does not inflate the GC heap.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON, madvise(2) for hints
//   - Windows: VirtualAlloc with demand-paged commit (advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent read access. Close() is idempotent and
// protected by an atomic flag. Callers must ensure no goroutines access
// Bytes() after Close() returns.
package mmap
