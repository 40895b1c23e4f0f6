// Package scratch provides fixed-size word buffers for transient bookkeeping
// (visited bitmaps, validator seen-sets).
//
// Small buffers come from the Go heap. Buffers at or above OffHeapMinBytes are
// backed by anonymous memory mappings so that permuting very large datasets
// does not inflate the GC heap with bookkeeping that is dead the moment the
// call returns. The buffer size is known up front, so unlike a growable arena
// a single mapping per buffer suffices.
package scratch

import (
	"unsafe"

	"github.com/hupe1980/permugo/internal/mmap"
)

// OffHeapMinBytes is the smallest buffer placed in an anonymous mapping
// instead of the Go heap.
const OffHeapMinBytes = 1 << 20 // 1 MiB

// Words is a zero-initialized buffer of uint64 words.
type Words struct {
	words   []uint64
	mapping *mmap.Mapping // nil when heap-backed
}

// AllocWords allocates a zero-initialized buffer of n words.
// It never fails: if the off-heap mapping cannot be created, the buffer
// silently falls back to the heap.
func AllocWords(n int) *Words {
	if n <= 0 {
		return &Words{}
	}

	if size := n * 8; size >= OffHeapMinBytes {
		if m, err := mmap.MapAnon(size); err == nil {
			// Sequential access is the common pattern for both cycle
			// tracing and validation scans.
			_ = m.Advise(mmap.AccessSequential)
			buf := m.Bytes()
			return &Words{
				words:   unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), n),
				mapping: m,
			}
		}
	}

	return &Words{words: make([]uint64, n)}
}

// Slice returns the word buffer. Valid only until Release is called.
func (w *Words) Slice() []uint64 {
	return w.words
}

// OffHeap reports whether the buffer lives in an anonymous mapping.
func (w *Words) OffHeap() bool {
	return w.mapping != nil
}

// Release returns the buffer's memory. It must not be called while the
// slice returned by Slice is still in use.
func (w *Words) Release() error {
	w.words = nil
	if w.mapping != nil {
		m := w.mapping
		w.mapping = nil
		return m.Close()
	}
	return nil
}

// WordsForBits returns the number of uint64 words needed to hold n bits.
func WordsForBits(n int) int {
	return (n + 63) / 64
}
