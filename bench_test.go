package permugo

import (
	"runtime"
	"testing"
)

// Element sizes mirror realistic payloads: a word, a small record, a fat
// record.
type elem8 struct {
	v uint64
}

type elem100 struct {
	v   uint64
	pad [92]byte
}

type elem1000 struct {
	v   uint64
	pad [992]byte
}

const benchLen = 100_000

// reversalIndex is the worst case for cycle locality: every position moves.
func reversalIndex(n int) *Index {
	raw := make([]int, n)
	for i := range raw {
		raw[i] = n - 1 - i
	}
	return NewIndexUnchecked(raw)
}

func benchmarkApply[T any](b *testing.B, parallel bool) {
	ix := reversalIndex(benchLen)
	data := make([]T, benchLen)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var err error
		if parallel {
			err = ApplyParallelN(data, ix, runtime.GOMAXPROCS(0))
		} else {
			err = Apply(data, ix)
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	b.Run("8B", func(b *testing.B) { benchmarkApply[elem8](b, false) })
	b.Run("100B", func(b *testing.B) { benchmarkApply[elem100](b, false) })
	b.Run("1000B", func(b *testing.B) { benchmarkApply[elem1000](b, false) })
}

func BenchmarkApplyParallel(b *testing.B) {
	b.Run("8B", func(b *testing.B) { benchmarkApply[elem8](b, true) })
	b.Run("100B", func(b *testing.B) { benchmarkApply[elem100](b, true) })
	b.Run("1000B", func(b *testing.B) { benchmarkApply[elem1000](b, true) })
}

func BenchmarkNewIndex(b *testing.B) {
	raw := reversalIndex(benchLen).Positions()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewIndex(raw); err != nil {
			b.Fatal(err)
		}
	}
}
