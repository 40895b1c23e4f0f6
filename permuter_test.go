package permugo

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/permugo/resource"
)

func TestPermuter(t *testing.T) {
	ctx := context.Background()

	t.Run("apply", func(t *testing.T) {
		p := New[int](MustIndex([]int{2, 0, 1}))
		data := []int{10, 20, 30}

		require.NoError(t, p.Apply(ctx, data))
		assert.Equal(t, []int{30, 10, 20}, data)
	})

	t.Run("length mismatch", func(t *testing.T) {
		p := New[int](MustIndex([]int{2, 0, 1}))
		data := []int{1, 2, 3, 4}

		require.ErrorIs(t, p.Apply(ctx, data), ErrLengthMismatch)
		assert.Equal(t, []int{1, 2, 3, 4}, data)
	})

	t.Run("metrics are recorded", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		p := New[int](MustIndex([]int{1, 0}), WithMetricsCollector(metrics))

		require.NoError(t, p.Apply(ctx, []int{1, 2}))
		require.Error(t, p.Apply(ctx, []int{1, 2, 3}))

		stats := metrics.GetStats()
		assert.Equal(t, int64(2), stats.ApplyCount)
		assert.Equal(t, int64(1), stats.ApplyErrors)
		assert.Equal(t, int64(2), stats.ElementsMoved)
		assert.Zero(t, stats.ParallelApplies)
	})

	t.Run("parallel path via threshold option", func(t *testing.T) {
		rng := rand.New(rand.NewSource(21))
		ix := Random(64, rng)

		metrics := &BasicMetricsCollector{}
		p := New[int](ix,
			WithNumWorkers(4),
			WithParallelThreshold(16),
			WithMetricsCollector(metrics),
		)

		seq := make([]int, 64)
		par := make([]int, 64)
		for i := range seq {
			seq[i] = i
			par[i] = i
		}

		require.NoError(t, Apply(seq, ix))
		require.NoError(t, p.Apply(ctx, par))
		assert.Equal(t, seq, par)
		assert.Equal(t, int64(1), metrics.GetStats().ParallelApplies)
	})

	t.Run("single worker never goes parallel", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		p := New[int](Identity(64),
			WithNumWorkers(1),
			WithParallelThreshold(16),
			WithMetricsCollector(metrics),
		)

		require.NoError(t, p.Apply(ctx, make([]int, 64)))
		assert.Zero(t, metrics.GetStats().ParallelApplies)
	})

	t.Run("index accessor", func(t *testing.T) {
		ix := Identity(3)
		assert.Same(t, ix, New[int](ix).Index())
	})
}

func TestPermuterApplyAll(t *testing.T) {
	ctx := context.Background()

	t.Run("reorders every dataset", func(t *testing.T) {
		ix := SortIndex([]int{30, 10, 20})
		p := New[int](ix)

		keys := []int{30, 10, 20}
		vals := []int{300, 100, 200}

		require.NoError(t, p.ApplyAll(ctx, keys, vals))
		assert.Equal(t, []int{10, 20, 30}, keys)
		assert.Equal(t, []int{100, 200, 300}, vals)
	})

	t.Run("length pre-check leaves all datasets untouched", func(t *testing.T) {
		p := New[int](MustIndex([]int{1, 0}))

		a := []int{1, 2}
		b := []int{1, 2, 3} // wrong length

		require.ErrorIs(t, p.ApplyAll(ctx, a, b), ErrLengthMismatch)
		assert.Equal(t, []int{1, 2}, a)
		assert.Equal(t, []int{1, 2, 3}, b)
	})

	t.Run("empty dataset list", func(t *testing.T) {
		p := New[int](Identity(2))
		require.NoError(t, p.ApplyAll(ctx))
	})

	t.Run("respects limit option", func(t *testing.T) {
		ix := MustIndex([]int{1, 0})
		p := New[int](ix, WithApplyAllLimit(1))

		datasets := make([][]int, 8)
		for i := range datasets {
			datasets[i] = []int{i, i + 1}
		}

		require.NoError(t, p.ApplyAll(ctx, datasets...))
		for i, d := range datasets {
			assert.Equal(t, []int{i + 1, i}, d)
		}
	})
}

func TestPermuterResourceLimits(t *testing.T) {
	ctx := context.Background()

	t.Run("memory rejection happens before mutation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(22))
		ix := Random(64, rng)

		ctrl := resource.NewController(resource.Config{
			MemoryLimitBytes:     8, // far below the 64*8 byte buffer
			MaxConcurrentApplies: 4,
		})
		p := New[int](ix,
			WithNumWorkers(4),
			WithParallelThreshold(16),
			WithResourceController(ctrl),
		)

		data := make([]int, 64)
		for i := range data {
			data[i] = i
		}

		err := p.Apply(ctx, data)
		require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		for i, v := range data {
			require.Equal(t, i, v)
		}
		assert.Zero(t, ctrl.MemoryUsage())
	})

	t.Run("memory is released after a successful apply", func(t *testing.T) {
		rng := rand.New(rand.NewSource(23))
		ix := Random(64, rng)

		ctrl := resource.NewController(resource.Config{
			MemoryLimitBytes:     1 << 20,
			MaxConcurrentApplies: 4,
		})
		p := New[int](ix,
			WithNumWorkers(4),
			WithParallelThreshold(16),
			WithResourceController(ctrl),
		)

		require.NoError(t, p.Apply(ctx, make([]int, 64)))
		assert.Zero(t, ctrl.MemoryUsage())
	})

	t.Run("canceled context", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MaxConcurrentApplies: 1})
		p := New[int](Identity(4), WithResourceController(ctrl))

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		require.Error(t, p.Apply(canceled, make([]int, 4)))
	})

	t.Run("sequential path skips the buffer reservation", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{
			MemoryLimitBytes: 8, // would reject any parallel buffer
		})
		p := New[int](MustIndex([]int{1, 0}), WithResourceController(ctrl))

		data := []int{1, 2}
		require.NoError(t, p.Apply(ctx, data))
		assert.Equal(t, []int{2, 1}, data)
	})
}
