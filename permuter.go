package permugo

import (
	"context"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// Permuter is a configured, reusable apply engine bound to one validated
// Index. It picks the sequential or parallel algorithm per call, and wires
// in logging, metrics, and optional resource limits.
//
// A Permuter is safe for concurrent use as long as no two concurrent applies
// share a dataset.
type Permuter[T any] struct {
	idx  *Index
	opts options
}

// New creates a Permuter for the given index.
func New[T any](ix *Index, optFns ...Option) *Permuter[T] {
	return &Permuter[T]{
		idx:  ix,
		opts: applyOptions(optFns),
	}
}

// Index returns the permutation index this Permuter applies.
func (p *Permuter[T]) Index() *Index {
	return p.idx
}

// Apply reorders data in place so that data[i] becomes dataOld[ix.At(i)].
// The parallel path is taken when the configured worker count exceeds 1 and
// len(data) reaches the parallel threshold.
func (p *Permuter[T]) Apply(ctx context.Context, data []T) error {
	start := time.Now()
	parallel := p.parallelFor(len(data))

	err := p.apply(ctx, data, parallel)

	p.opts.metricsCollector.RecordApply(len(data), parallel, time.Since(start), err)
	p.opts.logger.LogApply(ctx, len(data), parallel, err)

	return err
}

func (p *Permuter[T]) apply(ctx context.Context, data []T, parallel bool) error {
	// All gating happens before any mutation, so a rejected apply leaves
	// data untouched.
	if err := p.idx.checkLen(len(data)); err != nil {
		return err
	}

	c := p.opts.controller
	if c != nil {
		if err := c.AcquireApply(ctx); err != nil {
			return err
		}
		defer c.ReleaseApply()

		if err := c.AcquireMoves(ctx, len(data)); err != nil {
			return err
		}
	}

	if !parallel {
		return Apply(data, p.idx)
	}

	if c != nil {
		bytes := bufferBytes[T](len(data))
		if err := c.TryAcquireMemory(bytes); err != nil {
			return err
		}
		defer c.ReleaseMemory(bytes)
	}

	return applyParallel(data, p.idx, p.workers(), p.opts.parallelThreshold)
}

// ApplyAll reorders multiple equal-length datasets with the one validated
// index, fanning out across datasets. All lengths are checked before any
// dataset is touched; after that, a failing dataset (resource rejection,
// canceled context) does not roll back siblings that already completed.
func (p *Permuter[T]) ApplyAll(ctx context.Context, datasets ...[]T) error {
	start := time.Now()
	err := p.applyAll(ctx, datasets)

	p.opts.metricsCollector.RecordApplyAll(len(datasets), time.Since(start), err)
	p.opts.logger.LogApplyAll(ctx, len(datasets), err)

	return err
}

func (p *Permuter[T]) applyAll(ctx context.Context, datasets [][]T) error {
	for _, d := range datasets {
		if err := p.idx.checkLen(len(d)); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.applyAllLimit())

	for _, d := range datasets {
		d := d
		g.Go(func() error {
			return p.Apply(ctx, d)
		})
	}

	return g.Wait()
}

// parallelFor reports whether a dataset of length n takes the parallel path.
func (p *Permuter[T]) parallelFor(n int) bool {
	return p.workers() > 1 && n >= p.opts.parallelThreshold
}

func (p *Permuter[T]) workers() int {
	if p.opts.numWorkers > 0 {
		return p.opts.numWorkers
	}
	return runtime.GOMAXPROCS(0)
}

func (p *Permuter[T]) applyAllLimit() int {
	if p.opts.applyAllLimit > 0 {
		return p.opts.applyAllLimit
	}
	return p.workers()
}

// bufferBytes is the size of the transient relocation buffer for n elements.
func bufferBytes[T any](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}
