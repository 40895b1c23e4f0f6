// Package resource provides global limits for permute operations: transient
// buffer memory, concurrent applies, and element move throughput.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a transient buffer cannot be
// reserved without blocking.
var ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for transient buffer memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentApplies is the maximum number of applies running at once.
	// If 0, defaults to 1.
	MaxConcurrentApplies int64

	// MoveLimitPerSec is the maximum element move throughput.
	// If 0, unlimited.
	MoveLimitPerSec int64
}

// Controller manages global resources (memory, concurrency, move throughput).
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	applySem *semaphore.Weighted

	// Move throughput
	moveLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentApplies <= 0 {
		cfg.MaxConcurrentApplies = 1
	}

	c := &Controller{
		cfg:      cfg,
		applySem: semaphore.NewWeighted(cfg.MaxConcurrentApplies),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.MoveLimitPerSec > 0 {
		c.moveLimiter = rate.NewLimiter(rate.Limit(cfg.MoveLimitPerSec), int(cfg.MoveLimitPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory for a transient buffer.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current reserved buffer memory in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireApply reserves an apply slot. Blocks if all slots are busy.
func (c *Controller) AcquireApply(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.applySem.Acquire(ctx, 1)
}

// TryAcquireApply attempts to reserve an apply slot without blocking.
func (c *Controller) TryAcquireApply() bool {
	if c == nil {
		return true
	}
	return c.applySem.TryAcquire(1)
}

// ReleaseApply releases an apply slot.
func (c *Controller) ReleaseApply() {
	if c == nil {
		return
	}
	c.applySem.Release(1)
}

// AcquireMoves waits until the move limit allows n element moves.
func (c *Controller) AcquireMoves(ctx context.Context, n int) error {
	if c == nil || c.moveLimiter == nil {
		return nil
	}
	// WaitN rejects n larger than the burst outright; split into burst-sized
	// requests so huge datasets are throttled instead of refused.
	burst := c.moveLimiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := c.moveLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
