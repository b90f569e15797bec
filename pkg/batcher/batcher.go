// Package batcher coalesces queued items into batches flushed by size or time.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// Flush receives a full or timed-out batch. The slice is reused afterwards,
// so implementations must not retain it.
type Flush[T any] func(context.Context, []T) error

// Batcher buffers items and hands them to the flush callback in batches.
type Batcher[T any] struct {
	flush    Flush[T]
	queue    chan T
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter
	logger   *zap.Logger

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New constructs a Batcher flushing every size items or every interval,
// whichever comes first. Flushes are paced to rps per second.
func New[T any](logger *zap.Logger, flush Flush[T], size int, interval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		flush:    flush,
		queue:    make(chan T, size*2),
		size:     size,
		interval: interval,
		limiter:  ratelimit.New(rps),
		logger:   logger,
		closed:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains the queue, flushes what remains and waits for the loop to exit.
// Safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.closeOnce.Do(func() { close(b.closed) })
	b.wg.Wait()
}

// Add queues one item. It blocks while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.closed:
		return ErrStopped
	default:
	}

	select {
	case <-b.closed:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case b.queue <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	pending := make([]T, 0, b.size)
	timer := time.NewTimer(b.interval)
	defer timer.Stop()

	emit := func() {
		if len(pending) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, pending); err != nil {
			b.logger.Error("batch flush failed", zap.Int("size", len(pending)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(pending)))
		}
		pending = pending[:0]
	}
	rearm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(b.interval)
	}

	for {
		select {
		case <-ctx.Done():
			emit()
			return

		case <-b.closed:
			// Take whatever made it into the queue before the final flush.
			for {
				select {
				case item := <-b.queue:
					pending = append(pending, item)
					if len(pending) >= b.size {
						emit()
					}
				default:
					emit()
					return
				}
			}

		case item := <-b.queue:
			pending = append(pending, item)
			if len(pending) >= b.size {
				emit()
				rearm()
			}

		case <-timer.C:
			emit()
			timer.Reset(b.interval)
		}
	}
}
