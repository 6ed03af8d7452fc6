package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

// Retrier drains the queue and retries deletes against the storage backend.
type Retrier struct {
	queue       *Queue
	store       storage.Storage
	maxAttempts int
}

func NewRetrier(queue *Queue, store storage.Storage, maxAttempts int) *Retrier {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Retrier{queue: queue, store: store, maxAttempts: maxAttempts}
}

// RetryOne processes a single pending failure. It reports false when the
// queue was empty.
func (r *Retrier) RetryOne(ctx context.Context, wait time.Duration) (bool, error) {
	f, err := r.queue.Pop(ctx, wait)
	if err != nil || f == nil {
		return false, err
	}

	f.Attempts++
	metrics.ObserveCleanup("retried")

	err = r.store.Delete(ctx, f.Path)
	if err == nil {
		metrics.ObserveCleanup("recovered")
		log.Info().Str("path", f.Path).Int("attempts", f.Attempts).Msg("Cleanup retry succeeded")
		return true, nil
	}
	f.Reason = err.Error()
	f.FailedAt = time.Now().UTC()

	if f.Attempts >= r.maxAttempts {
		metrics.ObserveCleanup("dead_lettered")
		log.Error().Str("path", f.Path).Int("attempts", f.Attempts).Str("reason", f.Reason).Msg("Cleanup retries exhausted")
		return true, r.queue.DeadLetter(ctx, *f)
	}

	log.Warn().Str("path", f.Path).Int("attempts", f.Attempts).Str("reason", f.Reason).Msg("Cleanup retry failed, requeueing")
	return true, r.queue.Push(ctx, *f)
}

// Drain retries every failure pending at call time once. Items requeued
// during the pass wait for the next call.
func (r *Retrier) Drain(ctx context.Context) (int, error) {
	pending, err := r.queue.Len(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i := int64(0); i < pending; i++ {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		ok, err := r.RetryOne(ctx, 0)
		if err != nil {
			return processed, err
		}
		if !ok {
			break
		}
		processed++
	}
	return processed, nil
}
