package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pendingKey = "tourism:cleanup:pending"
	deadKey    = "tourism:cleanup:dead"
)

// Queue is a Redis list of pending cleanup failures.
type Queue struct {
	rdb *redis.Client
}

// NewQueue returns nil when rdb is nil so callers can pass it straight to NewReporter.
func NewQueue(rdb *redis.Client) *Queue {
	if rdb == nil {
		return nil
	}
	return &Queue{rdb: rdb}
}

// Push appends a failure to the pending list.
func (q *Queue) Push(ctx context.Context, f Failure) error {
	return q.push(ctx, pendingKey, f)
}

// DeadLetter parks a failure that exhausted its attempts.
func (q *Queue) DeadLetter(ctx context.Context, f Failure) error {
	return q.push(ctx, deadKey, f)
}

func (q *Queue) push(ctx context.Context, key string, f Failure) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal cleanup failure: %w", err)
	}
	return q.rdb.LPush(ctx, key, payload).Err()
}

// Pop takes the oldest pending failure. With wait > 0 it blocks up to wait.
// Returns nil, nil when the list is empty.
func (q *Queue) Pop(ctx context.Context, wait time.Duration) (*Failure, error) {
	var raw string
	if wait > 0 {
		res, err := q.rdb.BRPop(ctx, wait, pendingKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, nil
			}
			return nil, err
		}
		raw = res[1]
	} else {
		res, err := q.rdb.RPop(ctx, pendingKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, nil
			}
			return nil, err
		}
		raw = res
	}

	var f Failure
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, fmt.Errorf("decode cleanup failure: %w", err)
	}
	return &f, nil
}

// Len returns the number of pending failures.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, pendingKey).Result()
}

// DeadLen returns the number of dead-lettered failures.
func (q *Queue) DeadLen(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, deadKey).Result()
}
