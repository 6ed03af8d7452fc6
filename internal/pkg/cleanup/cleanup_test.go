package cleanup

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

func newQueue(t *testing.T) *Queue {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewQueue(rdb)
}

type flakyStore struct {
	failures int
	deleted  []string
}

func (s *flakyStore) Save(context.Context, string, io.Reader, string) error { return nil }
func (s *flakyStore) Exists(context.Context, string) (bool, error)          { return false, nil }
func (s *flakyStore) GetURL(p string) string                                { return p }
func (s *flakyStore) Delete(_ context.Context, p string) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("permission denied")
	}
	s.deleted = append(s.deleted, p)
	return nil
}

var _ storage.Storage = (*flakyStore)(nil)

func TestNewQueueNilClient(t *testing.T) {
	if NewQueue(nil) != nil {
		t.Fatal("expected nil queue for nil client")
	}
}

func TestReporterEnqueues(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()

	NewReporter(q).Report(ctx, Failure{Path: "states/a.jpg", Reason: "busy"})

	n, err := q.Len(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Len = %d, %v", n, err)
	}

	f, err := q.Pop(ctx, 0)
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if f.Path != "states/a.jpg" || f.Reason != "busy" || f.FailedAt.IsZero() {
		t.Fatalf("unexpected failure %+v", f)
	}
	if f.RequestID != "unknown" {
		t.Fatalf("request id = %q", f.RequestID)
	}
}

func TestReporterWithoutQueue(t *testing.T) {
	// must not panic
	NewReporter(nil).Report(context.Background(), Failure{Path: "x"})
}

func TestPopEmpty(t *testing.T) {
	f, err := newQueue(t).Pop(context.Background(), 0)
	if err != nil || f != nil {
		t.Fatalf("Pop on empty = %v, %v", f, err)
	}
}

func TestRetrierRecovers(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	store := &flakyStore{failures: 1}
	r := NewRetrier(q, store, 3)

	if err := q.Push(ctx, Failure{Path: "hotels/h.png"}); err != nil {
		t.Fatalf("Push: %v", err)
	}

	// first attempt fails and requeues
	if ok, err := r.RetryOne(ctx, 0); !ok || err != nil {
		t.Fatalf("RetryOne = %v, %v", ok, err)
	}
	if n, _ := q.Len(ctx); n != 1 {
		t.Fatalf("expected requeue, len=%d", n)
	}

	// second attempt succeeds
	if ok, err := r.RetryOne(ctx, 0); !ok || err != nil {
		t.Fatalf("RetryOne = %v, %v", ok, err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "hotels/h.png" {
		t.Fatalf("deleted = %v", store.deleted)
	}
	if n, _ := q.Len(ctx); n != 0 {
		t.Fatalf("queue should be empty, len=%d", n)
	}

	if ok, err := r.RetryOne(ctx, 0); ok || err != nil {
		t.Fatalf("RetryOne on empty = %v, %v", ok, err)
	}
}

func TestRetrierDeadLetters(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	r := NewRetrier(q, &flakyStore{failures: 10}, 2)

	if err := q.Push(ctx, Failure{Path: "gallery/g.webp", Attempts: 1}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if _, err := r.RetryOne(ctx, 0); err != nil {
		t.Fatalf("RetryOne: %v", err)
	}

	dead, err := q.DeadLen(ctx)
	if err != nil || dead != 1 {
		t.Fatalf("DeadLen = %d, %v", dead, err)
	}
	if n, _ := q.Len(ctx); n != 0 {
		t.Fatalf("pending len = %d", n)
	}
}

func TestFailureReasonKept(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	r := NewRetrier(q, &flakyStore{failures: 1}, 5)

	_ = q.Push(ctx, Failure{Path: "p"})
	_, _ = r.RetryOne(ctx, 0)

	f, _ := q.Pop(ctx, 0)
	if f == nil || !strings.Contains(f.Reason, "permission denied") || f.Attempts != 1 {
		t.Fatalf("unexpected failure %+v", f)
	}
}

func TestDrainVisitsEachPendingItemOnce(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	store := &flakyStore{failures: 1}
	r := NewRetrier(q, store, 5)

	for _, p := range []string{"gallery/a.png", "gallery/b.png", "gallery/c.png"} {
		if err := q.Push(ctx, Failure{Path: p}); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	n, err := r.Drain(ctx)
	if err != nil || n != 3 {
		t.Fatalf("Drain = %d, %v", n, err)
	}
	// the first pop failed once and waits for the next pass
	if len(store.deleted) != 2 {
		t.Fatalf("deleted = %v", store.deleted)
	}
	if pending, _ := q.Len(ctx); pending != 1 {
		t.Fatalf("expected one requeued item, len=%d", pending)
	}

	n, err = r.Drain(ctx)
	if err != nil || n != 1 {
		t.Fatalf("second Drain = %d, %v", n, err)
	}
	if pending, _ := q.Len(ctx); pending != 0 {
		t.Fatalf("queue should be empty, len=%d", pending)
	}

	if n, err := r.Drain(ctx); n != 0 || err != nil {
		t.Fatalf("Drain on empty = %d, %v", n, err)
	}
}
