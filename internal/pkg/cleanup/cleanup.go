// Package cleanup carries file-removal failures out of the request path.
// A failed delete never fails the request; instead a Failure is logged,
// counted, and queued on Redis so cmd/cleanup-worker can retry it.
package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
)

// Failure describes a stored file that could not be removed.
type Failure struct {
	Path      string    `json:"path"`
	Reason    string    `json:"reason"`
	RequestID string    `json:"request_id,omitempty"`
	Attempts  int       `json:"attempts"`
	FailedAt  time.Time `json:"failed_at"`
}

// Sink receives cleanup failures.
type Sink interface {
	Report(ctx context.Context, f Failure)
}

// Reporter logs and counts every failure and enqueues it when a queue is configured.
type Reporter struct {
	queue *Queue
}

// NewReporter creates a reporter. A nil queue disables retries.
func NewReporter(queue *Queue) *Reporter {
	return &Reporter{queue: queue}
}

// Report implements Sink.
func (r *Reporter) Report(ctx context.Context, f Failure) {
	if f.FailedAt.IsZero() {
		f.FailedAt = time.Now().UTC()
	}
	if f.RequestID == "" {
		f.RequestID = logger.RequestID(ctx)
	}

	log.Warn().
		Str("request_id", f.RequestID).
		Str("path", f.Path).
		Str("reason", f.Reason).
		Msg("File cleanup failed")
	metrics.ObserveCleanup("failed")

	if r.queue == nil {
		return
	}
	// The request context may already be cancelled by the time cleanup runs.
	qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := r.queue.Push(qctx, f); err != nil {
		log.Error().Err(err).Str("path", f.Path).Msg("Failed to enqueue cleanup retry")
		return
	}
	metrics.ObserveCleanup("queued")
}
