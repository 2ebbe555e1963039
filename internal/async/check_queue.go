package async

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PollFunc runs a full polling loop for one background-check job.
// *bgcheck.Poller's Poll method, with interval and attempts bound by the
// caller, is the production implementation.
type PollFunc func(ctx context.Context, jobID string, cvRecordID int) error

// CheckQueue fans polling jobs out to a fixed worker pool. Enqueue is
// fire-and-forget: the caller gets its response while workers keep polling.
type CheckQueue struct {
	poll    PollFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan CheckJob
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*CheckQueue)

func WithWorkers(n int) Option {
	return func(q *CheckQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *CheckQueue) {
		if n > 0 {
			q.ch = make(chan CheckJob, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *CheckQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewCheckQueue(poll PollFunc, logger *slog.Logger, opts ...Option) *CheckQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &CheckQueue{
		poll:    poll,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan CheckJob, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *CheckQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.poll(ctx, job.JobID, job.CVRecordID)
					cancel()

					if err != nil {
						q.logger.Error("background check failed", "worker_id", workerID, "job_id", job.JobID, "cv_record_id", job.CVRecordID, "error", err)
					} else {
						q.logger.Info("background check settled", "worker_id", workerID, "job_id", job.JobID, "cv_record_id", job.CVRecordID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *CheckQueue) Enqueue(_ context.Context, job CheckJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued background check", "job_id", job.JobID, "cv_record_id", job.CVRecordID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *CheckQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
