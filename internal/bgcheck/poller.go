package bgcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Recorder persists one polling snapshot onto the CV record.
type Recorder interface {
	SaveBackgroundCheck(ctx context.Context, cvRecordID int, finding string, checkedAt time.Time) error
}

// Poller repeatedly fetches a background-check job until the upstream state
// leaves "procesando", the attempt budget runs out, or the context is
// cancelled. Every attempt persists the latest finding and its timestamp
// before the stop decision, so the stored snapshot is always current even on
// the soft-timeout path.
type Poller struct {
	client   ResultsClient
	recorder Recorder
	logger   *slog.Logger

	// test seams
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewPoller(client ResultsClient, recorder Recorder, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		client:   client,
		recorder: recorder,
		logger:   logger,
		sleep:    sleepCtx,
		now:      time.Now,
	}
}

// Poll runs the polling loop for one job. A transport failure aborts
// immediately; the scheduled retries only cover the still-processing state.
// Exhausting maxAttempts while the job is still processing is not an error:
// the last snapshot is persisted and the loop ends.
func (p *Poller) Poll(ctx context.Context, jobID string, cvRecordID int, interval time.Duration, maxAttempts int) error {
	for attempt := 1; ; attempt++ {
		res, err := p.client.GetResults(ctx, jobID)
		if err != nil {
			p.logger.Error("bgcheck.poll.failed",
				"job_id", jobID, "cv_record_id", cvRecordID, "attempt", attempt, "error", err)
			return err
		}

		if err := p.recorder.SaveBackgroundCheck(ctx, cvRecordID, res.Hallazgo, p.now()); err != nil {
			return fmt.Errorf("persist background check: %w", err)
		}

		if res.Done() {
			p.logger.Info("bgcheck.poll.done",
				"job_id", jobID, "cv_record_id", cvRecordID, "attempt", attempt, "estado", res.Estado)
			return nil
		}
		if attempt >= maxAttempts {
			p.logger.Warn("bgcheck.poll.timeout",
				"job_id", jobID, "cv_record_id", cvRecordID, "attempts", attempt)
			return nil
		}

		if err := p.sleep(ctx, interval); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
