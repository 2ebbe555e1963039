package async

import (
	"context"
	"time"
)

// CheckJob asks the background-check workers to poll one upstream job until
// it settles, persisting findings onto the given CV record.
type CheckJob struct {
	JobID       string
	CVRecordID  int
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job CheckJob) error
	Shutdown(ctx context.Context)
}
