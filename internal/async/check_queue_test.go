package async

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestCheckQueue_ProcessesAllJobs(t *testing.T) {
	var mu sync.Mutex
	got := map[string]int{}
	done := make(chan struct{}, 3)

	poll := func(_ context.Context, jobID string, cvRecordID int) error {
		mu.Lock()
		got[jobID] = cvRecordID
		mu.Unlock()
		done <- struct{}{}
		return nil
	}

	q := NewCheckQueue(poll, nil, WithWorkers(2), WithQueueSize(8))
	defer q.Shutdown(context.Background())

	jobs := []CheckJob{
		{JobID: "a", CVRecordID: 1},
		{JobID: "b", CVRecordID: 2},
		{JobID: "c", CVRecordID: 3},
	}
	for _, j := range jobs {
		if err := q.Enqueue(context.Background(), j); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	for range jobs {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 || got["b"] != 2 {
		t.Errorf("processed = %v", got)
	}
}

func TestCheckQueue_ShutdownDrains(t *testing.T) {
	processed := 0
	var mu sync.Mutex
	poll := func(context.Context, string, int) error {
		mu.Lock()
		processed++
		mu.Unlock()
		return nil
	}

	q := NewCheckQueue(poll, nil, WithWorkers(1))
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(context.Background(), CheckJob{JobID: "j", CVRecordID: i})
	}
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if processed != 5 {
		t.Errorf("processed = %d, want queue drained before shutdown returns", processed)
	}
}

func TestCheckQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	poll := func(context.Context, string, int) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	}

	q := NewCheckQueue(poll, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), CheckJob{JobID: "late"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("calls = %d, want job dropped after shutdown", calls)
	}
}
