package bgcheck

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedClient struct {
	script []func() (CheckResult, error)
	calls  int
}

func (c *scriptedClient) GetResults(_ context.Context, _ string) (CheckResult, error) {
	i := c.calls
	if i >= len(c.script) {
		i = len(c.script) - 1 // repeat the last step if over-polled
	}
	c.calls++
	return c.script[i]()
}

type recordedSave struct {
	finding   string
	checkedAt time.Time
}

type fakeRecorder struct {
	saves []recordedSave
	err   error
}

func (r *fakeRecorder) SaveBackgroundCheck(_ context.Context, _ int, finding string, checkedAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, recordedSave{finding: finding, checkedAt: checkedAt})
	return nil
}

func processing() (CheckResult, error) {
	return CheckResult{Estado: StateProcessing, Hallazgo: "false"}, nil
}

func finished() (CheckResult, error) {
	return CheckResult{Estado: "finalizado", Hallazgo: "true"}, nil
}

func newTestPoller(client ResultsClient, recorder Recorder) *Poller {
	p := NewPoller(client, recorder, nil)
	p.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	p.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return p
}

func TestPoll_SoftTimeoutPersistsEveryAttempt(t *testing.T) {
	client := &scriptedClient{script: []func() (CheckResult, error){processing, processing, processing}}
	rec := &fakeRecorder{}
	p := newTestPoller(client, rec)

	err := p.Poll(context.Background(), "job-1", 42, 0, 3)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if client.calls != 3 {
		t.Errorf("got %d calls, want exactly maxAttempts", client.calls)
	}
	if len(rec.saves) != 3 {
		t.Fatalf("got %d persists, want one per attempt", len(rec.saves))
	}
	for i, s := range rec.saves {
		if s.finding != "false" {
			t.Errorf("save %d finding = %q", i, s.finding)
		}
		if i > 0 && !rec.saves[i].checkedAt.After(rec.saves[i-1].checkedAt) {
			t.Errorf("save %d timestamp did not advance", i)
		}
	}
}

func TestPoll_StopsOnTerminalState(t *testing.T) {
	client := &scriptedClient{script: []func() (CheckResult, error){processing, finished}}
	rec := &fakeRecorder{}
	p := newTestPoller(client, rec)

	if err := p.Poll(context.Background(), "job-1", 42, 0, 10); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("got %d calls, want stop right after the terminal state", client.calls)
	}
	if len(rec.saves) != 2 || rec.saves[1].finding != "true" {
		t.Errorf("saves = %+v, want the terminal finding persisted", rec.saves)
	}
}

func TestPoll_TransportErrorAborts(t *testing.T) {
	boom := errors.New("connection refused")
	client := &scriptedClient{script: []func() (CheckResult, error){
		processing,
		func() (CheckResult, error) { return CheckResult{}, boom },
	}}
	rec := &fakeRecorder{}
	p := newTestPoller(client, rec)

	err := p.Poll(context.Background(), "job-1", 42, 0, 10)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the transport error surfaced", err)
	}
	if client.calls != 2 {
		t.Errorf("got %d calls, want no retry after a transport failure", client.calls)
	}
	if len(rec.saves) != 1 {
		t.Errorf("got %d persists, failed attempt must not persist", len(rec.saves))
	}
}

func TestPoll_PersistFailureAborts(t *testing.T) {
	client := &scriptedClient{script: []func() (CheckResult, error){processing}}
	rec := &fakeRecorder{err: errors.New("db down")}
	p := newTestPoller(client, rec)

	if err := p.Poll(context.Background(), "job-1", 42, 0, 10); err == nil {
		t.Fatal("expected persistence error")
	}
}

func TestPoll_CancelledDuringWait(t *testing.T) {
	client := &scriptedClient{script: []func() (CheckResult, error){processing}}
	rec := &fakeRecorder{}
	p := NewPoller(client, rec, nil)
	p.now = time.Now

	ctx, cancel := context.WithCancel(context.Background())
	p.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	err := p.Poll(ctx, "job-1", 42, time.Second, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(rec.saves) != 1 {
		t.Errorf("the attempt before cancellation should still persist, got %d", len(rec.saves))
	}
}
