package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/services/auditlog/domain"
)

type memRepo struct {
	mu      sync.Mutex
	batches [][]domain.Event
	fail    error
	q       domain.SessionQuery
	flushed chan int
}

func (m *memRepo) Insert(_ context.Context, events []domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.batches = append(m.batches, append([]domain.Event(nil), events...))
	if m.flushed != nil {
		m.flushed <- len(events)
	}
	return nil
}

func (m *memRepo) BySession(_ context.Context, q domain.SessionQuery) ([]domain.Event, error) {
	m.q = q
	return nil, m.fail
}

func (m *memRepo) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.batches {
		n += len(b)
	}
	return n
}

func TestRecord_DropsWhenFull(t *testing.T) {
	t.Parallel()

	w := New(&memRepo{}, Config{Buffer: 2})
	for i := 0; i < 5; i++ {
		w.Record(domain.Event{SessionID: "s", Type: domain.EventScan})
	}
	if w.Dropped() != 3 {
		t.Fatalf("dropped %d want 3", w.Dropped())
	}
}

func TestRecord_StampsTime(t *testing.T) {
	t.Parallel()

	w := New(&memRepo{}, Config{})
	w.Record(domain.Event{SessionID: "s"})
	e := <-w.in
	if e.At.IsZero() {
		t.Fatalf("event time not stamped")
	}
}

func TestRun_FlushesOnBatchSize(t *testing.T) {
	t.Parallel()

	r := &memRepo{flushed: make(chan int, 4)}
	w := New(r, Config{Batch: 3, FlushEvery: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		w.Record(domain.Event{SessionID: "s", Type: domain.EventScan})
	}
	select {
	case n := <-r.flushed:
		if n != 3 {
			t.Fatalf("batch %d want 3", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("batch never flushed")
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_FinalFlushOnShutdown(t *testing.T) {
	t.Parallel()

	r := &memRepo{}
	w := New(r, Config{Batch: 100, FlushEvery: time.Hour})
	for i := 0; i < 4; i++ {
		w.Record(domain.Event{SessionID: "s", Type: domain.EventScan})
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = w.Run(ctx)

	if r.total() != 4 || w.Written() != 4 {
		t.Fatalf("written %d repo %d want 4", w.Written(), r.total())
	}
}

func TestRun_FlushErrorIsLoggedNotFatal(t *testing.T) {
	t.Parallel()

	r := &memRepo{fail: errors.New("ch down")}
	w := New(r, Config{})
	w.Record(domain.Event{SessionID: "s"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = w.Run(ctx)
	if w.Written() != 0 {
		t.Fatalf("written %d", w.Written())
	}
}

func TestSessionEvents(t *testing.T) {
	t.Parallel()

	r := &memRepo{}
	w := New(r, Config{})
	got, err := w.SessionEvents(context.Background(), domain.SessionQuery{SessionID: "s1", Limit: 5000})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("got %v err %v", got, err)
	}
	if r.q.Limit != maxQueryLimit {
		t.Fatalf("limit %d not clamped", r.q.Limit)
	}

	if _, err := w.SessionEvents(context.Background(), domain.SessionQuery{}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("empty id: %v", err)
	}

	r.fail = errors.New("boom")
	if _, err := w.SessionEvents(context.Background(), domain.SessionQuery{SessionID: "s1"}); perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("repo failure: %v", err)
	}
}
