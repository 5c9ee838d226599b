package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu   sync.Mutex
	runs []string
}

func (r *recorder) record(id string) WriteFunc {
	return func(ctx context.Context) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.runs = append(r.runs, id)
		return nil
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.runs))
	copy(out, r.runs)
	return out
}

func TestWriterRunsEnqueuedWrite(t *testing.T) {
	w := NewWriter(time.Second)
	rec := &recorder{}

	w.Enqueue("user:1", rec.record("a"))
	w.Close()

	runs := rec.snapshot()
	if len(runs) != 1 || runs[0] != "a" {
		t.Fatalf("expected single write a, got %v", runs)
	}
}

func TestWriterCoalescesWhileInFlight(t *testing.T) {
	w := NewWriter(time.Second)
	rec := &recorder{}

	started := make(chan struct{})
	release := make(chan struct{})
	first := func(ctx context.Context) error {
		close(started)
		<-release
		return rec.record("first")(ctx)
	}

	w.Enqueue("user:1", first)
	<-started

	// Both land while the first write is still in flight; only the latest
	// snapshot may be written afterwards.
	w.Enqueue("user:1", rec.record("stale"))
	w.Enqueue("user:1", rec.record("latest"))

	close(release)
	w.Close()

	runs := rec.snapshot()
	if len(runs) != 2 {
		t.Fatalf("expected exactly 2 writes, got %v", runs)
	}
	if runs[0] != "first" || runs[1] != "latest" {
		t.Errorf("expected [first latest], got %v", runs)
	}
}

func TestWriterIndependentKeys(t *testing.T) {
	w := NewWriter(time.Second)
	rec := &recorder{}

	w.Enqueue("user:1", rec.record("u1"))
	w.Enqueue("user:2", rec.record("u2"))
	w.Close()

	runs := rec.snapshot()
	if len(runs) != 2 {
		t.Fatalf("expected both keys written, got %v", runs)
	}
}

func TestWriterDropsAfterClose(t *testing.T) {
	w := NewWriter(time.Second)
	rec := &recorder{}

	w.Close()
	w.Enqueue("user:1", rec.record("late"))

	if runs := rec.snapshot(); len(runs) != 0 {
		t.Fatalf("expected no writes after close, got %v", runs)
	}
}
