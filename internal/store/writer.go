// Package store provides the write-behind persistence queue: state is mutated
// in memory synchronously and flushed to the backing stores asynchronously,
// one in-flight write per key, rapid successive mutations collapsed into the
// latest snapshot.
package store

import (
	"context"
	"log"
	"sync"
	"time"
)

// WriteFunc persists the latest snapshot for one key.
type WriteFunc func(ctx context.Context) error

type Writer struct {
	mu       sync.Mutex
	pending  map[string]WriteFunc
	inflight map[string]bool
	closed   bool
	wg       sync.WaitGroup
	timeout  time.Duration
}

func NewWriter(timeout time.Duration) *Writer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Writer{
		pending:  make(map[string]WriteFunc),
		inflight: make(map[string]bool),
		timeout:  timeout,
	}
}

// Enqueue schedules fn as the write for key. If a write for the same key is
// already queued but not started, fn replaces it; if one is in flight, fn
// runs after it finishes. Callers never block on persistence.
func (w *Writer) Enqueue(key string, fn WriteFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		log.Printf("write queue closed, dropping write for %q", key)
		return
	}

	w.pending[key] = fn
	if w.inflight[key] {
		return
	}
	w.inflight[key] = true
	w.wg.Add(1)
	go w.flush(key)
}

func (w *Writer) flush(key string) {
	defer w.wg.Done()
	for {
		w.mu.Lock()
		fn, ok := w.pending[key]
		if !ok {
			w.inflight[key] = false
			w.mu.Unlock()
			return
		}
		delete(w.pending, key)
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		if err := fn(ctx); err != nil {
			// Failed remote writes are logged, not retried.
			log.Printf("write for %q failed: %v", key, err)
		}
		cancel()
	}
}

// Close drains queued writes and waits for in-flight ones to finish.
func (w *Writer) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.wg.Wait()
}
