package audit

import (
	"context"
	"sync"
)

// writer runs sink writes off the gateway goroutine. Each write gets its own
// goroutine; the semaphore caps how many run at once.
type writer struct {
	sink Sink
	sem  chan struct{}
	wg   sync.WaitGroup
}

func newWriter(sink Sink, maxWorkers int) *writer {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &writer{sink: sink, sem: make(chan struct{}, maxWorkers)}
}

// submit blocks until a slot is free or ctx is done.
func (w *writer) submit(ctx context.Context, rec Record) error {
	select {
	case w.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.sem }()
		defer w.recoverPanic(rec)

		if err := w.sink.Write(rec); err != nil {
			log.Error("sink write failed action=%s msg=%s: %v", rec.Action, rec.Message.MessageID, err)
		}
	}()
	return nil
}

func (w *writer) recoverPanic(rec Record) {
	if r := recover(); r != nil {
		log.Error("sink panic action=%s msg=%s: %v", rec.Action, rec.Message.MessageID, r)
	}
}

// wait blocks until every submitted write has finished.
func (w *writer) wait() {
	w.wg.Wait()
}
