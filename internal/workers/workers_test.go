// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker counts how many times Run was called and blocks until the
// context is cancelled.
type mockWorker struct {
	runCount atomic.Int32
	started  chan struct{}
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{}, 1)}
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	m.started <- struct{}{}
	<-ctx.Done()
}

func waitStarted(t *testing.T, w *mockWorker) {
	t.Helper()
	select {
	case <-w.started:
	case <-time.After(time.Second):
		t.Fatal("worker was not started")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := newMockWorker(), newMockWorker(), newMockWorker()
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(w1, w2, w3)
	ws.Run(ctx)

	for _, w := range []*mockWorker{w1, w2, w3} {
		waitStarted(t, w)
	}
	cancel()
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_DoesNotBlock(t *testing.T) {
	w := newMockWorker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		NewWorkers(w).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run blocked on a long-running worker")
	}
}

func TestWorkers_Wait_ReturnsAfterCancel(t *testing.T) {
	w := newMockWorker()
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(w)
	ws.Run(ctx)
	waitStarted(t, w)

	waited := make(chan struct{})
	go func() {
		ws.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned before the context was cancelled")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic or block on an empty workers list
	ws.Run(context.Background())
	ws.Wait()

	if ws.Len() != 0 {
		t.Errorf("expected 0 workers, got %d", ws.Len())
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Wait()
}
