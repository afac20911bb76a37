package contextWaitGroup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGoCancelStopsGroup(t *testing.T) {
	cwg := New(context.Background())

	var stopped atomic.Int32
	for range 3 {
		cwg.Go(func(ctx context.Context) {
			<-ctx.Done()
			stopped.Add(1)
		})
	}
	cwg.GoCancel(func(context.Context) {})

	done := make(chan struct{})
	go func() {
		cwg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("group did not stop")
	}
	if stopped.Load() != 3 {
		t.Fatalf("expected 3 stopped goroutines, got %d", stopped.Load())
	}
}

func TestCancelFromParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cwg := New(parent)

	cwg.Go(func(ctx context.Context) {
		<-ctx.Done()
	})
	cancel()

	done := make(chan struct{})
	go func() {
		cwg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("parent cancellation did not propagate")
	}
	cwg.Cancel()
}
