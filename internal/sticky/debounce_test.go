package sticky

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var runs int64
	for i := 0; i < 10; i++ {
		d.Trigger(func() { atomic.AddInt64(&runs, 1) })
	}
	time.Sleep(120 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != 1 {
		t.Fatalf("runs = %d, want 1", got)
	}
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var got int64
	d.Trigger(func() { atomic.StoreInt64(&got, 1) })
	d.Trigger(func() { atomic.StoreInt64(&got, 2) })
	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt64(&got) != 2 {
		t.Fatalf("got = %d, want trailing trigger (2)", got)
	}
}

func TestDebouncer_FlushRunsPendingNow(t *testing.T) {
	d := NewDebouncer(time.Hour)
	ran := false
	d.Trigger(func() { ran = true })
	d.Flush()
	if !ran {
		t.Fatalf("Flush did not run pending func")
	}
	// nothing left pending
	d.Flush()
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var runs int64
	d.Trigger(func() { atomic.AddInt64(&runs, 1) })
	d.Stop()
	d.Trigger(func() { atomic.AddInt64(&runs, 1) })
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != 0 {
		t.Fatalf("runs after Stop = %d, want 0", got)
	}
}

func TestDebouncer_ZeroDelayStillRuns(t *testing.T) {
	d := NewDebouncer(0)
	done := make(chan struct{})
	d.Trigger(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("zero-delay trigger never ran")
	}
}
