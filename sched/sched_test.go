// File: sched_test.go
// Title: Serial Queue and Scheduling Tests
// Description: Ordering, draining, panic recovery, delay, repetition and
//              cancellation tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-10 v0.1.0: Initial tests
// - 2026-10-12 v0.1.1: Cancellation while running

package sched

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/msto63/gopress/core/log"
)

const waitTimeout = 2 * time.Second

func waitDone(t *testing.T, item *WorkItem) {
	t.Helper()
	select {
	case <-item.Done():
	case <-time.After(waitTimeout):
		t.Fatal("work item did not finish")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSerialQueue(t *testing.T) {
	t.Run("fifo order", func(t *testing.T) {
		q := NewSerialQueue("test")
		defer q.Close()

		var got []int
		for i := 0; i < 100; i++ {
			i := i
			q.Async(func() { got = append(got, i) })
		}
		q.Sync(nil)

		if len(got) != 100 {
			t.Fatalf("ran %d tasks, want 100", len(got))
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("task %d ran at position %d", v, i)
			}
		}
	})

	t.Run("one at a time", func(t *testing.T) {
		q := NewSerialQueue("test")
		var running, maxRunning int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go q.Async(func() {
				defer wg.Done()
				n := atomic.AddInt32(&running, 1)
				if n > atomic.LoadInt32(&maxRunning) {
					atomic.StoreInt32(&maxRunning, n)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&running, -1)
			})
		}
		wg.Wait()
		q.Close()
		if maxRunning != 1 {
			t.Errorf("max concurrent tasks = %d, want 1", maxRunning)
		}
	})

	t.Run("close drains", func(t *testing.T) {
		q := NewSerialQueue("test")
		var count int32
		for i := 0; i < 50; i++ {
			q.Async(func() {
				time.Sleep(100 * time.Microsecond)
				atomic.AddInt32(&count, 1)
			})
		}
		q.Close()
		if count != 50 {
			t.Errorf("ran %d tasks before close returned, want 50", count)
		}
	})

	t.Run("work after close is dropped", func(t *testing.T) {
		var buf syncBuffer
		logger := log.New().WithOutput(&buf).WithFormatter(&log.TextFormatter{DisableTimestamp: true})
		q := NewSerialQueue("closed", WithLogger(logger))
		q.Close()

		ran := false
		q.Async(func() { ran = true })
		q.Sync(func() { ran = true })
		q.Close()

		if ran {
			t.Error("work ran after close")
		}
		if !strings.Contains(buf.String(), "work submitted to closed queue dropped") {
			t.Errorf("log = %q", buf.String())
		}
	})

	t.Run("panic is recovered", func(t *testing.T) {
		var buf syncBuffer
		logger := log.New().WithOutput(&buf).WithFormatter(&log.TextFormatter{DisableTimestamp: true})
		q := NewSerialQueue("panicky", WithLogger(logger))
		defer q.Close()

		q.Async(func() { panic("boom") })
		ran := false
		q.Sync(func() { ran = true })

		if !ran {
			t.Error("queue stopped after panic")
		}
		out := buf.String()
		if !strings.Contains(out, "[ERR] recovered panic in scheduled work") || !strings.Contains(out, "panic=boom") {
			t.Errorf("log = %q", out)
		}
	})

	t.Run("nil work ignored", func(t *testing.T) {
		q := NewSerialQueue("test")
		q.Async(nil)
		q.Close()
	})
}

func TestMainQueue(t *testing.T) {
	if Main() != Main() {
		t.Fatal("Main() returned different queues")
	}
	if Main().Name() != "main" {
		t.Errorf("Main().Name() = %q", Main().Name())
	}
	ran := false
	Main().Sync(func() { ran = true })
	if !ran {
		t.Error("main queue did not run work")
	}
}

func TestDelay(t *testing.T) {
	q := NewSerialQueue("delay")
	defer q.Close()

	t.Run("runs after delay", func(t *testing.T) {
		start := time.Now()
		var at time.Time
		item := Delay(q, 30*time.Millisecond, func() { at = time.Now() })
		waitDone(t, item)
		if at.Sub(start) < 30*time.Millisecond {
			t.Errorf("ran after %v, want >= 30ms", at.Sub(start))
		}
		if item.IsCancelled() {
			t.Error("IsCancelled() = true")
		}
	})

	t.Run("cancel before firing", func(t *testing.T) {
		var ran int32
		item := Delay(q, 50*time.Millisecond, func() { atomic.StoreInt32(&ran, 1) })
		item.Cancel()
		waitDone(t, item)
		time.Sleep(80 * time.Millisecond)
		if atomic.LoadInt32(&ran) != 0 {
			t.Error("cancelled work ran")
		}
		if !item.IsCancelled() {
			t.Error("IsCancelled() = false")
		}
	})

	t.Run("cancel after completion is a no-op", func(t *testing.T) {
		item := Delay(q, time.Millisecond, func() {})
		waitDone(t, item)
		item.Cancel()
		if item.IsCancelled() {
			t.Error("IsCancelled() = true after completion")
		}
	})

	t.Run("runs on the given queue", func(t *testing.T) {
		var order []string
		release := make(chan struct{})
		q.Async(func() {
			<-release
			order = append(order, "blocker")
		})
		item := Delay(q, time.Millisecond, func() { order = append(order, "delayed") })
		time.Sleep(20 * time.Millisecond)
		close(release)
		waitDone(t, item)
		if strings.Join(order, ",") != "blocker,delayed" {
			t.Errorf("order = %v", order)
		}
	})
}

func TestScheduleRepeatedly(t *testing.T) {
	q := NewSerialQueue("repeat")
	defer q.Close()

	t.Run("bounded", func(t *testing.T) {
		var count int32
		item := ScheduleRepeatedly(q, 10*time.Millisecond, func() { atomic.AddInt32(&count, 1) }, Times(3))
		waitDone(t, item)
		time.Sleep(40 * time.Millisecond)
		if n := atomic.LoadInt32(&count); n != 3 {
			t.Errorf("ran %d times, want 3", n)
		}
	})

	t.Run("unbounded until cancelled", func(t *testing.T) {
		var count int32
		reached := make(chan struct{})
		var item *WorkItem
		item = ScheduleRepeatedly(q, 5*time.Millisecond, func() {
			if atomic.AddInt32(&count, 1) == 3 {
				close(reached)
			}
		})
		select {
		case <-reached:
		case <-time.After(waitTimeout):
			t.Fatal("did not reach 3 invocations")
		}
		item.Cancel()
		waitDone(t, item)
		n := atomic.LoadInt32(&count)
		time.Sleep(30 * time.Millisecond)
		if atomic.LoadInt32(&count) != n {
			t.Error("invocations continued after cancel")
		}
	})

	t.Run("non-positive times is unbounded", func(t *testing.T) {
		var count int32
		item := ScheduleRepeatedly(q, 2*time.Millisecond, func() { atomic.AddInt32(&count, 1) }, Times(0))
		time.Sleep(40 * time.Millisecond)
		item.Cancel()
		waitDone(t, item)
		if atomic.LoadInt32(&count) < 2 {
			t.Errorf("ran %d times", count)
		}
	})

	t.Run("cancel does not interrupt running work", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var finished, count int32
		item := ScheduleRepeatedly(q, time.Millisecond, func() {
			if atomic.AddInt32(&count, 1) > 1 {
				return
			}
			close(started)
			<-release
			atomic.StoreInt32(&finished, 1)
		})
		<-started
		item.Cancel()
		select {
		case <-item.Done():
			t.Fatal("Done closed while work was running")
		case <-time.After(20 * time.Millisecond):
		}
		close(release)
		waitDone(t, item)
		if atomic.LoadInt32(&finished) != 1 {
			t.Error("running work was interrupted")
		}
		if atomic.LoadInt32(&count) != 1 {
			t.Errorf("ran %d times after cancel", count)
		}
	})

	t.Run("inline queue", func(t *testing.T) {
		var count int32
		item := ScheduleRepeatedly(Inline, time.Millisecond, func() { atomic.AddInt32(&count, 1) }, Times(2))
		waitDone(t, item)
		if atomic.LoadInt32(&count) != 2 {
			t.Errorf("ran %d times, want 2", count)
		}
	})
}
