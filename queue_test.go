package canopy

import (
	"sync"
	"testing"
)

func TestInputQueue_Backpressure(t *testing.T) {
	q := NewInputQueue(DefaultQueueCapacity)
	for i := 0; i <= DefaultQueueCapacity; i++ {
		q.Register(CursorMoved(AbsPoint{X: float64(i)}))
	}
	if q.Len() != DefaultQueueCapacity {
		t.Fatalf("Len = %d, want %d", q.Len(), DefaultQueueCapacity)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", q.Dropped())
	}
	got := q.Snapshot()
	if got[0].Position.X != 1 {
		t.Errorf("oldest retained = %v, want X=1 (X=0 dropped)", got[0].Position)
	}
	if got[len(got)-1].Position.X != DefaultQueueCapacity {
		t.Errorf("newest retained = %v", got[len(got)-1].Position)
	}
}

func TestInputQueue_DrainOrder(t *testing.T) {
	q := NewInputQueue(4)
	q.Register(CursorMoved(AbsPoint{1, 1}))
	q.Register(ButtonInput(ButtonPressed, MouseButtonLeft))
	q.Register(ButtonInput(ButtonReleased, MouseButtonRight))

	var got []InputEvent
	n := q.Drain(func(ev InputEvent) { got = append(got, ev) })
	if n != 3 || len(got) != 3 {
		t.Fatalf("Drain handled %d events, want 3", n)
	}
	if got[0].Type != EventCursorMoved || got[0].Position != (AbsPoint{1, 1}) {
		t.Errorf("event 0 = %+v", got[0])
	}
	if got[1].Type != EventButtonInput || got[1].State != ButtonPressed {
		t.Errorf("event 1 = %+v", got[1])
	}
	if got[2].Button != MouseButtonRight || got[2].State != ButtonReleased {
		t.Errorf("event 2 = %+v", got[2])
	}
	if q.Len() != 0 {
		t.Errorf("Len after Drain = %d", q.Len())
	}
}

func TestInputQueue_DrainIsBounded(t *testing.T) {
	q := NewInputQueue(4)
	q.Register(CursorMoved(AbsPoint{}))
	q.Register(CursorMoved(AbsPoint{}))

	// Events registered during the drain wait for the next one.
	n := q.Drain(func(InputEvent) {
		q.Register(ButtonInput(ButtonPressed, MouseButtonLeft))
	})
	if n != 2 {
		t.Errorf("first Drain = %d, want 2", n)
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	if n := q.Drain(func(InputEvent) {}); n != 2 {
		t.Errorf("second Drain = %d, want 2", n)
	}
}

func TestInputQueue_WrapAround(t *testing.T) {
	q := NewInputQueue(3)
	for round := 0; round < 5; round++ {
		q.Register(CursorMoved(AbsPoint{X: float64(round)}))
		q.Register(CursorMoved(AbsPoint{X: float64(round) + 0.5}))
		var xs []float64
		q.Drain(func(ev InputEvent) { xs = append(xs, ev.Position.X) })
		if len(xs) != 2 || xs[0] != float64(round) || xs[1] != float64(round)+0.5 {
			t.Fatalf("round %d drained %v", round, xs)
		}
	}
}

func TestInputQueue_InvalidCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for capacity 0")
		}
	}()
	NewInputQueue(0)
}

func TestInputQueue_ConcurrentRegister(t *testing.T) {
	q := NewInputQueue(16)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Register(CursorMoved(AbsPoint{X: float64(i)}))
			}
		}()
	}
	drained := 0
	for i := 0; i < 50; i++ {
		drained += q.Drain(func(InputEvent) {})
	}
	wg.Wait()
	drained += q.Drain(func(InputEvent) {})

	if total := uint64(drained) + q.Dropped(); total != 400 {
		t.Errorf("drained %d + dropped %d = %d, want 400", drained, q.Dropped(), total)
	}
}
