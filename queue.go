package canopy

import "sync"

// DefaultQueueCapacity is the number of input events buffered between ticks.
const DefaultQueueCapacity = 8

// InputEvent is a raw pointer event produced by the windowing layer.
// Position is meaningful for EventCursorMoved; Button and State for
// EventButtonInput.
type InputEvent struct {
	Type     EventType
	Position AbsPoint
	Button   MouseButton
	State    ButtonState
}

// CursorMoved returns an event reporting the pointer at p.
func CursorMoved(p AbsPoint) InputEvent {
	return InputEvent{Type: EventCursorMoved, Position: p}
}

// ButtonInput returns an event reporting a button transition.
func ButtonInput(state ButtonState, button MouseButton) InputEvent {
	return InputEvent{Type: EventButtonInput, Button: button, State: state}
}

// InputQueue is a bounded FIFO of input events with drop-oldest
// backpressure: Register never blocks and never grows the buffer.
//
// Register and Drain are the only synchronized boundary in canopy, so
// producers on other goroutines may feed the queue while the loop
// goroutine drains it.
type InputQueue struct {
	mu      sync.Mutex
	buf     []InputEvent
	head    int
	n       int
	dropped uint64
	scratch []InputEvent // drain snapshot; touched only by the draining goroutine
}

// NewInputQueue creates a queue holding at most capacity events.
// Panics if capacity is less than 1.
func NewInputQueue(capacity int) *InputQueue {
	if capacity < 1 {
		panic("canopy: input queue capacity must be at least 1")
	}
	return &InputQueue{
		buf:     make([]InputEvent, capacity),
		scratch: make([]InputEvent, 0, capacity),
	}
}

// Register appends ev. When the queue is full the oldest event is evicted
// first.
func (q *InputQueue) Register(ev InputEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.n == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.n--
		q.dropped++
	}
	q.buf[(q.head+q.n)%len(q.buf)] = ev
	q.n++
}

// Drain removes the events queued at the time of the call and passes them to
// fn oldest first. Events registered while fn runs stay queued for the next
// Drain. Returns the number of events handled.
func (q *InputQueue) Drain(fn func(InputEvent)) int {
	q.mu.Lock()
	events := q.scratch[:0]
	q.scratch = nil // a nested Drain from fn allocates its own snapshot
	for i := 0; i < q.n; i++ {
		events = append(events, q.buf[(q.head+i)%len(q.buf)])
	}
	q.head = 0
	q.n = 0
	q.mu.Unlock()

	for _, ev := range events {
		fn(ev)
	}
	q.scratch = events[:0]
	return len(events)
}

// Len returns the number of buffered events.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}

// Cap returns the queue capacity.
func (q *InputQueue) Cap() int {
	return len(q.buf)
}

// Dropped returns how many events have been evicted by backpressure.
func (q *InputQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Snapshot returns a copy of the buffered events, oldest first.
func (q *InputQueue) Snapshot() []InputEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]InputEvent, q.n)
	for i := range out {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}
