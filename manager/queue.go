package manager

import (
	"sync"

	"github.com/Alia5/inputmux/input"
)

// eventQueue is the shared state between capture goroutines and readers: an
// unbounded FIFO of events, a first-wins fatal error and the number of live
// sources.
type eventQueue struct {
	mu     sync.Mutex
	events []input.Event
	err    error
	live   int
	closed bool

	// wake carries at most one pending wakeup for blocked readers.
	wake chan struct{}
	// terminal is closed once the queue can never produce another event.
	terminal     chan struct{}
	terminalOnce sync.Once
}

func newEventQueue(live int) *eventQueue {
	q := &eventQueue{
		live:     live,
		wake:     make(chan struct{}, 1),
		terminal: make(chan struct{}),
	}
	if live == 0 {
		q.finish()
	}
	return q
}

func (q *eventQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue) finish() {
	q.terminalOnce.Do(func() { close(q.terminal) })
}

// push appends ev. Events arriving after a fatal error or Close are dropped.
func (q *eventQueue) push(ev input.Event) {
	q.mu.Lock()
	if q.err != nil || q.closed {
		q.mu.Unlock()
		return
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()
	q.signal()
}

// fail records err unless an error is already set. It reports whether err
// was stored.
func (q *eventQueue) fail(err error) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return false
	}
	q.err = err
	q.events = nil
	q.finish()
	return true
}

// sourceDone marks one source as terminated.
func (q *eventQueue) sourceDone() {
	q.mu.Lock()
	q.live--
	if q.live <= 0 {
		q.finish()
	}
	q.mu.Unlock()
	q.signal()
}

func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.events = nil
	q.finish()
	q.mu.Unlock()
}

// take returns the next outcome without blocking. ok is false when the
// caller has to wait.
func (q *eventQueue) take() (ev input.Event, ok bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	switch {
	case q.err != nil:
		return nil, true, q.err
	case q.closed:
		return nil, true, ErrAllSourcesClosed
	case len(q.events) > 0:
		ev = q.events[0]
		q.events[0] = nil
		q.events = q.events[1:]
		if len(q.events) > 0 {
			// Pass the wakeup on to the next blocked reader.
			q.signal()
		}
		return ev, true, nil
	case q.live <= 0:
		return nil, true, ErrAllSourcesClosed
	}
	return nil, false, nil
}
