package input

import "github.com/gdamore/tcell/v2"

// Source is a non-blocking event source polled once per race tick
type Source interface {
	// Poll returns the next pending event, or false when none is queued
	Poll() (tcell.Event, bool)
}

// Queue buffers events between the blocking terminal poller and the race loop
type Queue struct {
	events chan tcell.Event
}

// NewQueue creates a queue holding at most size pending events
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{events: make(chan tcell.Event, size)}
}

// Push enqueues ev, dropping it when the queue is full
// Returns false on drop
func (q *Queue) Push(ev tcell.Event) bool {
	if ev == nil {
		return false
	}
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// Poll implements Source
func (q *Queue) Poll() (tcell.Event, bool) {
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return nil, false
	}
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Pump forwards events from poll until it returns nil
// Intended to run on its own goroutine with screen.PollEvent as poll
func (q *Queue) Pump(poll func() tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		q.Push(ev)
	}
}
