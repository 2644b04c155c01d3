package swayimg

import "sync"

// EventQueue is the ordered, thread-safe mailbox between producer
// goroutines and the consumer loop. Events are dispatched in FIFO
// append order except where the coalescing rules collapse duplicates:
// at most one redraw is ever pending, and pending drag deltas merge
// into a single event.
//
// The queue owns every queued payload. Dequeuing transfers ownership to
// the caller; Close releases payloads still queued at teardown.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
	note   *notification
}

// NewEventQueue creates an empty queue with its wakeup notification.
func NewEventQueue() (*EventQueue, error) {
	note, err := newNotification()
	if err != nil {
		return nil, err
	}
	return &EventQueue{note: note}, nil
}

// Fd returns the notification descriptor for the poll loop to watch.
func (q *EventQueue) Fd() int {
	return q.note.fd
}

// Append adds an event to the tail of the queue and raises the wakeup
// notification. Safe to call from any goroutine.
func (q *EventQueue) Append(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()

	q.note.raise()
}

// AppendRedraw queues a redraw request. A redraw already at the tail is
// left alone; a redraw elsewhere in the queue is removed so the new one
// lands at the tail, preserving the relative order of other events.
func (q *EventQueue) AppendRedraw() {
	q.mu.Lock()
	for i, ev := range q.events {
		if ev.Type != EventRedraw {
			continue
		}
		if i == len(q.events)-1 {
			q.mu.Unlock()
			return
		}
		q.events = append(q.events[:i], q.events[i+1:]...)
		break
	}
	q.mu.Unlock()

	q.Append(Event{Type: EventRedraw})
}

// AppendDrag queues pointer-drag deltas. A pending drag absorbs the new
// deltas in place; no second node and no extra wakeup are created.
func (q *EventQueue) AppendDrag(dx, dy int) {
	q.mu.Lock()
	for i := range q.events {
		if q.events[i].Type == EventDrag {
			q.events[i].DX += dx
			q.events[i].DY += dy
			q.mu.Unlock()
			return
		}
	}
	q.mu.Unlock()

	q.Append(Event{Type: EventDrag, DX: dx, DY: dy})
}

// Pop removes and returns the head event, transferring ownership of its
// payload to the caller.
func (q *EventQueue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{} // drop the payload reference
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Reset clears the pending wakeup. The consumer calls this at the start
// of a drain, before popping: a producer appending during the drain
// raises the notification again and the loop re-enters.
func (q *EventQueue) Reset() {
	q.note.reset()
}

// Close releases every still-queued payload and the notification
// descriptor. Events appended after Close are lost.
func (q *EventQueue) Close() {
	q.mu.Lock()
	for i := range q.events {
		if q.events[i].Type == EventLoad {
			q.events[i].Image.Release()
		}
	}
	q.events = nil
	q.mu.Unlock()

	q.note.close()
}
