package swayimg

import "testing"

func newTestQueue(t *testing.T) *EventQueue {
	t.Helper()
	q, err := NewEventQueue()
	if err != nil {
		t.Fatalf("NewEventQueue: %v", err)
	}
	t.Cleanup(q.Close)
	return q
}

// drainTypes pops all events and returns their types.
func drainTypes(q *EventQueue) []EventType {
	var types []EventType
	for {
		ev, ok := q.Pop()
		if !ok {
			return types
		}
		types = append(types, ev.Type)
	}
}

func TestQueue_FIFO(t *testing.T) {
	q := newTestQueue(t)
	q.Append(Event{Type: EventResize})
	q.Append(Event{Type: EventActivate, Index: 3})
	q.Append(Event{Type: EventResize})

	got := drainTypes(q)
	want := []EventType{EventResize, EventActivate, EventResize}
	if len(got) != len(want) {
		t.Fatalf("drained %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQueue_RedrawCoalescing(t *testing.T) {
	q := newTestQueue(t)
	q.AppendRedraw()
	q.AppendRedraw()
	q.AppendRedraw()

	if got := q.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 after three redraw appends", got)
	}
}

func TestQueue_DragMerge(t *testing.T) {
	q := newTestQueue(t)
	q.AppendDrag(3, 4)
	q.AppendDrag(-1, 2)

	if got := q.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 after merging drags", got)
	}
	ev, _ := q.Pop()
	if ev.Type != EventDrag || ev.DX != 2 || ev.DY != 6 {
		t.Errorf("merged drag = %+v, want drag(2, 6)", ev)
	}
}

func TestQueue_FIFOWithMergeException(t *testing.T) {
	// resize, redraw, drag, redraw: the first redraw is removed and a
	// new one is appended at the tail
	q := newTestQueue(t)
	q.Append(Event{Type: EventResize})
	q.AppendRedraw()
	q.AppendDrag(1, 1)
	q.AppendRedraw()

	got := drainTypes(q)
	want := []EventType{EventResize, EventDrag, EventRedraw}
	if len(got) != len(want) {
		t.Fatalf("drain order %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drain order %v, want %v", got, want)
		}
	}
}

func TestQueue_RedrawAtTailKept(t *testing.T) {
	// a redraw already at the tail is left alone, other events keep
	// their relative order
	q := newTestQueue(t)
	q.Append(Event{Type: EventResize})
	q.AppendRedraw()
	q.AppendRedraw()

	got := drainTypes(q)
	want := []EventType{EventResize, EventRedraw}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("drain order %v, want %v", got, want)
	}
}

func TestQueue_Notification(t *testing.T) {
	q := newTestQueue(t)

	if q.note.pending() {
		t.Fatal("fresh queue has a pending wakeup")
	}

	// multiple appends coalesce into one pending wakeup
	q.Append(Event{Type: EventResize})
	q.AppendRedraw()
	q.AppendDrag(1, 1)
	if !q.note.pending() {
		t.Fatal("no pending wakeup after appends")
	}

	q.Reset()
	if q.note.pending() {
		t.Error("wakeup still pending after Reset")
	}

	// raising again after reset is observable again
	q.Append(Event{Type: EventResize})
	if !q.note.pending() {
		t.Error("no pending wakeup after post-reset append")
	}
}

func TestQueue_DragMergeRaisesNoNewWakeup(t *testing.T) {
	q := newTestQueue(t)
	q.AppendDrag(1, 1)
	q.Reset()

	q.AppendDrag(2, 2) // merges in place
	if q.note.pending() {
		t.Error("drag merge raised a wakeup")
	}
}

func TestQueue_CloseReleasesLoadPayloads(t *testing.T) {
	q, err := NewEventQueue()
	if err != nil {
		t.Fatalf("NewEventQueue: %v", err)
	}

	img := NewImage("test.png", "png", false, NewPixmap(8, 8))
	q.Append(Event{Type: EventLoad, Image: img, Index: 0})
	q.Append(Event{Type: EventRedraw})

	q.Close()

	if img.Pixmap() != nil {
		t.Error("queued image not released on Close")
	}
}

func TestQueue_PopTransfersOwnership(t *testing.T) {
	q := newTestQueue(t)

	img := NewImage("test.png", "png", false, NewPixmap(8, 8))
	q.Append(Event{Type: EventLoad, Image: img, Index: 5})

	ev, ok := q.Pop()
	if !ok || ev.Type != EventLoad || ev.Image != img || ev.Index != 5 {
		t.Fatalf("Pop() = %+v, %v", ev, ok)
	}
	if img.Pixmap() == nil {
		t.Error("image released while still owned by the consumer")
	}
}
