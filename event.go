package swayimg

// EventType identifies the variant of an Event.
type EventType int

const (
	// EventRedraw requests a window repaint. At most one instance is
	// ever pending in the queue.
	EventRedraw EventType = iota
	// EventResize signals a window size change.
	EventResize
	// EventDrag carries accumulated pointer-drag deltas. Pending drags
	// merge by summing deltas.
	EventDrag
	// EventActivate tells a mode handler it became active.
	EventActivate
	// EventLoad delivers an image decoded by the background loader.
	// The event owns the image until a consumer takes it.
	EventLoad
	// EventAction carries one action from a key binding or signal.
	EventAction
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventRedraw:
		return "redraw"
	case EventResize:
		return "resize"
	case EventDrag:
		return "drag"
	case EventActivate:
		return "activate"
	case EventLoad:
		return "load"
	case EventAction:
		return "action"
	default:
		return "unknown"
	}
}

// Event is one entry of the application queue. Only the fields of the
// active variant are meaningful.
type Event struct {
	Type EventType

	// Drag deltas (EventDrag).
	DX, DY int

	// Image list index (EventLoad, EventActivate).
	Index int

	// Decoded image (EventLoad). Owned by the queue until dequeued;
	// the consumer that takes it must Release it.
	Image *Image

	// Action record (EventAction).
	Action *Action
}
