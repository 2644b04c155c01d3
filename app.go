package swayimg

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Mode tags the active mode handler.
type Mode int

const (
	// ModeViewer is the single-image viewing mode.
	ModeViewer Mode = iota
	// ModeGallery is the thumbnail-grid mode.
	ModeGallery
)

// String returns the mode label used by the info overlay.
func (m Mode) String() string {
	if m == ModeGallery {
		return "gallery"
	}
	return "viewer"
}

// ModeHandler consumes events not handled by the common-action table.
// Viewer and Gallery implement it; custom handlers may be injected for
// tests.
type ModeHandler interface {
	Handle(ev *Event)
}

// WindowSystem is the narrow interface to the external windowing
// backend.
type WindowSystem interface {
	// ToggleFullscreen requests a fullscreen state change.
	ToggleFullscreen()
	// EventPrepare runs before the loop blocks (flush pending output).
	EventPrepare()
	// EventDone runs after a dispatch cycle (commit a frame).
	EventDone()
}

// Keybind identifies a key press with modifiers.
type Keybind struct {
	Key  uint32
	Mods uint8
}

// App is the application context: event queue, dispatch loop, viewport
// and mode routing. Create it with NewApp, release it with Close.
//
// All methods except the Append* helpers and Exit must be called from
// the consumer goroutine (the one running Run).
type App struct {
	loop   Reactor
	queue  *EventQueue
	canvas *Canvas
	info   *Info

	mode    Mode
	viewer  ModeHandler
	gallery ModeHandler

	ui       WindowSystem
	keybinds map[Keybind]ActionSeq
	sigusr1  ActionSeq
	sigusr2  ActionSeq
	sigCh    chan os.Signal
}

// NewApp creates an application context. The returned App owns an
// eventfd; callers must Close it.
func NewApp(opts ...Option) (*App, error) {
	queue, err := NewEventQueue()
	if err != nil {
		return nil, err
	}

	a := &App{
		queue:    queue,
		canvas:   NewCanvas(),
		info:     NewInfo(),
		keybinds: make(map[Keybind]ActionSeq),
		sigusr1:  ActionSeq{{Type: ActionReload}},
		sigusr2:  ActionSeq{{Type: ActionNextFile}},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.viewer == nil {
		a.viewer = NewViewer(a)
	}
	if a.gallery == nil {
		a.gallery = NewGallery(a)
	}
	a.info.Switch(a.mode.String())

	a.loop.Watch(queue.Fd(), a.handleEventQueue)
	if a.ui != nil {
		a.loop.prepare = a.ui.EventPrepare
		a.loop.done = a.ui.EventDone
	}

	// signal-driven action sequences: delivery is deferred to a
	// goroutine, so the append path never runs in signal context
	a.sigCh = make(chan os.Signal, 8)
	signal.Notify(a.sigCh, unix.SIGUSR1, unix.SIGUSR2)
	go a.watchSignals()

	return a, nil
}

// Close unbinds signals and releases the queue with any still-owned
// payloads.
func (a *App) Close() {
	signal.Stop(a.sigCh)
	close(a.sigCh)
	a.queue.Close()
}

// Canvas returns the viewport engine (consumer goroutine only).
func (a *App) Canvas() *Canvas { return a.canvas }

// Info returns the info overlay state (consumer goroutine only).
func (a *App) Info() *Info { return a.info }

// Watch registers an external descriptor with the dispatch loop.
func (a *App) Watch(fd int, cb FdCallback) {
	a.loop.Watch(fd, cb)
}

// Run executes the dispatch loop until Exit. Returns true on clean
// exit.
func (a *App) Run() bool {
	return a.loop.Run()
}

// Exit requests loop termination with the given code.
func (a *App) Exit(code int) {
	a.loop.Exit(code)
}

// IsViewer reports whether the viewer mode is active.
func (a *App) IsViewer() bool {
	return a.mode == ModeViewer
}

// handler returns the active mode handler.
func (a *App) handler() ModeHandler {
	if a.mode == ModeGallery {
		return a.gallery
	}
	return a.viewer
}

// SwitchMode toggles between viewer and gallery, synthesizes an
// activate event for the new handler and updates the info overlay.
func (a *App) SwitchMode(index int) {
	if a.mode == ModeViewer {
		a.mode = ModeGallery
	} else {
		a.mode = ModeViewer
	}
	Logger().Info("mode switched", "mode", a.mode.String())

	ev := Event{Type: EventActivate, Index: index}
	a.handler().Handle(&ev)

	if a.info.Enabled() {
		a.info.Switch(a.mode.String())
	}
	if a.info.HelpActive() {
		a.info.SwitchHelp()
	}

	a.AppendRedraw()
}

// applyCommonAction handles mode-independent actions. It reports
// whether the action was consumed.
func (a *App) applyCommonAction(action *Action) bool {
	switch action.Type {
	case ActionInfo:
		a.info.Switch(action.Params)
		a.AppendRedraw()
	case ActionStatus:
		a.info.UpdateStatus("%s", action.Params)
		a.AppendRedraw()
	case ActionFullscreen:
		if a.ui != nil {
			a.ui.ToggleFullscreen()
		}
	case ActionHelp:
		a.info.SwitchHelp()
		a.AppendRedraw()
	case ActionExit:
		if a.info.HelpActive() {
			a.info.SwitchHelp() // remove help overlay
			a.AppendRedraw()
		} else {
			a.Exit(0)
		}
	default:
		return false
	}
	return true
}

// handleEventQueue drains the queue on a notification wakeup. The lock
// is re-acquired per Pop, so producers are never blocked by dispatch,
// and a quit request interrupts a long backlog.
func (a *App) handleEventQueue() {
	a.queue.Reset()

	for a.loop.State() == LoopRun {
		ev, ok := a.queue.Pop()
		if !ok {
			break
		}
		if ev.Type != EventAction || !a.applyCommonAction(ev.Action) {
			a.handler().Handle(&ev)
		}
	}
}

// watchSignals turns received signals into their configured action
// sequences, queued as ordinary events.
func (a *App) watchSignals() {
	for sig := range a.sigCh {
		switch sig {
		case unix.SIGUSR1:
			a.AppendActions(a.sigusr1)
		case unix.SIGUSR2:
			a.AppendActions(a.sigusr2)
		}
	}
}

// AppendActions queues an action sequence. Safe from any goroutine.
func (a *App) AppendActions(seq ActionSeq) {
	for i := range seq {
		a.queue.Append(Event{Type: EventAction, Action: &seq[i]})
	}
}

// AppendRedraw queues a coalesced redraw request.
func (a *App) AppendRedraw() {
	a.queue.AppendRedraw()
}

// AppendResize queues a window resize notification.
func (a *App) AppendResize() {
	a.queue.Append(Event{Type: EventResize})
}

// AppendDrag queues pointer-drag deltas, merging with a pending drag.
func (a *App) AppendDrag(dx, dy int) {
	a.queue.AppendDrag(dx, dy)
}

// AppendLoad queues an image decoded by the background loader. The
// queue takes ownership of the image.
func (a *App) AppendLoad(img *Image, index int) {
	a.queue.Append(Event{Type: EventLoad, Image: img, Index: index})
}

// AppendReload queues a reload action.
func (a *App) AppendReload() {
	a.AppendActions(ActionSeq{{Type: ActionReload}})
}

// AppendKeypress queues the action sequence bound to a key press, or a
// status update when the key is not bound.
func (a *App) AppendKeypress(key uint32, mods uint8) {
	if seq, ok := a.keybinds[Keybind{Key: key, Mods: mods}]; ok {
		a.AppendActions(seq)
		return
	}
	status := Action{Type: ActionStatus, Params: "Key is not bound"}
	a.AppendActions(ActionSeq{status})
}
