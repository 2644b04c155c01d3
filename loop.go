package swayimg

import (
	"errors"

	"golang.org/x/sys/unix"
)

// LoopState is the dispatch loop state.
type LoopState int

const (
	// LoopRun means the loop is processing events.
	LoopRun LoopState = iota
	// LoopStop means a clean exit was requested.
	LoopStop
	// LoopError means the loop terminated on a poll failure or an
	// error exit code.
	LoopError
)

// FdCallback handles readiness of one watched descriptor.
type FdCallback func()

// watcher binds a descriptor to its readiness callback.
type watcher struct {
	fd       int
	callback FdCallback
}

// Reactor multiplexes readiness across watched descriptors and invokes
// callbacks in registration order.
//
// Watch may be called before Run or from within a callback; it is not
// safe against concurrent registration from other goroutines. Exit is
// callable from any callback and truncates the remaining callbacks of
// the current poll cycle.
type Reactor struct {
	state    LoopState
	watchers []watcher

	prepare func() // before blocking, e.g. flush pending output
	done    func() // after a dispatch cycle, e.g. commit a frame
}

// Watch registers a descriptor for readiness polling. Registration
// order determines callback invocation order within a poll cycle.
// Descriptors are never individually removed; they live until Close.
func (r *Reactor) Watch(fd int, cb FdCallback) {
	if fd < 0 || cb == nil {
		Logger().Warn("dropped watch registration", "fd", fd)
		return
	}
	r.watchers = append(r.watchers, watcher{fd: fd, callback: cb})
}

// Run executes the dispatch loop until Exit is called or polling fails.
// It returns true on a clean exit, false on error.
func (r *Reactor) Run() bool {
	r.state = LoopRun

	fds := make([]unix.PollFd, 0, len(r.watchers))

	for r.state == LoopRun {
		if r.prepare != nil {
			r.prepare()
		}

		// rebuild the poll set: callbacks may have registered new fds
		fds = fds[:0]
		for _, w := range r.watchers {
			fds = append(fds, unix.PollFd{Fd: int32(w.fd), Events: unix.POLLIN})
		}

		if _, err := unix.Poll(fds, -1); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue // interrupted by a signal, retry
			}
			Logger().Error("event polling failed", "error", err)
			r.state = LoopError
			break
		}

		// invoke handlers for ready descriptors; stop as soon as an
		// exit takes effect mid-cycle
		for i := 0; r.state == LoopRun && i < len(fds); i++ {
			if fds[i].Revents&unix.POLLIN != 0 {
				r.watchers[i].callback()
			}
		}

		if r.done != nil {
			r.done()
		}
	}

	return r.state != LoopError
}

// Exit requests loop termination: a zero code stops the loop cleanly,
// any other code ends it with an error. Takes effect before the next
// callback dispatch.
func (r *Reactor) Exit(code int) {
	if code == 0 {
		r.state = LoopStop
	} else {
		r.state = LoopError
	}
}

// State returns the current loop state.
func (r *Reactor) State() LoopState {
	return r.state
}
