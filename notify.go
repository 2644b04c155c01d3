package swayimg

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// notification is the cross-thread wakeup primitive behind the event
// queue: an eventfd counter. Raising it any number of times between two
// resets is observable as exactly one pending wakeup of the poll loop.
type notification struct {
	fd int
}

// newNotification creates the eventfd. Non-blocking so reset can drain
// the counter without stalling the consumer.
func newNotification() (*notification, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &notification{fd: fd}, nil
}

// raise marks the notification as pending. Safe to call from any
// goroutine; calls between two resets coalesce into a single wakeup.
func (n *notification) raise() {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	// EAGAIN means the counter is saturated, which still reads back as
	// a single pending wakeup.
	_, _ = unix.Write(n.fd, buf[:])
}

// reset clears the pending state. Only the consumer calls this, at the
// start of a drain.
func (n *notification) reset() {
	var buf [8]byte
	_, _ = unix.Read(n.fd, buf[:])
}

// pending reports whether a wakeup is currently raised, without
// consuming it.
func (n *notification) pending() bool {
	fds := []unix.PollFd{{Fd: int32(n.fd), Events: unix.POLLIN}}
	num, err := unix.Poll(fds, 0)
	return err == nil && num > 0 && fds[0].Revents&unix.POLLIN != 0
}

// close releases the eventfd.
func (n *notification) close() {
	_ = unix.Close(n.fd)
}
