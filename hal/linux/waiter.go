//go:build linux

package linux

import (
	"golang.org/x/sys/unix"
)

// =============================================================================
// Waiter
// =============================================================================

// waiter multiplexes a watched file descriptor with an eventfd wakeup
// channel through epoll. It backs the blocking wait of a subscription:
// wait blocks until the watched descriptor is readable or wake is
// called from another goroutine.
type waiter struct {
	epfd   int // epoll file descriptor
	wakefd int // eventfd for cross-goroutine wakeup
	fd     int // Watched file descriptor
}

// newWaiter creates a waiter for the given file descriptor.
func newWaiter(fd int) (*waiter, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}

	wakefd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		unix.Close(epfd)
		return nil, err
	}

	w := &waiter{epfd: epfd, wakefd: wakefd, fd: fd}

	for _, watch := range []int{fd, wakefd} {
		event := unix.EpollEvent{
			Events: unix.EPOLLIN,
			Fd:     int32(watch),
		}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, watch, &event); err != nil {
			unix.Close(wakefd)
			unix.Close(epfd)
			return nil, err
		}
	}

	return w, nil
}

// wait blocks until the watched descriptor is readable or wake is
// called. It reports whether a wakeup was observed; EINTR is retried.
func (w *waiter) wait() (woken bool, err error) {
	var events [maxEpollEvents]unix.EpollEvent

	for {
		n, err := unix.EpollWait(w.epfd, events[:], -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}

		readable := false
		for i := 0; i < n; i++ {
			switch int(events[i].Fd) {
			case w.wakefd:
				// Drain the eventfd counter.
				var buf [8]byte
				unix.Read(w.wakefd, buf[:])
				woken = true
			case w.fd:
				readable = true
			}
		}

		if woken || readable {
			return woken, nil
		}
	}
}

// wake unblocks a pending wait. Safe to call from any goroutine.
func (w *waiter) wake() error {
	buf := [8]byte{1}
	_, err := unix.Write(w.wakefd, buf[:])
	return err
}

// close releases the waiter's descriptors. Must only be called by the
// goroutine that drives wait.
func (w *waiter) close() {
	unix.Close(w.wakefd)
	unix.Close(w.epfd)
}
