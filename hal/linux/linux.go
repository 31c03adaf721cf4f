//go:build linux

package linux

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"

	"github.com/ardnew/usbhotplug/hal"
	"github.com/ardnew/usbhotplug/pkg"
)

// =============================================================================
// Notifier
// =============================================================================

// Notifier implements [hal.Notifier] using netlink kobject uevents.
type Notifier struct{}

// New creates a Linux uevent notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe binds a netlink socket to the kernel uevent broadcast group
// and returns a subscription delivering USB device-change events.
//
// Netlink offers no per-class kernel filtering short of attaching a BPF
// program, so the class filter is applied as events are read: unrelated
// subsystems are dropped, and usb-subsystem events that are not whole
// devices are surfaced as ClassOther for the receiver to dismiss.
func (n *Notifier) Subscribe(class hal.DeviceClass) (hal.Subscription, error) {
	if class != hal.ClassUSBDevice {
		return nil, fmt.Errorf("%w: unsupported device class %q",
			pkg.ErrSubscription, class.String())
	}

	sock, err := unix.Socket(
		unix.AF_NETLINK,
		unix.SOCK_DGRAM|unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK,
		unix.NETLINK_KOBJECT_UEVENT,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create netlink socket: %w",
			pkg.ErrSubscription, err)
	}

	addr := &unix.SockaddrNetlink{
		Family: unix.AF_NETLINK,
		Groups: kernelBroadcastGroup,
	}
	if err := unix.Bind(sock, addr); err != nil {
		unix.Close(sock)
		return nil, fmt.Errorf("%w: bind kernel broadcast group: %w",
			pkg.ErrSubscription, err)
	}

	w, err := newWaiter(sock)
	if err != nil {
		unix.Close(sock)
		return nil, fmt.Errorf("%w: create wait endpoint: %w",
			pkg.ErrSubscription, err)
	}

	pkg.LogDebug(pkg.ComponentHAL, "subscribed to kernel uevent broadcasts")
	return &subscription{sock: sock, w: w}, nil
}

// =============================================================================
// Subscription
// =============================================================================

// subscription is a live netlink uevent registration.
//
// The socket, epoll, and eventfd descriptors are owned by the goroutine
// calling Next; Close only signals shutdown, and the owner releases the
// descriptors as it observes the signal.
type subscription struct {
	sock     int
	w        *waiter
	buf      [ueventBufferSize]byte
	closed   atomic.Bool
	teardown sync.Once
}

// Next blocks until a USB uevent arrives or the subscription is closed.
func (s *subscription) Next() (hal.Event, error) {
	for {
		if s.closed.Load() {
			s.release()
			return hal.Event{}, pkg.ErrClosed
		}

		n, err := unix.Read(s.sock, s.buf[:])
		if err != nil {
			switch err {
			case unix.EAGAIN:
				// Socket drained; block until readable or woken.
				if _, werr := s.w.wait(); werr != nil {
					s.release()
					return hal.Event{}, xerrors.Errorf("wait for device notification: %w", werr)
				}
				continue
			case unix.EINTR:
				continue
			}
			s.release()
			return hal.Event{}, xerrors.Errorf("read uevent: %w", err)
		}
		if n == 0 {
			continue
		}

		evt := parseUEvent(s.buf[:n])
		if evt.subsystem != subsystemUSB {
			continue
		}

		var action hal.Action
		switch evt.action {
		case ueventAdd:
			action = hal.Arrived
		case ueventRemove:
			action = hal.Removed
		default:
			continue
		}

		class := hal.ClassOther
		if evt.isUSBDevice() {
			class = hal.ClassUSBDevice
		}

		pkg.LogDebug(pkg.ComponentHAL, "uevent received",
			"action", action.String(),
			"class", class.String(),
			"devpath", evt.devpath)

		// Netlink broadcasts have no propagation response; ack is a no-op.
		return hal.NewEvent(action, class, nil), nil
	}
}

// Close signals shutdown and unblocks a pending Next. Idempotent.
func (s *subscription) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if err := s.w.wake(); err != nil {
		return xerrors.Errorf("wake notification endpoint: %w", err)
	}
	return nil
}

// release tears down the descriptors exactly once, from the owning
// goroutine's exit path.
func (s *subscription) release() {
	s.teardown.Do(func() {
		s.closed.Store(true)
		s.w.close()
		unix.Close(s.sock)
		pkg.LogDebug(pkg.ComponentHAL, "notification endpoint released")
	})
}
