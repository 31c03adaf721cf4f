package hal

// DeviceClass identifies the class of device interface a notification
// refers to.
type DeviceClass uint8

// Device class constants.
const (
	ClassOther     DeviceClass = iota // Any non-USB device interface class
	ClassUSBDevice                    // USB device interface class
)

// String returns a human-readable class name.
func (c DeviceClass) String() string {
	switch c {
	case ClassUSBDevice:
		return "usb-device"
	default:
		return "other"
	}
}

// Action is the kind of device-change notification delivered by the
// platform.
type Action uint8

// Notification actions.
const (
	Arrived  Action = iota // A device interface became available
	Removed                // A device interface was removed
	Teardown               // The platform endpoint is being torn down
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case Arrived:
		return "arrived"
	case Removed:
		return "removed"
	case Teardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// Event is one device-change notification.
//
// On platforms with broadcast-style notifications the receiver must
// respond whether the notification was handled; Ack carries that
// response. Acknowledging with handled=true denies further propagation
// of the broadcast. On platforms without broadcast semantics Ack is a
// no-op.
type Event struct {
	Action Action
	Class  DeviceClass

	ack func(handled bool)
}

// NewEvent constructs an event for delivery by a notifier implementation.
// ack may be nil when the platform has no propagation response.
func NewEvent(action Action, class DeviceClass, ack func(handled bool)) Event {
	return Event{Action: action, Class: class, ack: ack}
}

// Ack reports whether the event was handled. Safe to call on events
// without a platform response mechanism.
func (e Event) Ack(handled bool) {
	if e.ack != nil {
		e.ack(handled)
	}
}

// Notifier creates subscriptions to OS device-change notifications.
//
// Implementations provide the platform-specific endpoint (hidden window,
// netlink socket, kernel event queue) behind a uniform surface.
type Notifier interface {
	// Subscribe registers for device-change notifications, filtered to
	// the given device-interface class where the platform supports
	// upstream filtering. The returned subscription is owned by exactly
	// one goroutine; only Close may be called from elsewhere.
	Subscribe(class DeviceClass) (Subscription, error)
}

// Subscription is a live registration for device-change notifications.
type Subscription interface {
	// Next blocks until the next notification arrives or the
	// subscription is closed. After Close it returns an error wrapping
	// pkg.ErrClosed. Next must only be called by the owning goroutine.
	Next() (Event, error)

	// Close signals shutdown and unblocks a pending Next. It is
	// idempotent and safe to call from any goroutine. Endpoint teardown
	// is performed by the owning goroutine as it observes the close.
	Close() error
}
