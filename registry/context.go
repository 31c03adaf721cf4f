package registry

import (
	"github.com/google/uuid"

	"github.com/ardnew/usbhotplug/pkg"
)

// Event is the kind of hotplug notification delivered to listeners.
type Event uint8

// Hotplug notification events.
const (
	Arrived Event = iota // A new device became visible to the application
	Left                 // A previously visible device was removed
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case Arrived:
		return "arrived"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ListenerFunc receives hotplug notifications for one context.
//
// Listeners run synchronously inside the registry critical section and
// must not call back into the registry or block.
type ListenerFunc func(Event, *Device)

// Enumerator retrieves the current set of attached devices for a context.
//
// It is the backend-specific external collaborator: DeviceList is called
// with the registry lock held and reports each physically present device
// through [Context.Discovered]. The contract is atomic per device, not
// per call: devices already reported before a failure keep their
// StillPresent status.
type Enumerator interface {
	DeviceList(*Context) error
}

// EnumeratorFunc adapts a function to the Enumerator interface.
type EnumeratorFunc func(*Context) error

// DeviceList calls fn.
func (fn EnumeratorFunc) DeviceList(c *Context) error { return fn(c) }

// Context is one independent session of the library, with its own
// ordered device list and hotplug listeners.
//
// Contexts are created through [Registry.NewContext]; the registry lock
// guards the device list and listener set.
type Context struct {
	id        uuid.UUID
	reg       *Registry
	enum      Enumerator
	devices   []*Device
	listeners []ListenerFunc
	closed    bool
}

// ID returns the context's session identifier, used for log correlation.
func (c *Context) ID() uuid.UUID { return c.id }

// OnHotplug registers a listener for arrival and disconnect
// notifications. Listeners run inside the registry critical section; see
// [ListenerFunc].
func (c *Context) OnHotplug(fn ListenerFunc) {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Devices returns a snapshot of the context's device list.
func (c *Context) Devices() []*Device {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	out := make([]*Device, len(c.devices))
	copy(out, c.devices)
	return out
}

// Discovered records that the device identified by key is physically
// present. If the key matches an existing entry, that entry is re-marked
// StillPresent and its metadata refreshed; otherwise a new entry is
// appended with status NewlyDiscovered. The device entry is returned in
// either case.
//
// Discovered is the enumerator's reporting primitive and must only be
// called while the registry lock is held, i.e. from within
// [Enumerator.DeviceList].
func (c *Context) Discovered(key DeviceKey, info DeviceInfo) *Device {
	for _, d := range c.devices {
		if d.key == key {
			d.status = StillPresent
			d.info = info
			return d
		}
	}
	d := &Device{key: key, info: info, status: NewlyDiscovered}
	c.devices = append(c.devices, d)
	return d
}

// markAll tags every device in the context with the given status.
// Registry lock must be held.
func (c *Context) markAll(status DiscoveryStatus) {
	for _, d := range c.devices {
		d.status = status
	}
}

// notify delivers ev for d to every registered listener.
// Registry lock must be held.
func (c *Context) notify(ev Event, d *Device) {
	pkg.LogDebug(pkg.ComponentNotify, "hotplug notification",
		"context", c.id,
		"event", ev.String(),
		"device", d.key.String())
	for _, fn := range c.listeners {
		fn(ev, d)
	}
}

// remove deletes d from the context's device list, preserving order.
// Registry lock must be held.
func (c *Context) remove(d *Device) {
	for i, have := range c.devices {
		if have == d {
			c.devices = append(c.devices[:i], c.devices[i+1:]...)
			return
		}
	}
}
