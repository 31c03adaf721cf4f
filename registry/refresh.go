package registry

import (
	"fmt"

	"github.com/ardnew/usbhotplug/pkg"
)

// enumerate marks every device in c NoLongerDiscovered and invokes the
// context's enumerator. Registry lock must be held.
func (r *Registry) enumerate(c *Context) error {
	c.markAll(NoLongerDiscovered)
	if err := c.enum.DeviceList(c); err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrEnumeration, err)
	}
	return nil
}

// refreshContext performs one reconciliation pass for c.
// Registry lock must be held.
//
// On enumeration failure the pass is abandoned: the device list is left
// exactly as the enumerator left it (atomic per device, not per call)
// and no notifications are raised. The next pass re-marks every device,
// so no compensation is needed.
func (r *Registry) refreshContext(c *Context) error {
	if err := r.enumerate(c); err != nil {
		pkg.LogError(pkg.ComponentRegistry,
			"hotplug failed to retrieve current device list",
			"context", c.id,
			"error", err)
		return err
	}

	// Sweep removals first: a listener must never observe an arrival
	// for a device slot that logically replaced one pending removal.
	for _, d := range snapshot(c.devices) {
		if d.status != NoLongerDiscovered {
			continue
		}
		if d.initialized {
			c.notify(Left, d)
		} else {
			pkg.LogDebug(pkg.ComponentRegistry, "detaching device",
				"context", c.id,
				"device", d.key.String())
		}
		c.remove(d)
	}

	for _, d := range c.devices {
		if d.status != NewlyDiscovered {
			continue
		}
		c.notify(Arrived, d)
	}

	return nil
}

// Refresh performs one reconciliation pass for c under the registry
// lock. It is the single-context form of [Registry.RefreshAll].
func (r *Registry) Refresh(c *Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.closed {
		return pkg.ErrContextClosed
	}
	return r.refreshContext(c)
}

// RefreshAll reconciles every live context inside a single critical
// section. Hotplug notifications are coarse (device-class-wide) and
// infrequent, so serializing all contexts under one lock acquisition is
// simpler and fast enough.
//
// One context's enumeration failure is logged and does not block the
// remaining contexts.
func (r *Registry) RefreshAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contexts {
		// Error already logged; other contexts still proceed.
		_ = r.refreshContext(c)
	}
}

// InitialScan populates c's device list with a full synchronous
// enumeration under the registry lock. It establishes the baseline the
// event monitor diffs against; no notifications are raised, and it
// succeeds independently of whether hotplug monitoring ever starts.
func (r *Registry) InitialScan(c *Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.closed {
		return pkg.ErrContextClosed
	}
	return r.enumerate(c)
}

// snapshot copies a device slice so removal during iteration is safe.
func snapshot(devices []*Device) []*Device {
	out := make([]*Device, len(devices))
	copy(out, devices)
	return out
}
