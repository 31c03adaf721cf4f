package registry

import "fmt"

// DiscoveryStatus tracks whether a device was seen in the current
// reconciliation pass. It is the per-device tag the reconciler uses to
// detect additions and removals.
type DiscoveryStatus uint8

// Discovery status values.
const (
	NotYetSeen         DiscoveryStatus = iota // Never observed by any pass
	StillPresent                              // Known device, seen again this pass
	NewlyDiscovered                           // First observed during this pass
	NoLongerDiscovered                        // Not observed this pass; removal pending
)

// String returns a human-readable status name.
func (s DiscoveryStatus) String() string {
	switch s {
	case NotYetSeen:
		return "not-yet-seen"
	case StillPresent:
		return "still-present"
	case NewlyDiscovered:
		return "newly-discovered"
	case NoLongerDiscovered:
		return "no-longer-discovered"
	default:
		return "unknown"
	}
}

// DeviceKey is the stable bus-position identity used to correlate a
// device across refresh cycles.
type DeviceKey struct {
	Bus      uint8  // Bus number
	Address  uint8  // Device address on the bus
	PortPath string // Topology path below the root hub, e.g. "1-1.4"
}

// String formats the key as bus/address with the port path.
func (k DeviceKey) String() string {
	return fmt.Sprintf("%03d/%03d (%s)", k.Bus, k.Address, k.PortPath)
}

// DeviceInfo carries the enumeration metadata attached to a device.
type DeviceInfo struct {
	VendorID  uint16
	ProductID uint16
}

// Device represents one attached USB device known to a context.
//
// All fields are guarded by the registry lock of the owning context's
// registry. Accessors must be called either from within an enumerator or
// listener (where the lock is held by the caller) or via
// [Registry.Do].
type Device struct {
	key         DeviceKey
	info        DeviceInfo
	status      DiscoveryStatus
	initialized bool
}

// Key returns the device's stable identity.
func (d *Device) Key() DeviceKey { return d.key }

// Info returns the device's enumeration metadata.
func (d *Device) Info() DeviceInfo { return d.info }

// Status returns the device's discovery status.
//
// Statuses persist between passes: a device that raised an arrival
// notification keeps NewlyDiscovered until the next pass re-marks it.
func (d *Device) Status() DiscoveryStatus { return d.status }

// Initialized reports whether the device has completed the library's
// internal setup sequence, i.e. whether it was ever handed to the
// application.
func (d *Device) Initialized() bool { return d.initialized }

// SetInitialized records that the device completed the library's setup
// sequence. Once set, removal of the device raises a disconnect
// notification instead of a silent detach.
func (d *Device) SetInitialized() { d.initialized = true }
