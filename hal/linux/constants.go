//go:build linux

package linux

// =============================================================================
// Netlink Configuration
// =============================================================================

// kernelBroadcastGroup is the netlink multicast group the kernel uses
// for uevent broadcasts (UDEV_MONITOR_KERNEL).
const kernelBroadcastGroup = 1

// ueventBufferSize is the receive buffer size for a single uevent
// message. Kernel uevents are bounded well below this.
const ueventBufferSize = 2048

// =============================================================================
// Epoll Configuration
// =============================================================================

// maxEpollEvents bounds one epoll_wait batch. Only two descriptors are
// registered (netlink socket and wake eventfd).
const maxEpollEvents = 4

// =============================================================================
// UEvent Fields
// =============================================================================

// Subsystem and devtype values identifying whole-device USB uevents.
const (
	subsystemUSB     = "usb"
	devtypeUSBDevice = "usb_device"
)
