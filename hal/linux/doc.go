// Package linux implements the platform notification service for Linux
// using netlink kobject uevents.
//
// The kernel broadcasts a uevent on every device state change; the
// notifier binds a netlink socket to the kernel broadcast group and
// surfaces add/remove uevents for the usb subsystem as hal events. The
// blocking wait multiplexes the netlink socket with an eventfd through
// epoll, so Close can unblock a pending Next from another goroutine
// while the socket and epoll descriptors remain owned by the goroutine
// that drives the subscription.
//
// The implementation is pure Go with no cgo dependencies.
package linux
