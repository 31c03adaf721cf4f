//go:build linux

package linux

import (
	"bytes"
	"strings"
)

// =============================================================================
// UEvent Types
// =============================================================================

// ueventAction represents a kernel uevent action.
type ueventAction uint8

const (
	ueventUnknown ueventAction = iota
	ueventAdd
	ueventRemove
	ueventChange
	ueventBind
	ueventUnbind
)

// uevent holds the fields of a kernel uevent that the notifier consumes.
type uevent struct {
	action    ueventAction
	devpath   string // DEVPATH value
	subsystem string // SUBSYSTEM value
	devtype   string // DEVTYPE value
}

// isUSBDevice reports whether the uevent describes a whole USB device
// (as opposed to an interface or another subsystem entirely).
func (e uevent) isUSBDevice() bool {
	return e.subsystem == subsystemUSB && e.devtype == devtypeUSBDevice
}

// =============================================================================
// UEvent Parsing
// =============================================================================

// parseAction maps a uevent action string to its ueventAction value.
func parseAction(s string) ueventAction {
	switch s {
	case "add":
		return ueventAdd
	case "remove":
		return ueventRemove
	case "change":
		return ueventChange
	case "bind":
		return ueventBind
	case "unbind":
		return ueventUnbind
	}
	return ueventUnknown
}

// parseUEvent parses a raw netlink uevent message.
//
// The message is a sequence of null-terminated strings: a header of the
// form "action@devpath" followed by KEY=VALUE pairs. Explicit ACTION and
// DEVPATH pairs take precedence over the header.
func parseUEvent(data []byte) uevent {
	var evt uevent

	for _, field := range bytes.Split(data, []byte{0}) {
		if len(field) == 0 {
			continue
		}
		s := string(field)

		key, value, found := strings.Cut(s, "=")
		if !found {
			// Header line: action@devpath.
			if action, devpath, ok := strings.Cut(s, "@"); ok {
				evt.action = parseAction(action)
				evt.devpath = devpath
			}
			continue
		}

		switch key {
		case "ACTION":
			evt.action = parseAction(value)
		case "DEVPATH":
			evt.devpath = value
		case "SUBSYSTEM":
			evt.subsystem = value
		case "DEVTYPE":
			evt.devtype = value
		}
	}

	return evt
}
