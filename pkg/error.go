package pkg

import "errors"

// Hotplug core errors.
var (
	// ErrAlreadyRunning indicates the event monitor is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the event monitor is not running.
	ErrNotRunning = errors.New("not running")

	// ErrSubscription indicates OS device-notification registration failed.
	// This is fatal to the event monitor at startup.
	ErrSubscription = errors.New("notification subscription failed")

	// ErrEnumeration indicates the backend could not retrieve the device
	// list for a context. The refresh for that context is abandoned for
	// the cycle; other contexts are unaffected.
	ErrEnumeration = errors.New("device enumeration failed")

	// ErrMonitor indicates a monitor thread lifecycle failure
	// (creation, join, or resource-release errors).
	ErrMonitor = errors.New("event monitor failure")

	// ErrClosed indicates the notification subscription has been closed.
	ErrClosed = errors.New("subscription closed")

	// ErrCancelled indicates an operation was cancelled.
	ErrCancelled = errors.New("operation cancelled")

	// ErrContextClosed indicates the library context has been closed.
	ErrContextClosed = errors.New("context closed")
)
