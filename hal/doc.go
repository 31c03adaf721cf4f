// Package hal defines the platform notification service interface consumed
// by the event monitor.
//
// Operating systems deliver device-change notifications through very
// different mechanisms: window messages on Windows, netlink uevents on
// Linux, IOKit notifications on Darwin. This package abstracts the three
// primitives the monitor actually needs (subscribe, blocking wait, and
// unsubscribe) behind the [Notifier] and [Subscription] interfaces, so
// that all platform-specific code lives in the notifier implementations
// and the reconciliation logic stays platform-free.
//
// Platform implementations live in subpackages (see hal/linux).
package hal
