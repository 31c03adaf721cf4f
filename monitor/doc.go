// Package monitor runs the background event monitor that turns OS
// device-change notifications into registry refresh passes.
//
// A [Monitor] owns exactly one background goroutine. On [Monitor.Start]
// the goroutine subscribes to USB device-interface notifications through
// the platform [hal.Notifier] and enters a blocking wait loop; each
// relevant notification triggers a reconciliation pass across every live
// context. [Monitor.Stop] signals the subscription closed, waits for the
// goroutine to tear down its endpoint and exit, and releases its state.
//
// A failed Start leaves hotplug detection disabled but does not prevent
// the library from functioning: an explicit [registry.Registry.InitialScan]
// still succeeds independently.
package monitor
