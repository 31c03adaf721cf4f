// Package pkg provides shared utilities for the usbhotplug monitoring core.
//
// This package contains common functionality used across the registry,
// monitor, and platform notifier packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for monitor and registry failure kinds
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with hotplug-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentMonitor, "event monitor started")
//
// # Errors
//
// Failure kinds are defined as sentinel values so callers can classify
// wrapped platform errors:
//
//	if errors.Is(err, pkg.ErrSubscription) {
//	    // Hotplug detection unavailable; explicit scans still work.
//	}
package pkg
