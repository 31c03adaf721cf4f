package monitor

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/xerrors"

	"github.com/ardnew/usbhotplug/hal"
	"github.com/ardnew/usbhotplug/pkg"
	"github.com/ardnew/usbhotplug/registry"
)

// State describes where the monitor goroutine is in its lifecycle.
type State uint32

// Monitor lifecycle states. Waiting is the only suspension point.
const (
	Created       State = iota // Goroutine not yet started
	Subscribing                // Registering the notification endpoint
	Waiting                    // Blocked on the next notification
	Reconciling                // Running a refresh pass
	Unsubscribing              // Tearing down the notification endpoint
	Exited                     // Goroutine has returned
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Subscribing:
		return "subscribing"
	case Waiting:
		return "waiting"
	case Reconciling:
		return "reconciling"
	case Unsubscribing:
		return "unsubscribing"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Monitor coordinates the background notification goroutine for one
// registry.
//
// All notification-endpoint state is held here explicitly and handed to
// the goroutine that owns it; nothing is stashed in package-level
// variables. Start and Stop are serialized by an internal mutex, but the
// caller is still expected to sequence them (calling Start twice without
// an intervening Stop returns an error).
type Monitor struct {
	reg      *registry.Registry
	notifier hal.Notifier

	mu      sync.Mutex       // Guards running, sub, done across Start/Stop
	running bool             // A goroutine has been started and not yet joined
	sub     hal.Subscription // Owned by the goroutine; Close-only elsewhere
	done    chan struct{}    // Closed when the goroutine exits

	state atomic.Uint32
}

// New creates a monitor for the given registry and platform notifier.
func New(reg *registry.Registry, notifier hal.Notifier) *Monitor {
	return &Monitor{reg: reg, notifier: notifier}
}

// State returns the monitor goroutine's current lifecycle state.
func (m *Monitor) State() State {
	return State(m.state.Load())
}

func (m *Monitor) setState(s State) {
	m.state.Store(uint32(s))
}

// Start spawns the event monitor goroutine and blocks until it has
// subscribed to USB device-interface notifications.
//
// A subscription failure is terminal for the goroutine: it exits before
// reaching the wait loop, and Start reports the failure wrapped in
// pkg.ErrMonitor with no goroutine left running. Returns
// pkg.ErrAlreadyRunning if called again without an intervening Stop.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return pkg.ErrAlreadyRunning
	}

	ready := make(chan hal.Subscription, 1)
	done := make(chan struct{})
	go m.run(ready, done)

	// The goroutine either hands over its live subscription or exits
	// without one; exit-without-ready is the startup failure signal.
	var sub hal.Subscription
	select {
	case sub = <-ready:
	case <-done:
		// The goroutine may have subscribed and exited in between;
		// only an empty ready channel means startup failed.
		select {
		case sub = <-ready:
		default:
			return xerrors.Errorf("startup subscription did not complete: %w", pkg.ErrMonitor)
		}
	}

	m.running = true
	m.sub = sub
	m.done = done
	pkg.LogInfo(pkg.ComponentMonitor, "event monitor started")
	return nil
}

// Stop shuts down the event monitor and joins its goroutine.
//
// If the monitor was never started (no notification endpoint exists)
// Stop is a successful no-op. Otherwise it signals the subscription
// closed, blocks without timeout until the goroutine has exited, and
// releases its state. Failures along the way are logged and reported,
// but every cleanup step still runs.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return nil
	}

	var firstErr error
	if err := m.sub.Close(); err != nil {
		pkg.LogError(pkg.ComponentMonitor, "closing notification endpoint",
			"error", err)
		firstErr = xerrors.Errorf("close notification endpoint: %v: %w", err, pkg.ErrMonitor)
	}

	// Unbounded join: forcibly abandoning the goroutine mid-notification
	// would leak the platform endpoint.
	<-m.done

	m.running = false
	m.sub = nil
	m.done = nil

	pkg.LogInfo(pkg.ComponentMonitor, "event monitor stopped")
	return firstErr
}

// run is the monitor goroutine body: subscribe, wait loop, unsubscribe.
func (m *Monitor) run(ready chan<- hal.Subscription, done chan struct{}) {
	defer close(done)

	pkg.LogDebug(pkg.ComponentMonitor, "event monitor goroutine entering")

	m.setState(Subscribing)
	sub, err := m.notifier.Subscribe(hal.ClassUSBDevice)
	if err != nil {
		pkg.LogError(pkg.ComponentMonitor, "device notification subscription failed",
			"error", err)
		m.setState(Exited)
		return
	}
	ready <- sub

	m.loop(sub)

	m.setState(Unsubscribing)
	if err := sub.Close(); err != nil {
		pkg.LogError(pkg.ComponentMonitor, "notification endpoint teardown",
			"error", err)
	}
	m.setState(Exited)

	pkg.LogDebug(pkg.ComponentMonitor, "event monitor goroutine exiting")
}

// loop blocks on the subscription until shutdown or teardown.
func (m *Monitor) loop(sub hal.Subscription) {
	for {
		m.setState(Waiting)
		ev, err := sub.Next()
		if err != nil {
			if !errors.Is(err, pkg.ErrClosed) {
				pkg.LogError(pkg.ComponentMonitor, "notification wait failed",
					"error", err)
			}
			return
		}

		switch ev.Action {
		case hal.Teardown:
			// OS-level teardown of the endpoint; exit the wait loop.
			ev.Ack(true)
			return

		case hal.Arrived, hal.Removed:
			// Class filtering happens here rather than upstream: only
			// USB device-interface notifications are handled (and their
			// further propagation denied); everything else passes through.
			if ev.Class != hal.ClassUSBDevice {
				ev.Ack(false)
				continue
			}
			m.setState(Reconciling)
			pkg.LogDebug(pkg.ComponentMonitor, "device change notification",
				"action", ev.Action.String())
			m.reg.RefreshAll()
			ev.Ack(true)

		default:
			ev.Ack(false)
		}
	}
}
