package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ardnew/usbhotplug/pkg"
)

// Registry is the process-wide set of live contexts, guarded by a single
// mutex.
//
// The mutex is the sole serialization point for all device-list access:
// iteration over contexts and mutation of any context's device list
// happen only inside the critical section, so no two refresh passes can
// interleave. The lock is deliberately coarse: hotplug events are rare,
// and correctness outweighs parallelism here.
//
// The registry never exposes unguarded iteration; all access goes
// through methods that acquire the lock, or through [Registry.Do].
type Registry struct {
	mu       sync.Mutex
	contexts []*Context
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// NewContext creates a context backed by the given enumerator and adds
// it to the registry.
func (r *Registry) NewContext(enum Enumerator) *Context {
	c := &Context{
		id:   uuid.New(),
		reg:  r,
		enum: enum,
	}
	r.mu.Lock()
	r.contexts = append(r.contexts, c)
	r.mu.Unlock()
	pkg.LogDebug(pkg.ComponentRegistry, "context created", "context", c.id)
	return c
}

// CloseContext removes c from the registry. Its remaining device entries
// are dropped without notification: session teardown is the surrounding
// library's responsibility, and the application is assumed to have
// released the context already.
func (r *Registry) CloseContext(c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.devices = nil
	c.listeners = nil
	for i, have := range r.contexts {
		if have == c {
			r.contexts = append(r.contexts[:i], r.contexts[i+1:]...)
			break
		}
	}
	pkg.LogDebug(pkg.ComponentRegistry, "context closed", "context", c.id)
}

// Len returns the number of live contexts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}

// Do runs fn inside the registry critical section. It is the entry point
// for callers that need to read or mutate device state outside of an
// enumerator or listener, such as marking a device initialized after
// handing it to the application.
//
// fn must not call back into registry methods that acquire the lock.
func (r *Registry) Do(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}
