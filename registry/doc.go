// Package registry implements the process-wide context registry and the
// discovery reconciliation that turns device re-enumeration into hotplug
// notifications.
//
// A [Context] is one independent library session with its own ordered
// device list and hotplug listeners; several contexts may be live in the
// same process. The [Registry] guards all contexts behind a single mutex:
// every device-list mutation and every cross-context iteration happens
// inside that critical section, which gives a total order over refresh
// passes: a startup scan and a hotplug-triggered refresh can never
// interleave their mutations.
//
// # Reconciliation
//
// A refresh pass marks every device in a context NoLongerDiscovered,
// invokes the context's [Enumerator], and diffs the result: devices the
// enumerator re-marked StillPresent are unchanged, devices it introduced
// as NewlyDiscovered raise arrival notifications, and devices left
// NoLongerDiscovered are confirmed absent and removed. Removals are
// always delivered before arrivals within a pass.
//
// The enumerator itself is an external collaborator: it performs the
// platform enumeration syscalls and reports each physically present
// device through [Context.Discovered].
package registry
