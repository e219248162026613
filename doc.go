// doc.go — package documentation for xgx-diag
//
// Package xgxdiag is a slot-based error-diagnostic side channel. A failure is
// signalled with a lightweight opaque identifier (ErrorID); any caller up the
// stack can attach, inspect, or consume richly-typed diagnostic payloads
// associated with that identifier without the failure's origin knowing which
// payload types its callers care about. It is designed to be:
//   - Free on the success path (no allocation, no dynamic dispatch)
//   - Thread-safe by construction (one Scope per execution context)
//   - Policy-free (no logging/HTTP/JSON in core; adapters live in observe/)
//
// # Model
//
// A Scope is the explicit execution-context handle: it owns, per diagnostic
// type, a stack of currently active slots plus the "ambient" identifier of
// the most recent failure on that context. One Scope per goroutine; nothing
// in a Scope is shared or locked. Only the process-wide identifier counter
// is shared, and it is a single atomic integer.
//
// A Slot[E] holds at most one value of type E, tagged by the ErrorID it
// belongs to. Slots are grouped into a Context, which activates and
// deactivates them as a unit on scope entry/exit. When a scope exits because
// of a failure, each slot offers its value to the next-outer slot of the
// same type, but only if that outer slot is still empty. First empty slot
// wins; an occupied outer listener is never overwritten.
//
// # Typical use
//
//	s := xgxdiag.NewScope()
//	ctx := xgxdiag.NewContext(xgxdiag.For[PathInfo](), xgxdiag.For[Attempts]())
//
//	act := xgxdiag.Activate(ctx, s)
//	exit := xgxdiag.ExitNormal
//	defer func() { act.Finish(exit) }()
//
//	if id := doWork(s); !id.IsZero() {
//	    exit = xgxdiag.ExitFailure
//	    if p, ok := xgxdiag.FromContext[PathInfo](ctx, id); ok {
//	        // consume the diagnostic
//	        _ = p
//	    }
//	}
//
// A failure site mints an identifier and attaches payloads in one call:
//
//	return s.NewError(
//	    xgxdiag.Value(PathInfo{Path: name}),
//	    xgxdiag.Deferred(func() Stat { return expensiveStat(name) }),
//	)
//
// The three Item constructors cover the three attachment modes: Value stores
// a payload verbatim, Deferred evaluates a producer lazily (never on the
// success path), and Accumulate mutates the stored payload in place so
// repeated loads compose ("append one more step to the running trail").
//
// # Unexpected diagnostics
//
// A payload that reaches the outermost slot of its type with nobody left to
// consume it, or that is loaded while no slot of its type is active, is
// tallied per Scope (count plus first type seen) instead of silently
// dropped. Detailed capture of such payloads is opt-in via
// WithUnexpectedDetail. The observe/ subpackage forwards the tally to
// structured logs and prometheus.
//
// # Interop
//
// An ErrorID converts to and from a generic (domain, value) Code. Converting
// out and back through the native domain is bit-identical; importing a
// foreign-domain code mints a fresh identifier and attaches the original
// code as an ordinary diagnostic, so foreign errors lose nothing.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - NewID / Scope.NewError / NewErrorAt / Scope.Current
//   - ErrorID.Load with Value / Deferred / Accumulate items
//   - Slot[E]: Activate / Deactivate / Put / Value / Propagate
//   - Context / Activator with an explicit ExitNormal | ExitFailure signal
//   - Capture / CapturedContext for cross-context handoff
//   - WriteReport for a human-readable listing
package xgxdiag
