// captured.go — transporting an error's diagnostics across execution contexts.
//
// Capture snapshots the diagnostics a context holds for one identifier into
// a detached, shareable object. The snapshot can later be replayed into the
// active slots of a DIFFERENT scope (e.g., handed from a worker back to a
// coordinator). Replay mutates only the target scope, on the target's own
// execution context; the captured object itself is immutable after capture
// except for its own activate/deactivate bookkeeping.
//
// Ownership is shared in the garbage-collected sense: any number of holders
// may reference one CapturedContext; there is no explicit release.
package xgxdiag

import "io"

// CapturedContext is the transport contract for an error captured on one
// execution context and consumed on another.
type CapturedContext interface {
	// ReplayIntoCurrent re-loads the retained diagnostics into s's active
	// slots under the captured identifier, makes that identifier current on
	// s, and returns it.
	ReplayIntoCurrent(s *Scope) ErrorID

	// Activate / Deactivate / IsActive expose the captured slots as a
	// listening context of their own, e.g. to inspect retained values with
	// the usual slot queries before deciding where to replay.
	Activate(s *Scope)
	Deactivate(exit Exit)
	IsActive() bool

	// WriteReport renders the retained diagnostics.
	WriteReport(w io.Writer) error
}

// capturedContext retains snapshot slots for exactly one identifier.
type capturedContext struct {
	ctx *Context
	id  ErrorID
}

var _ CapturedContext = (*capturedContext)(nil)

// Capture snapshots the values ctx holds for id. The source context may be
// active or already deactivated; it is only read. A zero id captures an
// empty context that replays to 0.
func Capture(ctx *Context, id ErrorID) CapturedContext {
	snap := &Context{slots: make([]contextSlot, 0, len(ctx.slots))}
	for _, sl := range ctx.slots {
		snap.slots = append(snap.slots, sl.snapshotFor(id))
	}
	return &capturedContext{ctx: snap, id: id}
}

func (c *capturedContext) ReplayIntoCurrent(s *Scope) ErrorID {
	if c.id.IsZero() {
		return 0
	}
	for _, sl := range c.ctx.slots {
		sl.replayInto(s, c.id)
	}
	s.SetCurrent(c.id)
	return c.id
}

func (c *capturedContext) Activate(s *Scope)    { c.ctx.Activate(s) }
func (c *capturedContext) Deactivate(exit Exit) { c.ctx.Deactivate(exit) }
func (c *capturedContext) IsActive() bool       { return c.ctx.IsActive() }

func (c *capturedContext) WriteReport(w io.Writer) error {
	return writeContextReport(w, c.ctx, c.id)
}
