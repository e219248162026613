// context.go — slot groups and scoped activation.
//
// A Context owns one Slot per diagnostic type a frame wants to intercept and
// activates/deactivates them as a unit. State machine per instance:
//
//	Inactive → Active    on Activate (no-op if already active)
//	Active   → Inactive  on Deactivate (reverse activation order)
//
// Deactivation takes an explicit two-valued exit signal stated by the owning
// frame, so any control-flow mechanism (early return of a failure id, panic
// recovery, cooperative cancellation) can drive propagation. On ExitFailure
// each slot propagates, in reverse order, before it is unlinked, so the
// move-to-outer step still sees the chain captured at activation.
package xgxdiag

import "io"

// Exit classifies how a frame left its scope.
type Exit int

const (
	// ExitNormal: the frame completed; stored diagnostics stay put.
	ExitNormal Exit = iota
	// ExitFailure: the frame is unwinding; diagnostics climb outward.
	ExitFailure
)

// contextSlot is the type-erased face of *Slot[E] used by Context, Capture
// and the report writer.
type contextSlot interface {
	Activate(*Scope)
	Deactivate()
	Propagate()

	// snapshotFor returns a fresh inactive slot holding a copy of the value
	// stored for id, or an empty one.
	snapshotFor(id ErrorID) contextSlot
	// replayInto re-loads the stored value into target's active slots.
	replayInto(target *Scope, id ErrorID)
	// render writes "type: value" for id; reports whether anything matched.
	render(w io.Writer, id ErrorID) (bool, error)
	diagType() string
}

func (sl *Slot[E]) snapshotFor(id ErrorID) contextSlot {
	cp := new(Slot[E])
	if p, ok := sl.Value(id); ok {
		cp.id = id
		cp.val = *p
		cp.full = true
	}
	return cp
}

func (sl *Slot[E]) replayInto(target *Scope, id ErrorID) {
	if sl.full && sl.id == id {
		loadSlot(target, id, sl.val)
	}
}

func (sl *Slot[E]) render(w io.Writer, id ErrorID) (bool, error) {
	p, ok := sl.Value(id)
	if !ok {
		return false, nil
	}
	_, err := io.WriteString(w, diagTypeName[E]()+": ")
	if err == nil {
		err = writeValue(w, *p)
	}
	return true, err
}

func (sl *Slot[E]) diagType() string { return diagTypeName[E]() }

// SlotType registers one diagnostic type with NewContext.
type SlotType struct {
	make func() contextSlot
}

// For declares that a context should intercept diagnostics of type E.
func For[E any]() SlotType {
	return SlotType{make: func() contextSlot { return new(Slot[E]) }}
}

// Context is an ownership group of slots, one per registered type.
// A Context is active for at most one nested frame at a time per scope.
type Context struct {
	slots  []contextSlot
	scope  *Scope // set while active
	active bool
}

// NewContext builds an inactive context with one slot per registered type.
// Registering the same type twice keeps two slots; the later one activates
// closer to the top and wins loads, matching nested single-type listeners.
func NewContext(types ...SlotType) *Context {
	c := &Context{slots: make([]contextSlot, 0, len(types))}
	for _, t := range types {
		c.slots = append(c.slots, t.make())
	}
	return c
}

// Activate links every contained slot into s, in registration order.
// Re-entrant activation of an already active context is a no-op, so
// recursive frames degrade gracefully instead of corrupting the stacks.
func (c *Context) Activate(s *Scope) {
	if c.active {
		return
	}
	for _, sl := range c.slots {
		sl.Activate(s)
	}
	c.scope = s
	c.active = true
}

// Deactivate unlinks every contained slot in reverse registration order.
// On ExitFailure each slot propagates before it is unlinked. Deactivating an
// inactive context panics: the Activator guarantees pairing, so reaching
// this state means the scoped-acquisition contract was broken by hand.
func (c *Context) Deactivate(exit Exit) {
	if !c.active {
		panic("xgxdiag: Deactivate on an inactive context")
	}
	for i := len(c.slots) - 1; i >= 0; i-- {
		if exit == ExitFailure {
			c.slots[i].Propagate()
		}
		c.slots[i].Deactivate()
	}
	c.active = false
	c.scope = nil
}

// IsActive reports whether the context is currently activated on some scope.
func (c *Context) IsActive() bool { return c.active }

// FromContext reads the value of type E that this context's own slot holds
// for id. Unlike Peek it addresses the context's slot directly, so it works
// for the consumer that owns the listening frame even after inner frames
// have come and gone.
func FromContext[E any](c *Context, id ErrorID) (E, bool) {
	var zero E
	for _, entry := range c.slots {
		if sl, ok := entry.(*Slot[E]); ok {
			if p, held := sl.Value(id); held {
				return *p, true
			}
		}
	}
	return zero, false
}

// Activator pairs one Activate with exactly one Finish across every exit
// path of a frame. If the context was already active when the activator was
// created, Finish is a no-op and the outer owner keeps control.
type Activator struct {
	ctx   *Context
	owned bool
	done  bool
}

// Activate enters ctx on s and returns the activator guarding the frame.
//
//	act := xgxdiag.Activate(ctx, s)
//	exit := xgxdiag.ExitNormal
//	defer func() { act.Finish(exit) }()
func Activate(ctx *Context, s *Scope) *Activator {
	a := &Activator{ctx: ctx}
	if !ctx.IsActive() {
		ctx.Activate(s)
		a.owned = true
	}
	return a
}

// Finish deactivates the guarded context with the given exit signal.
// Idempotent; only the activator that actually activated the context
// deactivates it.
func (a *Activator) Finish(exit Exit) {
	if a.done {
		return
	}
	a.done = true
	if a.owned && a.ctx.IsActive() {
		a.ctx.Deactivate(exit)
	}
}
