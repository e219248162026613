// slot.go — per-type, per-frame diagnostic storage.
//
// Protocol (normative):
//   - A Slot[E] holds at most one value of type E, tagged by the ErrorID it
//     belongs to. "Empty" is distinct from "holds a value for some other id".
//   - Active slots of the same type form a per-Scope stack: Activate links a
//     slot as the new top and remembers the previous top; Deactivate restores
//     it. Activate/Deactivate misuse is a programming defect and panics.
//   - Propagate runs when the owning frame exits on failure: the stored value
//     moves to the previous slot only if that slot is still empty (first
//     empty outer slot wins). With no previous slot, a leftover value is
//     recorded in the scope's unexpected tally instead of being dropped.
//
// All operations assume single-threaded access to the owning Scope.
package xgxdiag

// Slot is the storage cell for one diagnostic type within one logical frame.
// The zero value is an inactive, empty slot.
type Slot[E any] struct {
	scope *Scope   // owning scope while active
	prev  *Slot[E] // active top at activation time; nil if outermost
	live  bool     // linked into the scope's active stack

	id   ErrorID // identifier the stored value belongs to
	val  E
	full bool
}

// Activate links the slot as the innermost active slot of type E on s.
// The slot must be inactive; double activation panics.
func (sl *Slot[E]) Activate(s *Scope) {
	if sl.live {
		panic("xgxdiag: Activate on an already active slot")
	}
	k := typeKey[E]()
	sl.prev, _ = s.tops[k].(*Slot[E])
	s.tops[k] = sl
	sl.scope = s
	sl.live = true
}

// Deactivate unlinks the slot, restoring the previous top. The slot must be
// the current top of its type's stack; out-of-order deactivation panics.
// Must run exactly once per Activate, on every exit path.
func (sl *Slot[E]) Deactivate() {
	k := typeKey[E]()
	if !sl.live || sl.scope.tops[k] != any(sl) {
		panic("xgxdiag: Deactivate on a slot that is not the active top")
	}
	if sl.prev == nil {
		delete(sl.scope.tops, k)
	} else {
		sl.scope.tops[k] = sl.prev
	}
	sl.live = false
}

// Put stores v tagged with id, overwriting a value held for a different
// identifier (a slot is single-valued; the most recent write survives).
// It returns a pointer to the stored value for in-place mutation.
// id must be a minted identifier; anything else is a defect and panics.
func (sl *Slot[E]) Put(id ErrorID, v E) *E {
	if !id.Valid() {
		panic("xgxdiag: Put with an identifier that was not minted here")
	}
	sl.id = id
	sl.val = v
	sl.full = true
	return &sl.val
}

// Value returns the stored value only if it is tagged with exactly id.
// Diagnostics never leak across unrelated errors sharing a slot instance.
func (sl *Slot[E]) Value(id ErrorID) (*E, bool) {
	if sl.full && sl.id == id {
		return &sl.val, true
	}
	return nil, false
}

// Propagate offers the stored value outward. Call only while the frame is
// exiting on failure, before Deactivate unlinks the slot chain for good
// (prev is captured at activation, so Propagate still works immediately
// after Deactivate).
//
// The move targets the next outer slot only if it is still empty: an outer
// listener that already holds a value for an unrelated error is never
// overwritten. A value that cannot move, whether blocked by an occupied outer
// slot or already outermost, joins the scope's unexpected tally.
func (sl *Slot[E]) Propagate() {
	if !sl.full {
		return
	}
	if sl.prev != nil && !sl.prev.full {
		sl.prev.id = sl.id
		sl.prev.val = sl.val
		sl.prev.full = true
		sl.clear() // moved, not copied
		return
	}
	noteUnexpectedValue(sl.scope, sl.id, sl.val)
	sl.clear()
}

// clear resets the storage to empty without touching the activation links.
func (sl *Slot[E]) clear() {
	var zero E
	sl.id = 0
	sl.val = zero
	sl.full = false
}

// Peek returns the diagnostic of type E stored for id in the scope's
// innermost active slot for that type. Absent when no slot of the type is
// active or the active slot holds a value for a different identifier.
func Peek[E any](s *Scope, id ErrorID) (E, bool) {
	var zero E
	if sl, ok := s.topSlot(typeKey[E]()).(*Slot[E]); ok && sl != nil {
		if p, ok2 := sl.Value(id); ok2 {
			return *p, true
		}
	}
	return zero, false
}
