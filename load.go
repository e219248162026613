// load.go — uniform dispatch of diagnostic payloads.
//
// Each attachment mode is a named constructor producing a tagged Item,
// resolved at the call site:
//   - Value(v)        → store v verbatim
//   - Deferred(f)     → invoke f once, lazily, store the result
//   - Accumulate(f)   → apply f in place to the stored value for the id,
//     default-constructing one first if the slot holds nothing for it
//
// Items in one Load call are applied in order and independently; there is no
// atomicity across the batch. Annotation cannot fail the already-failed
// operation, so a partially annotated error is acceptable.
package xgxdiag

// Item is one diagnostic payload in a Load batch.
type Item interface {
	apply(s *Scope, id ErrorID)
}

type valueItem[E any] struct{ v E }

func (it valueItem[E]) apply(s *Scope, id ErrorID) { loadSlot(s, id, it.v) }

// Value wraps a concrete diagnostic payload.
func Value[E any](v E) Item { return valueItem[E]{v: v} }

type deferredItem[E any] struct{ f func() E }

func (it deferredItem[E]) apply(s *Scope, id ErrorID) { loadSlot(s, id, it.f()) }

// Deferred wraps a producer evaluated only when dispatched against a
// non-zero identifier. The success path never runs it.
func Deferred[E any](f func() E) Item { return deferredItem[E]{f: f} }

type accumItem[E any] struct{ f func(*E) }

func (it accumItem[E]) apply(s *Scope, id ErrorID) { accumulateSlot(s, id, it.f) }

// Accumulate wraps an in-place mutator of the stored payload, enabling
// "add one more entry to the running list" semantics without a read-then-
// write round trip.
func Accumulate[E any](f func(*E)) Item { return accumItem[E]{f: f} }

// Load dispatches each item against id on s, in order. Chainable. A zero id
// makes the whole call a no-op: success carries no diagnostics.
func (id ErrorID) Load(s *Scope, items ...Item) ErrorID {
	if !id.Valid() {
		return id
	}
	for _, it := range items {
		it.apply(s, id)
	}
	return id
}

// loadSlot stores v in the innermost active slot for E. With no active
// listener the payload is recorded in the scope's unexpected tally.
func loadSlot[E any](s *Scope, id ErrorID, v E) {
	if sl, ok := s.topSlot(typeKey[E]()).(*Slot[E]); ok && sl != nil {
		sl.Put(id, v)
		return
	}
	noteUnexpectedValue(s, id, v)
}

// accumulateSlot applies f to the slot's value for id, default-constructing
// one first if the slot holds nothing for that identifier. With no active
// listener the accumulator is not invoked; there is nothing to accumulate
// into and producing a throwaway value could run arbitrary user code.
func accumulateSlot[E any](s *Scope, id ErrorID, f func(*E)) {
	sl, ok := s.topSlot(typeKey[E]()).(*Slot[E])
	if !ok || sl == nil {
		return
	}
	if p, held := sl.Value(id); held {
		f(p)
		return
	}
	var e E
	f(sl.Put(id, e))
}
