// unexpected.go — tallying of diagnostics nobody was listening for.
//
// A diagnostic is unexpected when it is loaded while no slot of its type is
// active, or when it reaches the outermost slot of its type during failure
// propagation with nothing left to move into. Such payloads are counted per
// Scope (count + first type seen) rather than silently discarded; detailed
// capture of the payloads themselves is opt-in (WithUnexpectedDetail) and
// de-duplicated by type, so a hot failure path cannot grow the record
// unboundedly.
package xgxdiag

import "fmt"

// UnexpectedEntry is one captured unexpected payload (detail mode only).
type UnexpectedEntry struct {
	Type     string  // diagnostic type name
	ID       ErrorID // identifier the payload was tagged with
	Rendered string  // %+v rendering at capture time
}

// UnexpectedReport is a copy of a scope's tally at the time of the call.
type UnexpectedReport struct {
	Count     int
	FirstType string
	Entries   []UnexpectedEntry // nil unless detail capture is enabled
}

// String mirrors the operator-facing summary line of the tally.
func (r UnexpectedReport) String() string {
	switch {
	case r.Count == 0:
		return "no unexpected diagnostics"
	case r.Count == 1:
		return fmt.Sprintf("detected 1 attempt to communicate an unexpected diagnostic of type %s", r.FirstType)
	default:
		return fmt.Sprintf("detected %d attempts to communicate unexpected diagnostics, the first one of type %s", r.Count, r.FirstType)
	}
}

// unexpectedTally is the per-Scope mutable record behind UnexpectedReport.
type unexpectedTally struct {
	count     int
	firstType string
	entries   []UnexpectedEntry
	seen      map[string]struct{} // detail de-duplication by type
}

// Unexpected returns a copy of this scope's tally.
func (s *Scope) Unexpected() UnexpectedReport {
	r := UnexpectedReport{Count: s.unexpected.count, FirstType: s.unexpected.firstType}
	if len(s.unexpected.entries) > 0 {
		r.Entries = make([]UnexpectedEntry, len(s.unexpected.entries))
		copy(r.Entries, s.unexpected.entries)
	}
	return r
}

// ResetUnexpected clears the tally, e.g. between units of work that reuse
// one long-lived scope.
func (s *Scope) ResetUnexpected() {
	s.unexpected = unexpectedTally{}
}

// noteUnexpectedValue records one unexpected payload. Rendering only happens
// in detail mode for the first payload of each type; the common path costs a
// counter increment.
func noteUnexpectedValue[E any](s *Scope, id ErrorID, v E) {
	name := diagTypeName[E]()
	t := &s.unexpected
	t.count++
	if t.firstType == "" {
		t.firstType = name
	}
	if s.onUnexpected != nil {
		s.onUnexpected(name, id)
	}
	if !s.detail {
		return
	}
	if s.detailLimit > 0 && len(t.entries) >= s.detailLimit {
		return
	}
	if t.seen == nil {
		t.seen = make(map[string]struct{}, 4)
	}
	if _, dup := t.seen[name]; dup {
		return
	}
	t.seen[name] = struct{}{}
	t.entries = append(t.entries, UnexpectedEntry{
		Type:     name,
		ID:       id,
		Rendered: fmt.Sprintf("%+v", v),
	})
}
