// scope.go — the explicit execution-context handle.
//
// Design:
//   - One Scope per concurrently running thread of control (goroutine, task).
//   - A Scope owns the per-type stack heads of active slots, the ambient
//     "current" identifier, and the unexpected-diagnostic tally.
//   - Single-owner-at-a-time: no internal locking; handing a Scope between
//     goroutines requires an external happens-before edge.
//
// The handle is explicit and passed to every operation rather than living in
// ambient thread-local state, so per-context isolation is visible in the
// signatures and testable without goroutine pinning.
package xgxdiag

import "reflect"

// Scope is an execution-context handle. All slot and load operations route
// through exactly one Scope; the zero value is not usable, construct with
// NewScope.
type Scope struct {
	// tops maps a diagnostic type to the innermost active *Slot[E] for it.
	tops map[reflect.Type]any

	// current is the most recently minted identifier on this context's call
	// path, readable without threading a handle through every frame.
	current ErrorID

	unexpected unexpectedTally

	// detail / detailLimit control opt-in capture of unexpected payloads.
	detail      bool
	detailLimit int

	onUnexpected func(typeName string, id ErrorID)
	onNewError   func(id ErrorID)
}

// ScopeOption configures a Scope at construction time.
type ScopeOption func(*Scope)

// NewScope creates an execution-context handle with no active slots.
func NewScope(opts ...ScopeOption) *Scope {
	s := &Scope{tops: make(map[reflect.Type]any, 8)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithUnexpectedDetail enables detailed capture of unexpected diagnostics:
// one rendered entry per payload type, de-duplicated, in arrival order.
// Counting (count + first type seen) is always on and needs no option.
func WithUnexpectedDetail() ScopeOption {
	return func(s *Scope) { s.detail = true }
}

// WithUnexpectedDetailLimit bounds the number of detailed entries kept.
// Implies WithUnexpectedDetail. A limit <= 0 keeps all entries.
func WithUnexpectedDetailLimit(n int) ScopeOption {
	return func(s *Scope) {
		s.detail = true
		s.detailLimit = n
	}
}

// WithUnexpectedHook installs a callback invoked once per unexpected
// diagnostic, after the tally is updated. The hook runs on the scope's own
// execution context and must not block.
func WithUnexpectedHook(fn func(typeName string, id ErrorID)) ScopeOption {
	return func(s *Scope) { s.onUnexpected = fn }
}

// WithNewErrorHook installs a callback invoked once per identifier minted
// through this scope (NewError, NewErrorAt, foreign FromCode imports).
func WithNewErrorHook(fn func(id ErrorID)) ScopeOption {
	return func(s *Scope) { s.onNewError = fn }
}

// SetCurrent overwrites this context's ambient identifier. Failure sites use
// it to attach diagnostics to "whatever error is presently propagating"
// without holding an explicit handle.
func (s *Scope) SetCurrent(id ErrorID) { s.current = id }

// Current returns the ambient identifier, possibly zero if nothing is
// propagating on this context.
func (s *Scope) Current() ErrorID { return s.current }

// NewError mints a fresh identifier, makes it current, and applies each item
// in order. The result is always non-zero.
func (s *Scope) NewError(items ...Item) ErrorID {
	id := NewID()
	s.current = id
	if s.onNewError != nil {
		s.onNewError(id)
	}
	return id.Load(s, items...)
}

// Load dispatches items against id on this scope. Chainable; a zero id makes
// the whole call a no-op.
func (s *Scope) Load(id ErrorID, items ...Item) ErrorID {
	return id.Load(s, items...)
}

// topSlot returns the innermost active slot registered for the given type
// key, or nil.
func (s *Scope) topSlot(k reflect.Type) any { return s.tops[k] }

// typeKey resolves the registry key for a diagnostic type.
func typeKey[E any]() reflect.Type { return reflect.TypeOf((*E)(nil)).Elem() }

// diagTypeName is the human-readable name used in tallies and reports.
func diagTypeName[E any]() string { return typeKey[E]().String() }
