// id.go — identifier allocation and the ErrorID handle.
//
// Identifier scheme (normative):
//   - ErrorID is an opaque uint32 value type; 0 means "no error".
//   - Every minted identifier carries the reserved tag in its low two bits
//     (id&3 == 1); the upper 30 bits are a process-unique sequence.
//   - The allocator is one shared atomic counter advanced by the tag stride
//     (4) per allocation, so every minted value keeps the tag without
//     masking. Wraparound past 2^30 allocations is an accepted limitation.
//
// Sharing model:
//   - The counter is the ONLY process-shared state in this package.
//   - The "current identifier" lives on Scope, one per execution context.
package xgxdiag

import (
	"fmt"
	"sync/atomic"
)

// ErrorID is the opaque handle for a failed operation. The zero value means
// success; every load and slot operation on it is a no-op. Copying is free;
// equality and ordering are defined over the raw value.
type ErrorID uint32

const (
	tagMask   = 3 // low two bits hold the reserved tag
	tagBits   = 1 // reserved tag pattern for xgxdiag identifiers
	tagStride = 4 // counter advance per allocation
)

// idCounter conceptually starts at -3 so the first allocation yields 1.
var idCounter = func() *atomic.Uint32 {
	c := new(atomic.Uint32)
	c.Store(^uint32(2))
	return c
}()

// NewID mints a fresh process-unique identifier carrying the reserved tag.
// Safe under concurrent callers from any number of scopes; this is the only
// cross-context operation in the core.
func NewID() ErrorID {
	return ErrorID(idCounter.Add(tagStride))
}

// IsZero reports success (no error).
func (id ErrorID) IsZero() bool { return id == 0 }

// Valid reports whether id is a non-zero identifier with the reserved tag.
func (id ErrorID) Valid() bool { return id != 0 && id&tagMask == tagBits }

// Sequence returns the unique sequence portion of the identifier.
func (id ErrorID) Sequence() uint32 { return uint32(id) >> 2 }

// String renders the raw value; diagnostics rendering lives in format.go.
func (id ErrorID) String() string { return fmt.Sprintf("xgxdiag.ErrorID(%d)", uint32(id)) }

// normalizeID restores the reserved tag on a raw value re-admitted through a
// native Code. Round trips keep the value bit-identical.
func normalizeID(raw uint32) ErrorID {
	if raw == 0 {
		return 0
	}
	return ErrorID(raw&^tagMask | tagBits)
}
