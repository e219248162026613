// codes.go — interop with a generic (domain, value) error-code pair.
//
// Contract:
//   - An ErrorID converted out through ToCode and back through FromCode with
//     the native domain returns bit-identical to the original.
//   - A foreign-domain code converts by minting a NEW identifier and loading
//     the foreign Code itself as an ordinary diagnostic, reachable through
//     the normal slot mechanism. Foreign errors become first-class without
//     losing their original information.
//
// Conventions (documented, not enforced here):
//   - Domains are lowercase snake_case ASCII.
//   - The native domain is private; foreign producers pick their own.
package xgxdiag

import "fmt"

// Domain distinguishes identifier schemes sharing the Code representation.
type Domain string

// nativeDomain marks codes whose Value is a minted ErrorID.
const nativeDomain Domain = "xgxdiag"

// Code pairs a small integer with a domain marker. It is the boundary
// representation for callers that cannot carry an ErrorID natively.
type Code struct {
	Value  uint32
	Domain Domain
}

// String renders "domain/value" for logs and reports.
func (c Code) String() string { return fmt.Sprintf("%s/%d", c.Domain, c.Value) }

// IsErrorID reports whether c carries a native identifier (or native zero).
func (c Code) IsErrorID() bool {
	return c.Domain == nativeDomain && (c.Value == 0 || c.Value&tagMask == tagBits)
}

// ToCode converts the identifier to its boundary representation.
func (id ErrorID) ToCode() Code {
	return Code{Value: uint32(id), Domain: nativeDomain}
}

// FromCode admits a boundary code on s. Native codes round-trip to the
// identical identifier; foreign codes mint a fresh identifier carrying the
// original code as a diagnostic; a zero value is success in any domain.
func FromCode(s *Scope, c Code) ErrorID {
	if c.Value == 0 {
		return 0
	}
	if c.Domain == nativeDomain {
		return normalizeID(c.Value)
	}
	return s.NewError(Value(c))
}
