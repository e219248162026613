// source.go — failure-site location as an ordinary diagnostic.
//
// SourceLocation is a single capture site, not a stack trace: minting an
// error with NewErrorAt records where the failure originated and nothing
// else. Frames are resolved via runtime.CallersFrames so inlined call sites
// report the correct file and line.
package xgxdiag

import (
	"fmt"
	"runtime"
)

// SourceLocation identifies the call site that minted an error.
type SourceLocation struct {
	File     string
	Line     int
	Function string
}

// String renders "file:line in function fn".
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d in function %s", l.File, l.Line, l.Function)
}

// CaptureSource resolves the call site 'skip' frames above the caller.
// skip=0 is the caller of CaptureSource itself.
func CaptureSource(skip int) SourceLocation {
	// +2: one for runtime.Callers, one for CaptureSource.
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return SourceLocation{}
	}
	fr, _ := runtime.CallersFrames(pc).Next()
	return SourceLocation{File: fr.File, Line: fr.Line, Function: fr.Function}
}

// NewErrorAt is NewError plus a SourceLocation payload for the caller's
// call site, loaded before the supplied items.
func NewErrorAt(s *Scope, items ...Item) ErrorID {
	loc := CaptureSource(1)
	all := make([]Item, 0, len(items)+1)
	all = append(all, Value(loc))
	all = append(all, items...)
	return s.NewError(all...)
}
