// format.go — human-readable diagnostic reports.
//
// Behavior:
//
//	<type>: <value rendered with %+v, or String() when available>
//	...
//	unexpected: <tally summary>        (only when the tally is non-empty)
//
// Output is plain text onto an io.Writer; the observe/ subpackage adapts
// reports to structured logs. Order is deterministic: types sort by name,
// and within a type the outermost listener prints first.
package xgxdiag

import (
	"fmt"
	"io"
	"reflect"
	"sort"
)

// WriteReport writes one line per diagnostic currently reachable for id
// across s's active slots, then the unexpected-diagnostic summary if the
// scope has tallied any.
func WriteReport(w io.Writer, s *Scope, id ErrorID) error {
	keys := make([]reflect.Type, 0, len(s.tops))
	for k := range s.tops {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	wrote := false
	for _, k := range keys {
		// Walk the chain innermost→outermost, then emit in reverse so the
		// outermost listener prints first.
		chain := chainOf(s.tops[k])
		for i := len(chain) - 1; i >= 0; i-- {
			matched, err := chain[i].render(w, id)
			if err != nil {
				return err
			}
			if matched {
				wrote = true
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
		}
	}

	if r := s.Unexpected(); r.Count > 0 {
		if _, err := fmt.Fprintf(w, "unexpected: %s\n", r); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		_, err := fmt.Fprintf(w, "no diagnostics for %s\n", id)
		return err
	}
	return nil
}

// chained is implemented by *Slot[E] to expose the activation chain without
// the type parameter.
type chained interface {
	prevEntry() contextSlot
}

func (sl *Slot[E]) prevEntry() contextSlot {
	if sl.prev == nil {
		return nil
	}
	return sl.prev
}

// chainOf flattens top→prev→... into a slice of renderable entries.
func chainOf(top any) []contextSlot {
	var out []contextSlot
	cur, ok := top.(contextSlot)
	for ok && cur != nil {
		out = append(out, cur)
		ch, isChained := cur.(chained)
		if !isChained {
			break
		}
		cur = ch.prevEntry()
	}
	return out
}

// writeContextReport renders the slots a context (or captured snapshot)
// holds for id, in registration order.
func writeContextReport(w io.Writer, c *Context, id ErrorID) error {
	wrote := false
	for _, sl := range c.slots {
		matched, err := sl.render(w, id)
		if err != nil {
			return err
		}
		if matched {
			wrote = true
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if !wrote {
		_, err := fmt.Fprintf(w, "no diagnostics for %s\n", id)
		return err
	}
	return nil
}

// writeValue renders a single payload. fmt.Stringer wins over %+v.
func writeValue(w io.Writer, v any) error {
	if str, ok := v.(fmt.Stringer); ok {
		_, err := io.WriteString(w, str.String())
		return err
	}
	_, err := fmt.Fprintf(w, "%+v", v)
	return err
}
