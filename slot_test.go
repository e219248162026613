// slot_test.go — slot storage and activation-stack discipline.
package xgxdiag

import "testing"

func TestSlot_ValueMatchesExactIDOnly(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[int]
	sl.Activate(s)
	defer sl.Deactivate()

	a := NewID()
	b := NewID()
	sl.Put(a, 42)

	if p, ok := sl.Value(a); !ok || *p != 42 {
		t.Fatalf("want stored 42 for its own id, got ok=%v", ok)
	}
	if _, ok := sl.Value(b); ok {
		t.Fatalf("value for unrelated id must be absent")
	}
	if _, ok := sl.Value(0); ok {
		t.Fatalf("value for zero id must be absent")
	}
}

func TestSlot_PutOverwritesValueForDifferentID(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[string]
	sl.Activate(s)
	defer sl.Deactivate()

	a := NewID()
	b := NewID()
	sl.Put(a, "first")
	sl.Put(b, "second")

	if _, ok := sl.Value(a); ok {
		t.Fatalf("slot is single-valued; value for the older id must be gone")
	}
	if p, ok := sl.Value(b); !ok || *p != "second" {
		t.Fatalf("most recent write must survive; got ok=%v", ok)
	}
}

func TestSlot_PutReturnsPointerForInPlaceMutation(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[[]string]
	sl.Activate(s)
	defer sl.Deactivate()

	id := NewID()
	p := sl.Put(id, []string{"a"})
	*p = append(*p, "b")

	got, ok := sl.Value(id)
	if !ok || len(*got) != 2 || (*got)[1] != "b" {
		t.Fatalf("in-place mutation not visible through the slot: %v (ok=%v)", got, ok)
	}
}

func TestSlot_ActivationStacksNestAndRestore(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var outer, inner Slot[int]
	id := NewID()

	outer.Activate(s)
	outer.Put(id, 1)

	inner.Activate(s)
	inner.Put(id, 2)

	// Innermost slot answers Peek while active.
	if v, ok := Peek[int](s, id); !ok || v != 2 {
		t.Fatalf("innermost slot must win while active: got %d ok=%v", v, ok)
	}

	inner.Deactivate()
	if v, ok := Peek[int](s, id); !ok || v != 1 {
		t.Fatalf("deactivation must restore the previous top: got %d ok=%v", v, ok)
	}

	outer.Deactivate()
	if _, ok := Peek[int](s, id); ok {
		t.Fatalf("no slot active; Peek must report absent")
	}
}

func TestSlot_DoubleActivatePanics(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[int]
	sl.Activate(s)
	defer sl.Deactivate()

	defer func() {
		if recover() == nil {
			t.Fatalf("double activation must panic")
		}
	}()
	sl.Activate(s)
}

func TestSlot_DeactivateOutOfOrderPanics(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var outer, inner Slot[int]
	outer.Activate(s)
	inner.Activate(s)
	defer func() {
		inner.Deactivate()
		outer.Deactivate()
	}()

	defer func() {
		if recover() == nil {
			t.Fatalf("deactivating a slot that is not the top must panic")
		}
	}()
	outer.Deactivate()
}

func TestSlot_PutRejectsUnmintedID(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[int]
	sl.Activate(s)
	defer sl.Deactivate()

	defer func() {
		if recover() == nil {
			t.Fatalf("Put with an untagged id must panic")
		}
	}()
	sl.Put(ErrorID(2), 1) // tag bits 10, never minted here
}

func TestSlot_PropagateMovesIntoEmptyOuter(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var outer, inner Slot[int]
	outer.Activate(s)
	inner.Activate(s)

	id := NewID()
	inner.Put(id, 7)
	inner.Propagate()
	inner.Deactivate()

	if p, ok := outer.Value(id); !ok || *p != 7 {
		t.Fatalf("value must move into the empty outer slot: ok=%v", ok)
	}
	if _, ok := inner.Value(id); ok {
		t.Fatalf("moved, not copied: inner slot must be empty afterwards")
	}
	outer.Deactivate()
}

func TestSlot_PropagateNeverOverwritesOccupiedOuter(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var outer, inner Slot[int]
	outer.Activate(s)

	prior := NewID()
	outer.Put(prior, 1)

	inner.Activate(s)
	fresh := NewID()
	inner.Put(fresh, 2)
	inner.Propagate()
	inner.Deactivate()

	if p, ok := outer.Value(prior); !ok || *p != 1 {
		t.Fatalf("occupied outer slot must keep its value: ok=%v", ok)
	}
	if got := s.Unexpected(); got.Count != 1 || got.FirstType != "int" {
		t.Fatalf("blocked value must join the unexpected tally: %+v", got)
	}
	outer.Deactivate()
}
