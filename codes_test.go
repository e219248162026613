// codes_test.go — boundary code conversion and foreign import.
package xgxdiag

import "testing"

func TestCode_NativeRoundTripIsBitIdentical(t *testing.T) {
	t.Parallel()

	s := NewScope()
	for i := 0; i < 16; i++ {
		id := NewID()
		if got := FromCode(s, id.ToCode()); got != id {
			t.Fatalf("round trip changed the identifier: want=%v got=%v", id, got)
		}
	}
}

func TestCode_ZeroIsSuccessInAnyDomain(t *testing.T) {
	t.Parallel()

	s := NewScope()
	if got := FromCode(s, Code{Value: 0, Domain: nativeDomain}); !got.IsZero() {
		t.Fatalf("native zero must convert to success")
	}
	if got := FromCode(s, Code{Value: 0, Domain: "posix"}); !got.IsZero() {
		t.Fatalf("foreign zero must convert to success")
	}
}

func TestCode_ForeignImportMintsAndRetainsCode(t *testing.T) {
	t.Parallel()

	s := NewScope()
	var sl Slot[Code]
	sl.Activate(s)
	defer sl.Deactivate()

	foreign := Code{Value: 13, Domain: "posix"}
	id := FromCode(s, foreign)

	if !id.Valid() {
		t.Fatalf("foreign import must mint a valid identifier")
	}
	if got := s.Current(); got != id {
		t.Fatalf("foreign import must become the ambient id: want=%v got=%v", id, got)
	}
	kept, ok := Peek[Code](s, id)
	if !ok || kept != foreign {
		t.Fatalf("original code must be reachable as a diagnostic: %+v ok=%v", kept, ok)
	}
}

func TestCode_IsErrorID(t *testing.T) {
	t.Parallel()

	if !NewID().ToCode().IsErrorID() {
		t.Fatalf("a converted native id must report IsErrorID")
	}
	if (Code{Value: 13, Domain: "posix"}).IsErrorID() {
		t.Fatalf("a foreign code must not report IsErrorID")
	}
	if !(Code{Value: 0, Domain: nativeDomain}).IsErrorID() {
		t.Fatalf("the native zero code still belongs to the native scheme")
	}
}

func TestCode_StringRendersDomainAndValue(t *testing.T) {
	t.Parallel()

	c := Code{Value: 13, Domain: "posix"}
	if got := c.String(); got != "posix/13" {
		t.Fatalf("want posix/13, got %q", got)
	}
}
