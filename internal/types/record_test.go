package types

import (
	"slices"
	"testing"
)

func TestRecord_AppendAndGet(t *testing.T) {
	rec := NewRecord()
	rec.Append("TEL", Scalar("111"))
	rec.Append("tel", Scalar("222"))

	values := rec.Get("Tel")
	if len(values) != 2 {
		t.Fatalf("len = %d, want 2", len(values))
	}
	if values[0] != Scalar("111") || values[1] != Scalar("222") {
		t.Errorf("values = %v, want source order preserved", values)
	}

	if got := rec.Get("missing"); len(got) != 0 {
		t.Errorf("missing key = %v, want empty", got)
	}
}

func TestRecord_GetReturnsCopy(t *testing.T) {
	rec := NewRecord()
	rec.Append("tel", Scalar("111"))

	values := rec.Get("tel")
	values[0] = Scalar("tampered")

	if rec.Get("tel")[0] != Scalar("111") {
		t.Error("mutating the returned slice must not affect the record")
	}
}

func TestRecord_InsertionOrder(t *testing.T) {
	rec := NewRecord()
	for _, key := range []string{"fn", "n", "tel", "email", "adr"} {
		rec.Append(key, Scalar("x"))
	}

	var keys []string
	for key := range rec.All() {
		keys = append(keys, key)
	}
	if !slices.Equal(keys, []string{"fn", "n", "tel", "email", "adr"}) {
		t.Errorf("key order = %v", keys)
	}
}

func TestRecord_AppendNested(t *testing.T) {
	rec := NewRecord()
	first := NewRecord()
	second := NewRecord()

	rec.AppendNested("agent", first)
	rec.AppendNested("agent", second)

	values := rec.Get("agent")
	if len(values) != 1 {
		t.Fatalf("agent entries = %d, want a single Nested value", len(values))
	}
	nested, ok := values[0].(Nested)
	if !ok || len(nested) != 2 {
		t.Fatalf("nested = %v", values[0])
	}
	if nested[0] != first || nested[1] != second {
		t.Error("sub-record order not preserved")
	}
}

func TestRecord_AddScalar(t *testing.T) {
	rec := NewRecord()
	if got := rec.Add("FN", "Jane Doe"); got != rec {
		t.Error("Add must return the record for chaining")
	}
	if rec.Get("fn")[0] != Scalar("Jane Doe") {
		t.Errorf("fn = %v", rec.Get("fn"))
	}
}

func TestRecord_AddStructuredParts(t *testing.T) {
	rec := NewRecord()
	rec.Add("n", "Doe", "LastName").
		Add("n", "John", "FirstName")

	values := rec.Get("n")
	if len(values) != 1 {
		t.Fatalf("n entries = %d, want slots filled on one entry", len(values))
	}
	n := values[0].(Structured)
	if last, _ := n.Part("LastName"); last != "Doe" {
		t.Errorf("LastName = %q", last)
	}
	if first, _ := n.Part("FirstName"); first != "John" {
		t.Errorf("FirstName = %q", first)
	}

	// A repeated slot starts a new entry holding only that slot.
	rec.Add("n", "Smith", "LastName")
	values = rec.Get("n")
	if len(values) != 2 {
		t.Fatalf("n entries = %d, want 2 after slot repeat", len(values))
	}
	n2 := values[1].(Structured)
	if last, _ := n2.Part("LastName"); last != "Smith" {
		t.Errorf("second LastName = %q", last)
	}
	if _, present := n2.Part("FirstName"); present {
		t.Error("new entry must hold only the repeated slot")
	}
}

func TestRecord_AddTyped(t *testing.T) {
	rec := NewRecord()
	rec.Add("tel", "555-1212", "work", "voice")

	tel, ok := rec.Get("tel")[0].(Typed)
	if !ok {
		t.Fatalf("tel is %T, want Typed", rec.Get("tel")[0])
	}
	if tel.Value != "555-1212" || !slices.Equal(tel.Types, []string{"work", "voice"}) {
		t.Errorf("tel = %+v", tel)
	}
}

func TestRecord_AddExtrasOnPlainKey(t *testing.T) {
	// Extras on a key with no registry entry are dropped.
	rec := NewRecord()
	rec.Add("note", "hello", "work")

	if got := rec.Get("note")[0]; got != Scalar("hello") {
		t.Errorf("note = %v, want plain scalar", got)
	}
}

func TestRecord_AddStructuredNonPartExtra(t *testing.T) {
	// An extra that is not a registered part name falls through to the
	// typed/scalar handling; n has no type vocabulary, so scalar.
	rec := NewRecord()
	rec.Add("n", "Doe", "Surname")

	if got := rec.Get("n")[0]; got != Scalar("Doe") {
		t.Errorf("n = %v, want scalar fallthrough", got)
	}
}
