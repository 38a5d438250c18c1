package opt

import "testing"

func TestSomeHoldsValue(t *testing.T) {
	o := Some(42)
	if !o.Present() {
		t.Fatal("Some must be present")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("Get = (%v, %v), want (42, true)", v, ok)
	}
}

func TestNoneIsAbsent(t *testing.T) {
	o := None[string]()
	if o.Present() {
		t.Fatal("None must not be present")
	}
	v, ok := o.Get()
	if ok || v != "" {
		t.Fatalf("Get = (%q, %v), want zero value and false", v, ok)
	}
}
