package apm

import "testing"

func TestKeySetEqual(t *testing.T) {
	cases := []struct {
		a, b KeySet
		want bool
	}{
		{nil, nil, true},
		{nil, NewKeySet(), true},
		{NewKeySet("A", "B"), NewKeySet("B", "A"), true},
		{NewKeySet("A"), NewKeySet("A", "B"), false},
		{NewKeySet("A", "C"), NewKeySet("A", "B"), false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%s.Equal(%s) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := c.b.Equal(c.a); got != c.want {
			t.Errorf("%s.Equal(%s) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestKeySetCloneIsIndependent(t *testing.T) {
	ks := NewKeySet("A")
	c := ks.Clone()
	c["B"] = struct{}{}
	if ks.Contains("B") {
		t.Fatalf("clone shares storage with original")
	}
	if got := c.String(); got != "{A,B}" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestButtons(t *testing.T) {
	var bs Buttons
	bs = bs.With(ButtonLeft).With(ButtonX2)
	if !bs.Has(ButtonLeft) || !bs.Has(ButtonX2) || bs.Has(ButtonRight) {
		t.Fatalf("unexpected set %s", bs)
	}
	if bs.Len() != 2 {
		t.Fatalf("expected 2 buttons, got %d", bs.Len())
	}
	if got := bs.String(); got != "{Left,X2}" {
		t.Fatalf("unexpected string %q", got)
	}
	if bs = bs.Without(ButtonLeft); bs != Buttons(ButtonX2) {
		t.Fatalf("unexpected set after release %s", bs)
	}
}
