package caltime

import (
	"testing"

	inf "gopkg.in/inf.v0"
)

func TestNewFraction(t *testing.T) {
	for idx, tc := range []struct {
		input any
		want  string
		fail  bool
	}{
		{input: "0.125", want: "0.125"},
		{input: " 0.5 ", want: "0.5"},
		{input: "0", want: "0"},
		{input: "0.000000000000000000001", want: "0.000000000000000000001"},
		{input: inf.NewDec(75, 2), want: "0.75"},
		{input: Fraction{}, want: "0"},
		{input: "1", fail: true},
		{input: "1.5", fail: true},
		{input: "-0.1", fail: true},
		{input: "abc", fail: true},
		{input: (*inf.Dec)(nil), fail: true},
		{input: 0.5, fail: true},
	} {
		f, err := NewFraction(tc.input)
		if tc.fail {
			if !IsInvalid(err) {
				t.Errorf("%s[%d] failed: expected invalid error for %v, got %v",
					t.Name(), idx, tc.input, err)
			}
			continue
		} else if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}

		if got := f.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}

func TestFraction_precision(t *testing.T) {
	f, _ := FractionOf(250, 3)
	if ms, err := f.Milliseconds(); err != nil || ms != 250 {
		t.Errorf("%s failed: want 250ms, got %d (%v)", t.Name(), ms, err)
	}

	f = mustFraction(t, "0.5")
	if ns, err := f.Nanoseconds(); err != nil || ns != 500000000 {
		t.Errorf("%s failed: want 500000000ns, got %d (%v)", t.Name(), ns, err)
	}

	f = mustFraction(t, "0.123456789")
	if _, err := f.Milliseconds(); !IsInvalid(err) {
		t.Errorf("%s failed: expected sub-millisecond rejection, got %v", t.Name(), err)
	}
	if ns, err := f.Nanoseconds(); err != nil || ns != 123456789 {
		t.Errorf("%s failed: want 123456789ns, got %d (%v)", t.Name(), ns, err)
	}

	f = mustFraction(t, "0.1234567891")
	if _, err := f.Nanoseconds(); !IsInvalid(err) {
		t.Errorf("%s failed: expected sub-nanosecond rejection, got %v", t.Name(), err)
	}

	var zero Fraction
	if ms, err := zero.Milliseconds(); err != nil || ms != 0 {
		t.Errorf("%s failed: zero fraction want 0ms, got %d (%v)", t.Name(), ms, err)
	}
}

func TestFraction_equality(t *testing.T) {
	a := mustFraction(t, "0.5")
	b := mustFraction(t, "0.500")
	if !a.Equal(b) || a.Cmp(b) != 0 {
		t.Errorf("%s failed: %s and %s should be equal", t.Name(), a, b)
	}

	if c := mustFraction(t, "0.25"); c.Cmp(a) != -1 || a.Cmp(c) != 1 {
		t.Errorf("%s failed: ordering of %s and %s", t.Name(), c, a)
	}

	zero, _ := FractionOf(0, 9)
	if !zero.IsZero() || !zero.Equal(Fraction{}) {
		t.Errorf("%s failed: FractionOf(0, 9) should be the zero fraction", t.Name())
	}

	if _, err := FractionOf(1000, 3); !IsInvalid(err) {
		t.Errorf("%s failed: FractionOf(1000, 3) should be rejected, got %v", t.Name(), err)
	}
}

func TestFraction_immutable(t *testing.T) {
	src := inf.NewDec(5, 1)
	f, _ := NewFraction(src)
	src.SetUnscaled(9)

	d := f.Dec()
	d.SetUnscaled(7)

	if got := f.String(); got != "0.5" {
		t.Errorf("%s failed: Fraction altered through a shared decimal: %s", t.Name(), got)
	}
}
