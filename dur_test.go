package caltime

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ExampleNewDuration() {
	d, _ := NewDuration("-0.25")
	fmt.Println(d.Seconds(), d.Fraction(), d)
	// Output: -1 0.75 -0.25s
}

func TestNewDuration(t *testing.T) {
	for idx, tc := range []struct {
		input any
		secs  int64
		frac  string
	}{
		{input: "90", secs: 90},
		{input: "-0.25", secs: -1, frac: "0.75"},
		{input: "1.000", secs: 1},
		{input: "-3", secs: -3},
		{input: intOf(-86400), secs: -86400},
		{input: 1500 * time.Millisecond, secs: 1, frac: "0.5"},
		{input: -1500 * time.Millisecond, secs: -2, frac: "0.5"},
		{input: -time.Nanosecond, secs: -1, frac: "0.999999999"},
		{input: Minutes(-90), secs: -5400},
	} {
		d, err := NewDuration(tc.input)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}

		want := Duration{secs: intOf(tc.secs), frac: mustFraction(t, tc.frac)}
		if diff := cmp.Diff(want, d, cmpOpts); diff != "" {
			t.Errorf("%s[%d] failed: mismatch (-want +got):\n%s", t.Name(), idx, diff)
		}
		if d.Fraction().Cmp(Fraction{}) < 0 {
			t.Errorf("%s[%d] failed: negative fraction %s", t.Name(), idx, d.Fraction())
		}
	}

	for _, bogus := range []any{"x", 3.5, nil} {
		if _, err := NewDuration(bogus); !IsInvalid(err) {
			t.Errorf("%s failed: expected invalid error for %v, got %v", t.Name(), bogus, err)
		}
	}
}

func TestDuration_arithmetic(t *testing.T) {
	a, _ := NewDuration("1.5")
	b, _ := NewDuration("0.75")

	for idx, tc := range []struct {
		got  Duration
		want string
	}{
		{a.Add(b), "2.25"},
		{a.Sub(b), "0.75"},
		{b.Sub(a), "-0.75"},
		{a.Neg(), "-1.5"},
		{a.Add(a.Neg()), "0"},
		{a.Neg().Neg(), "1.5"},
		{Hours(-2).Add(Minutes(30)), "-5400"},
		{Seconds(5).Neg(), "-5"},
	} {
		want, _ := NewDuration(tc.want)
		if diff := cmp.Diff(want, tc.got, cmpOpts); diff != "" {
			t.Errorf("%s[%d] failed: mismatch (-want +got):\n%s", t.Name(), idx, diff)
		}
	}

	if z := a.Add(a.Neg()); z.Sign() != 0 || !z.Fraction().IsZero() {
		t.Errorf("%s failed: x + -x want zero, got %s", t.Name(), z)
	}
}

func TestDuration_ordering(t *testing.T) {
	var prev Duration
	for idx, s := range []string{"-2", "-1.5", "-0.001", "0", "0.001", "1", "86400.5"} {
		d, _ := NewDuration(s)
		if idx > 0 && prev.Cmp(d) != -1 {
			t.Errorf("%s[%d] failed: %s should sort before %s", t.Name(), idx, prev, d)
		}
		prev = d
	}

	for idx, tc := range []struct {
		in   string
		sign int
	}{
		{"-0.5", -1},
		{"0", 0},
		{"0.5", 1},
		{"-7", -1},
	} {
		d, _ := NewDuration(tc.in)
		if d.Sign() != tc.sign {
			t.Errorf("%s[%d] failed: sign of %s want %d, got %d", t.Name(), idx, tc.in, tc.sign, d.Sign())
		}
	}
}
